package view

import (
	"fmt"
	"slices"

	"github.com/PauloHFS/pagelinks/internal/metrics"
	lru "github.com/hashicorp/golang-lru/v2"
)

type linkKey struct {
	pageCount int
	current   int
	maxLinks  int
}

// LinkCache memoizes BuildLinks for hot listings. It is safe for concurrent use.
type LinkCache struct {
	entries *lru.Cache[linkKey, []Link]
}

func NewLinkCache(size int) (*LinkCache, error) {
	entries, err := lru.New[linkKey, []Link](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create link cache: %w", err)
	}
	return &LinkCache{entries: entries}, nil
}

// Links returns the same descriptors as BuildLinks. The returned slice is a
// copy and may be modified by the caller.
func (c *LinkCache) Links(pageCount, currentPage, maxLinks int) []Link {
	if pageCount < 2 {
		return nil
	}

	key := linkKey{
		pageCount: pageCount,
		current:   clampIndex(currentPage, pageCount),
		maxLinks:  max(maxLinks, 2),
	}

	if links, ok := c.entries.Get(key); ok {
		metrics.LinkCacheResults.WithLabelValues("hit").Inc()
		return slices.Clone(links)
	}

	metrics.LinkCacheResults.WithLabelValues("miss").Inc()
	links := BuildLinks(key.pageCount, key.current, key.maxLinks)
	c.entries.Add(key, links)

	return slices.Clone(links)
}

func (c *LinkCache) Len() int {
	return c.entries.Len()
}
