package view

import (
	"math"
	"reflect"
	"sync"
	"testing"
)

func TestLinkCache(t *testing.T) {
	t.Run("MatchesBuildLinks", func(t *testing.T) {
		cache, err := NewLinkCache(16)
		if err != nil {
			t.Fatal(err)
		}

		for _, current := range []int{-1, 0, 4, 10, 19, 25} {
			want := BuildLinks(20, current, 13)
			for range 2 {
				if got := cache.Links(20, current, 13); !reflect.DeepEqual(got, want) {
					t.Errorf("Links(20, %d, 13) = %v, want %v", current, got, want)
				}
			}
		}
	})

	t.Run("MatchesBuildLinksForTinyBudgets", func(t *testing.T) {
		cache, _ := NewLinkCache(16)
		for _, maxLinks := range []int{math.MinInt, -4, 0, 1, 2} {
			want := BuildLinks(20, 5, maxLinks)
			if got := cache.Links(20, 5, maxLinks); !reflect.DeepEqual(got, want) {
				t.Errorf("Links(20, 5, %d) = %q, want %q", maxLinks, FormatLinks(got), FormatLinks(want))
			}
		}
	})

	t.Run("NormalizesKeys", func(t *testing.T) {
		cache, _ := NewLinkCache(16)
		cache.Links(20, -5, 13)
		cache.Links(20, 0, 13)
		cache.Links(20, 3, 1)
		cache.Links(20, 3, 2)

		if cache.Len() != 2 {
			t.Errorf("expected 2 entries, got %d", cache.Len())
		}
	})

	t.Run("SkipsSinglePage", func(t *testing.T) {
		cache, _ := NewLinkCache(16)
		if links := cache.Links(1, 0, 13); links != nil {
			t.Errorf("expected nil, got %v", links)
		}
		if cache.Len() != 0 {
			t.Errorf("expected empty cache, got %d entries", cache.Len())
		}
	})

	t.Run("ReturnsCopies", func(t *testing.T) {
		cache, _ := NewLinkCache(16)
		first := cache.Links(20, 10, 13)
		first[0] = Link{Kind: LinkEllipsis, Index: -1}

		second := cache.Links(20, 10, 13)
		if second[0].Kind != LinkPrev {
			t.Errorf("cached entry was modified through a returned slice: %v", second[0])
		}
	})

	t.Run("Evicts", func(t *testing.T) {
		cache, _ := NewLinkCache(2)
		for current := range 5 {
			cache.Links(20, current, 13)
		}
		if cache.Len() != 2 {
			t.Errorf("expected 2 entries, got %d", cache.Len())
		}
	})

	t.Run("InvalidSize", func(t *testing.T) {
		if _, err := NewLinkCache(0); err == nil {
			t.Error("expected error for zero size")
		}
	})

	t.Run("Concurrent", func(t *testing.T) {
		cache, _ := NewLinkCache(8)
		want := FormatLinks(BuildLinks(50, 25, 9))

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					if got := FormatLinks(cache.Links(50, 25, 9)); got != want {
						t.Errorf("got %q, want %q", got, want)
						return
					}
				}
			}()
		}
		wg.Wait()
	})
}

func BenchmarkBuildLinks(b *testing.B) {
	for i := 0; b.Loop(); i++ {
		BuildLinks(1000, i%1000, DefaultMaxLinks)
	}
}

func BenchmarkLinkCache(b *testing.B) {
	cache, _ := NewLinkCache(1024)
	for i := 0; b.Loop(); i++ {
		cache.Links(1000, i%1000, DefaultMaxLinks)
	}
}
