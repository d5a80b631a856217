package view

import "fmt"

// DefaultMaxLinks is the link budget used when none is configured.
const DefaultMaxLinks = 13

type LinkKind int

const (
	LinkPage LinkKind = iota
	LinkEllipsis
	LinkPrev
	LinkNext
)

func (k LinkKind) String() string {
	switch k {
	case LinkPage:
		return "page"
	case LinkEllipsis:
		return "ellipsis"
	case LinkPrev:
		return "prev"
	case LinkNext:
		return "next"
	default:
		return fmt.Sprintf("LinkKind(%d)", int(k))
	}
}

func (k LinkKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Link describes one rendered unit of a pagination bar.
//
// Index is the zero-based page the link points at. For Prev and Next it is the
// target page; for an ellipsis it is -1.
type Link struct {
	Kind    LinkKind
	Index   int
	Current bool
}

// Number returns the 1-based page number of the link, or 0 for an ellipsis.
func (l Link) Number() int {
	if l.Kind == LinkEllipsis {
		return 0
	}
	return PageNumber(l.Index)
}

// BuildLinks returns the ordered descriptors for a pagination bar: an
// optional Prev link, the first page, the window around currentPage with
// ellipses over hidden gaps, the last page and an optional Next link.
//
// Out-of-range input is clamped. Fewer than two pages yields nil.
func BuildLinks(pageCount, currentPage, maxLinks int) []Link {
	if pageCount < 2 {
		return nil
	}

	current := clampIndex(currentPage, pageCount)
	left, right := innerWindow(pageCount, current, maxLinks)

	links := make([]Link, 0, min(pageCount, max(maxLinks, 3))+4)

	if current > 0 {
		links = append(links, Link{Kind: LinkPrev, Index: current - 1})
	}

	last := pageCount - 1
	for i := range pageCount {
		if i == 0 || i == last || (i >= left && i <= right) {
			links = append(links, Link{Kind: LinkPage, Index: i, Current: i == current})
			continue
		}
		if i == left-1 || i == right+1 {
			links = append(links, Link{Kind: LinkEllipsis, Index: -1})
		}
	}

	if current < last {
		links = append(links, Link{Kind: LinkNext, Index: current + 1})
	}

	return links
}

// innerWindow returns the window over pages 1..pageCount-2. With two pages
// there is no inner range and the window is empty.
func innerWindow(pageCount, current, maxLinks int) (left, right int) {
	if pageCount <= 2 {
		return 1, 0
	}
	return ComputeWindow(1, pageCount-2, current, max(maxLinks, 2)-2)
}

func clampIndex(index, pageCount int) int {
	if pageCount < 1 {
		return 0
	}
	return min(max(index, 0), pageCount-1)
}
