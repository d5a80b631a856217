package view

import "strconv"

// Pagination carries the state of a pagination bar for one request.
// CurrentPage is a zero-based index.
type Pagination struct {
	PageCount   int
	CurrentPage int
	MaxLinks    int
}

func NewPagination(pageCount, currentPage, maxLinks int) Pagination {
	if pageCount < 0 {
		pageCount = 0
	}
	if maxLinks < 0 {
		maxLinks = 0
	}
	return Pagination{
		PageCount:   pageCount,
		CurrentPage: clampIndex(currentPage, pageCount),
		MaxLinks:    maxLinks,
	}
}

// Visible reports whether a pagination bar should be rendered at all.
func (p Pagination) Visible() bool {
	return p.PageCount >= 2
}

func (p Pagination) HasPrevious() bool {
	return p.Visible() && p.CurrentPage > 0
}

func (p Pagination) HasNext() bool {
	return p.Visible() && p.CurrentPage < p.PageCount-1
}

func (p Pagination) PreviousPage() int {
	if p.HasPrevious() {
		return p.CurrentPage - 1
	}
	return 0
}

func (p Pagination) NextPage() int {
	if p.HasNext() {
		return p.CurrentPage + 1
	}
	return p.CurrentPage
}

// Window returns the inner window around the current page. The window is
// empty (right < left) when there is nothing between the first and last page.
func (p Pagination) Window() (left, right int) {
	if !p.Visible() {
		return 1, 0
	}
	return innerWindow(p.PageCount, p.CurrentPage, p.MaxLinks)
}

func (p Pagination) Links() []Link {
	return BuildLinks(p.PageCount, p.CurrentPage, p.MaxLinks)
}

// PageIndex converts a raw 1-based "page" parameter into a zero-based index.
// Missing, malformed and non-positive values map to 0.
func PageIndex(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}

// PageNumber converts a zero-based index into the 1-based number shown to users.
func PageNumber(index int) int {
	return index + 1
}
