package db

// PagingParams define os parâmetros básicos de entrada. Page é o índice da
// página começando em zero.
type PagingParams struct {
	Page    int
	PerPage int
}

func (p PagingParams) Index() int {
	return max(p.Page, 0)
}

func (p PagingParams) Offset() int {
	return p.Index() * p.Limit()
}

func (p PagingParams) Limit() int {
	if p.PerPage < 1 {
		p.PerPage = 10
	}
	return p.PerPage
}

// PagedResult encapsula os dados e os metadados da página
type PagedResult[T any] struct {
	Items       []T
	TotalItems  int
	CurrentPage int
	PerPage     int
}

func (p PagedResult[T]) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return (p.TotalItems + p.PerPage - 1) / p.PerPage
}
