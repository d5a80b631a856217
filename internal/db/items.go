package db

import (
	"context"
	"fmt"
	"time"
)

type Item struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

const countItems = `SELECT COUNT(*) FROM items`

func (q *Queries) CountItems(ctx context.Context) (int, error) {
	var n int
	if err := q.db.QueryRowContext(ctx, countItems).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return n, nil
}

const createItem = `INSERT INTO items (title) VALUES (?)`

func (q *Queries) CreateItem(ctx context.Context, title string) (Item, error) {
	res, err := q.db.ExecContext(ctx, createItem, title)
	if err != nil {
		return Item{}, fmt.Errorf("failed to create item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Item{}, fmt.Errorf("failed to read item id: %w", err)
	}
	return q.GetItem(ctx, id)
}

const getItem = `SELECT id, title, created_at FROM items WHERE id = ?`

func (q *Queries) GetItem(ctx context.Context, id int64) (Item, error) {
	var i Item
	err := q.db.QueryRowContext(ctx, getItem, id).Scan(&i.ID, &i.Title, &i.CreatedAt)
	if err != nil {
		return Item{}, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return i, nil
}

const listItems = `SELECT id, title, created_at FROM items ORDER BY id LIMIT ? OFFSET ?`

type ListItemsParams struct {
	Limit  int
	Offset int
}

func (q *Queries) ListItems(ctx context.Context, arg ListItemsParams) ([]Item, error) {
	rows, err := q.db.QueryContext(ctx, listItems, arg.Limit, arg.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var i Item
		if err := rows.Scan(&i.ID, &i.Title, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// ListItemsPage loads one page of the catalog together with the total count
// used to size the pagination bar. A page past the end is clamped to the last
// page.
func (q *Queries) ListItemsPage(ctx context.Context, params PagingParams) (PagedResult[Item], error) {
	total, err := q.CountItems(ctx)
	if err != nil {
		return PagedResult[Item]{}, err
	}

	pages := PagedResult[Item]{TotalItems: total, PerPage: params.Limit()}.TotalPages()
	params.Page = min(params.Index(), max(pages-1, 0))

	items, err := q.ListItems(ctx, ListItemsParams{
		Limit:  params.Limit(),
		Offset: params.Offset(),
	})
	if err != nil {
		return PagedResult[Item]{}, err
	}

	return PagedResult[Item]{
		Items:       items,
		TotalItems:  total,
		CurrentPage: params.Index(),
		PerPage:     params.Limit(),
	}, nil
}
