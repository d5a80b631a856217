package db

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) (*sql.DB, *Queries) {
	dbPath := filepath.Join(t.TempDir(), "pagelinks_test.db")

	dbConn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		dbConn.Close()
	})

	if err := RunMigrations(context.Background(), dbConn); err != nil {
		t.Fatalf("migração falhou: %v", err)
	}

	return dbConn, New(dbConn)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	dbConn, _ := setupTestDB(t)
	ctx := context.Background()

	if err := RunMigrations(ctx, dbConn); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	var applied int
	if err := dbConn.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
		t.Fatal(err)
	}
	if applied != 1 {
		t.Errorf("expected 1 applied migration, got %d", applied)
	}
}

func TestRunMigrations_FailureRollsBack(t *testing.T) {
	dbConn, _ := setupTestDB(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"900_broken.sql": {Data: []byte("CREATE TABLE broken (;")},
	}
	if err := runMigrations(ctx, dbConn, fsys); err == nil {
		t.Fatal("expected error for broken migration")
	}

	var applied int
	_ = dbConn.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE name = '900_broken.sql'").Scan(&applied)
	if applied != 0 {
		t.Error("broken migration should not be recorded")
	}
}

func TestItems(t *testing.T) {
	_, queries := setupTestDB(t)
	ctx := context.Background()

	item, err := queries.CreateItem(ctx, "first")
	if err != nil {
		t.Fatal(err)
	}
	if item.ID == 0 || item.Title != "first" || item.CreatedAt.IsZero() {
		t.Errorf("unexpected item: %+v", item)
	}

	n, err := queries.CountItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 item, got %d", n)
	}
}

func TestListItemsPage(t *testing.T) {
	dbConn, queries := setupTestDB(t)
	ctx := context.Background()

	if err := Seed(ctx, dbConn, 25); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		params    PagingParams
		wantPage  int
		wantCount int
		wantFirst string
	}{
		{"Primeira página", PagingParams{Page: 0, PerPage: 10}, 0, 10, "Item 1"},
		{"Última página", PagingParams{Page: 2, PerPage: 10}, 2, 5, "Item 21"},
		{"Página além do fim", PagingParams{Page: 40, PerPage: 10}, 2, 5, "Item 21"},
		{"Página negativa", PagingParams{Page: -1, PerPage: 10}, 0, 10, "Item 1"},
		{"PerPage padrão", PagingParams{Page: 1}, 1, 10, "Item 11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := queries.ListItemsPage(ctx, tt.params)
			if err != nil {
				t.Fatal(err)
			}
			if result.TotalItems != 25 || result.TotalPages() != 3 {
				t.Errorf("total = %d, pages = %d", result.TotalItems, result.TotalPages())
			}
			if result.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", result.CurrentPage, tt.wantPage)
			}
			if len(result.Items) != tt.wantCount {
				t.Fatalf("got %d items, want %d", len(result.Items), tt.wantCount)
			}
			if result.Items[0].Title != tt.wantFirst {
				t.Errorf("first item = %s, want %s", result.Items[0].Title, tt.wantFirst)
			}
		})
	}
}

func TestListItemsPage_Empty(t *testing.T) {
	_, queries := setupTestDB(t)

	result, err := queries.ListItemsPage(context.Background(), PagingParams{Page: 3, PerPage: 10})
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalPages() != 0 || result.CurrentPage != 0 || len(result.Items) != 0 {
		t.Errorf("unexpected result for empty catalog: %+v", result)
	}
}

func TestSeed_TopsUp(t *testing.T) {
	dbConn, queries := setupTestDB(t)
	ctx := context.Background()

	if err := Seed(ctx, dbConn, 5); err != nil {
		t.Fatal(err)
	}
	if err := Seed(ctx, dbConn, 8); err != nil {
		t.Fatal(err)
	}
	if err := Seed(ctx, dbConn, 3); err != nil {
		t.Fatal(err)
	}

	n, _ := queries.CountItems(ctx)
	if n != 8 {
		t.Errorf("expected 8 items, got %d", n)
	}
}

func TestPagedResult_TotalPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 0, 0},
	}
	for _, tt := range tests {
		r := PagedResult[Item]{TotalItems: tt.total, PerPage: tt.perPage}
		if got := r.TotalPages(); got != tt.want {
			t.Errorf("TotalPages(%d/%d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestDualPool(t *testing.T) {
	os.Clearenv()
	ctx := context.Background()

	pool, err := NewDualPool(ctx, "sqlite3", filepath.Join(t.TempDir(), "pool.db"), WithReadPoolSize(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		t.Fatal(err)
	}
	if err := RunMigrations(ctx, pool.Write); err != nil {
		t.Fatal(err)
	}
	if _, err := pool.QueriesWrite().CreateItem(ctx, "pooled"); err != nil {
		t.Fatal(err)
	}

	n, err := pool.Queries().CountItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 item through the read pool, got %d", n)
	}
}
