package product

import (
	"context"
	"testing"

	"github.com/shophub-cloud/shophub/internal/db"
	domprod "github.com/shophub-cloud/shophub/internal/domain/product"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn        func(ctx context.Context, key string, fields map[string]string) error
	hsetMultiFn   func(ctx context.Context, items []db.HashSetItem) error
	hgetAllFn     func(ctx context.Context, key string) (map[string]string, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	indexExistsFn func(ctx context.Context, name string) (bool, error)
	searchFn      func(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HSetMulti(ctx context.Context, items []db.HashSetItem) error {
	if m.hsetMultiFn != nil {
		return m.hsetMultiFn(ctx, items)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func (m *mockStore) Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms).WithNow(func() int64 { return 1700000000000 })
	return repo, ms
}

func testProduct(t *testing.T) domprod.Product {
	t.Helper()
	p, err := domprod.New(
		"p-1", "Merino Wool Sweater", domprod.Clothing, 95, 4.6,
		"https://img.example/sweater.jpg", "Fine-gauge merino knit", true,
	)
	if err != nil {
		t.Fatalf("test product: %v", err)
	}
	return p
}

func testEntryFields() map[string]string {
	return map[string]string{
		"name":        "Merino Wool Sweater",
		"description": "Fine-gauge merino knit",
		"category":    "Clothing",
		"price":       "95",
		"rating":      "4.6",
		"created_at":  "1690000000000",
		"image":       "https://img.example/sweater.jpg",
		"in_stock":    "true",
	}
}
