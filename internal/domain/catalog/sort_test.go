package catalog

import (
	"testing"

	"github.com/shophub-cloud/shophub/internal/domain/product"
)

func productFixture(t *testing.T) product.Product {
	t.Helper()
	return product.Reconstruct(
		"p-1", "Wireless Headphones", product.Electronics, 199.99, 4.7,
		"https://img.example/p.jpg", "Over-ear wireless headphones", true, 1700000000000,
	)
}

func TestResolveSortKey(t *testing.T) {
	tests := []struct {
		raw  string
		want SortKey
	}{
		{"price-asc", SortPriceAsc},
		{"price-desc", SortPriceDesc},
		{"rating", SortRating},
		{"newest", SortNewest},
		{"", SortNewest},
		{"PRICE-ASC", SortNewest},
		{"alphabetical", SortNewest},
	}
	for _, tt := range tests {
		if got := ResolveSortKey(tt.raw); got != tt.want {
			t.Errorf("ResolveSortKey(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSortKey_Ordering(t *testing.T) {
	tests := []struct {
		key  SortKey
		want Ordering
	}{
		{SortPriceAsc, Ordering{Field: FieldPrice}},
		{SortPriceDesc, Ordering{Field: FieldPrice, Descending: true}},
		{SortRating, Ordering{Field: FieldRating, Descending: true}},
		{SortNewest, Ordering{Field: FieldCreatedAt, Descending: true}},
	}
	for _, tt := range tests {
		if got := tt.key.Ordering(); got != tt.want {
			t.Errorf("%q.Ordering() = %+v, want %+v", tt.key, got, tt.want)
		}
	}
}

func TestNewSuggestion_Projection(t *testing.T) {
	p := productFixture(t)
	s := NewSuggestion(p)

	if s.ID() != p.ID() || s.Name() != p.Name() {
		t.Error("identity fields not projected")
	}
	if s.Category() != p.Category() || s.Price() != p.Price() || s.Rating() != p.Rating() {
		t.Error("display fields not projected")
	}
	if s.Image() != p.Image() || s.InStock() != p.InStock() {
		t.Error("presentation fields not projected")
	}
}
