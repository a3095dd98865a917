// Package catalog holds the query-side domain of the storefront: typed
// filter criteria, the sort resolver, and the suggestion projection.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shophub-cloud/shophub/internal/domain"
	"github.com/shophub-cloud/shophub/internal/domain/product"
	"github.com/shophub-cloud/shophub/internal/domain/search/filter"
)

// Canonical queryable field names, shared by the predicate builder and the
// product index schema.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldCategory     = "category"
	FieldCategoryText = "category_text" // TEXT alias of category for substring search
	FieldPrice        = "price"
	FieldRating       = "rating"
	FieldCreatedAt    = "created_at"
)

// CategoryAll is the sentinel category value meaning "no category constraint".
const CategoryAll = "all"

// Criteria is a validated, strictly-typed filter for catalog listing.
// Absent fields impose no constraint.
type Criteria struct {
	category   product.Category
	minPrice   *float64
	maxPrice   *float64
	searchTerm string
	sortKey    SortKey
}

// RawCriteria carries the loosely-typed query parameters as they arrive at
// the service boundary, before coercion.
type RawCriteria struct {
	Category string
	MinPrice string
	MaxPrice string
	Sort     string
	Search   string
}

// ParseCriteria coerces raw query parameters into Criteria.
// Unparseable numeric bounds degrade to absent; an empty or "all" category
// and a whitespace-only search term impose no constraint. An unknown
// category or inverted price bounds is a caller error.
func ParseCriteria(raw RawCriteria) (Criteria, error) {
	c := Criteria{sortKey: ResolveSortKey(raw.Sort)}

	if cat := strings.TrimSpace(raw.Category); cat != "" && !strings.EqualFold(cat, CategoryAll) {
		pc := product.Category(cat)
		if !pc.IsValid() {
			return Criteria{}, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, cat)
		}
		c.category = pc
	}

	c.minPrice = parseBound(raw.MinPrice)
	c.maxPrice = parseBound(raw.MaxPrice)
	if c.minPrice != nil && c.maxPrice != nil && *c.minPrice > *c.maxPrice {
		return Criteria{}, fmt.Errorf("%w: minPrice exceeds maxPrice", domain.ErrValidation)
	}

	c.searchTerm = strings.TrimSpace(raw.Search)

	return c, nil
}

// parseBound coerces a price bound; unparseable or negative values are
// treated as absent rather than rejected.
func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// Category returns the category constraint, or "" when absent.
func (c Criteria) Category() product.Category { return c.category }

// MinPrice returns the inclusive lower price bound, or nil when absent.
func (c Criteria) MinPrice() *float64 { return c.minPrice }

// MaxPrice returns the inclusive upper price bound, or nil when absent.
func (c Criteria) MaxPrice() *float64 { return c.maxPrice }

// SearchTerm returns the trimmed free-text term, or "" when absent.
func (c Criteria) SearchTerm() string { return c.searchTerm }

// SortKey returns the resolved sort selector.
func (c Criteria) SortKey() SortKey { return c.sortKey }

// Predicate composes the criteria into a single filter expression: the AND
// of the category match, the price range, and the free-text substring clause
// over name, description, and category.
func (c Criteria) Predicate() (filter.Expression, error) {
	var conditions []filter.Condition

	if c.category != "" {
		cond, err := filter.NewMatch(FieldCategory, string(c.category))
		if err != nil {
			return filter.Expression{}, fmt.Errorf("category filter: %w", err)
		}
		conditions = append(conditions, cond)
	}

	if c.minPrice != nil || c.maxPrice != nil {
		r, err := filter.NewRangeFilter(c.minPrice, c.maxPrice)
		if err != nil {
			return filter.Expression{}, fmt.Errorf("price range: %w", err)
		}
		cond, err := filter.NewRange(FieldPrice, r)
		if err != nil {
			return filter.Expression{}, fmt.Errorf("price filter: %w", err)
		}
		conditions = append(conditions, cond)
	}

	if c.searchTerm != "" {
		cond, err := filter.NewContains(c.searchTerm, FieldName, FieldDescription, FieldCategoryText)
		if err != nil {
			return filter.Expression{}, fmt.Errorf("search filter: %w", err)
		}
		conditions = append(conditions, cond)
	}

	expr, err := filter.NewExpression(conditions...)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("compose predicate: %w", err)
	}
	return expr, nil
}
