// Package shophub is the client SDK for the shophub catalog API. It covers
// the query surface (listings, single products, autosuggest) plus the
// client-side storefront state: the debounced suggestion pipeline, the
// bounded search history, and the shopping cart.
package shophub

import "time"

// Sort keys accepted by Query.Sort. Anything else falls back to
// newest-first on the server.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// CategoryAll matches every category when used in Query.Category.
const CategoryAll = "all"

// Product is a catalog product as served by the API.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	Image       string    `json:"image"`
	Description string    `json:"description,omitempty"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Suggestion is the trimmed product projection returned by autosuggest.
type Suggestion struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image"`
	InStock  bool    `json:"inStock"`
}

// Query describes a product listing request. The zero value lists the whole
// catalog newest-first.
type Query struct {
	// Category filters to one category. Empty or CategoryAll matches all.
	Category string

	// MinPrice and MaxPrice bound the price range; nil means unbounded.
	MinPrice *float64
	MaxPrice *float64

	// Sort is one of the Sort* constants.
	Sort string

	// Search matches the term against product name, description, and
	// category as a substring, case-insensitively.
	Search string
}
