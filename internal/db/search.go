package db

import "github.com/shophub-cloud/shophub/internal/domain/search/filter"

// SortDirection orders search results on a sortable field.
type SortDirection string

const (
	// SortAsc sorts ascending.
	SortAsc SortDirection = "ASC"
	// SortDesc sorts descending.
	SortDesc SortDirection = "DESC"
)

// Sort is a SORTBY instruction for FT.SEARCH. Ties are broken by the
// engine's internal document order, which is stable for a given data set.
type Sort struct {
	Field     string
	Direction SortDirection
}

// SearchQuery is the input for predicate-filtered retrieval.
type SearchQuery struct {
	IndexName    string
	Filters      filter.Expression
	Sort         *Sort
	Offset       int
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
