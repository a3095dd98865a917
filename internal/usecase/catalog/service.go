// Package catalog implements the read-only catalog query service: full
// listings composed from filter criteria, and the bounded autosuggest lookup.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shophub-cloud/shophub/internal/domain"
	domcat "github.com/shophub-cloud/shophub/internal/domain/catalog"
	domprod "github.com/shophub-cloud/shophub/internal/domain/product"
	"github.com/shophub-cloud/shophub/internal/metrics"
)

// Service handles catalog listing, autosuggest, and single-product lookup.
// All operations are read-only and idempotent.
type Service struct {
	repo         Repository
	suggestLimit int
}

// Option configures a Service.
type Option func(*Service)

// WithSuggestLimit overrides the autosuggest result cap. Values below one
// fall back to the default.
func WithSuggestLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.suggestLimit = n
		}
	}
}

// New creates a catalog query service.
func New(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, suggestLimit: domcat.MaxSuggestions}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every product matching the criteria, ordered per the resolved
// sort key. Empty criteria yield the whole catalog newest-first.
func (s *Service) List(ctx context.Context, criteria domcat.Criteria) ([]domprod.Product, error) {
	expr, err := criteria.Predicate()
	if err != nil {
		metrics.ObserveCatalogQuery(metrics.OpList, metrics.StatusError)
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	products, err := s.repo.List(ctx, expr, criteria.SortKey().Ordering())
	if err != nil {
		metrics.ObserveCatalogQuery(metrics.OpList, metrics.StatusError)
		return nil, storeFailure("list products", err)
	}

	metrics.ObserveCatalogQuery(metrics.OpList, metrics.StatusOK)
	return products, nil
}

// Suggest returns up to five display projections of products whose name
// contains the term, rating-descending. An empty trimmed term is a caller
// error, distinct from "no matches".
func (s *Service) Suggest(ctx context.Context, term string) ([]domcat.Suggestion, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		metrics.ObserveCatalogQuery(metrics.OpSuggest, metrics.StatusInvalid)
		return nil, fmt.Errorf("%w: search term is required", domain.ErrValidation)
	}

	products, err := s.repo.Suggest(ctx, term, s.suggestLimit)
	if err != nil {
		metrics.ObserveCatalogQuery(metrics.OpSuggest, metrics.StatusError)
		return nil, storeFailure("suggest products", err)
	}

	suggestions := make([]domcat.Suggestion, 0, len(products))
	for i := range products {
		suggestions = append(suggestions, domcat.NewSuggestion(products[i]))
	}

	metrics.ObserveCatalogQuery(metrics.OpSuggest, metrics.StatusOK)
	return suggestions, nil
}

// Get returns a single product by identifier. A missing product surfaces as
// domain.ErrNotFound, never as an empty success.
func (s *Service) Get(ctx context.Context, id string) (domprod.Product, error) {
	if strings.TrimSpace(id) == "" {
		metrics.ObserveCatalogQuery(metrics.OpGet, metrics.StatusInvalid)
		return domprod.Product{}, fmt.Errorf("%w: product ID is required", domain.ErrValidation)
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.ObserveCatalogQuery(metrics.OpGet, metrics.StatusNotFound)
			return domprod.Product{}, err
		}
		metrics.ObserveCatalogQuery(metrics.OpGet, metrics.StatusError)
		return domprod.Product{}, storeFailure("get product", err)
	}

	metrics.ObserveCatalogQuery(metrics.OpGet, metrics.StatusOK)
	return p, nil
}

// storeFailure wraps a repository error as a store-unavailable condition,
// preserving the cause for diagnostics.
func storeFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}
