package catalog

import (
	"context"

	domcat "github.com/shophub-cloud/shophub/internal/domain/catalog"
	domprod "github.com/shophub-cloud/shophub/internal/domain/product"
	"github.com/shophub-cloud/shophub/internal/domain/search/filter"
)

// Repository defines the storage contract for catalog queries.
type Repository interface {
	List(ctx context.Context, expr filter.Expression, ord domcat.Ordering) ([]domprod.Product, error)
	Suggest(ctx context.Context, term string, limit int) ([]domprod.Product, error)
	Get(ctx context.Context, id string) (domprod.Product, error)
}
