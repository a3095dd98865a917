// Package product maps catalog products onto flat store hashes and owns the
// search index over them.
package product

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shophub-cloud/shophub/internal/db"
	"github.com/shophub-cloud/shophub/internal/domain"
	"github.com/shophub-cloud/shophub/internal/domain/catalog"
	domprod "github.com/shophub-cloud/shophub/internal/domain/product"
	"github.com/shophub-cloud/shophub/internal/domain/search/filter"
)

const (
	// KeyPrefix prefixes every product hash key.
	KeyPrefix = "shophub:product:"
	// IndexName is the FT index over product hashes.
	IndexName = "shophub:products:idx"

	// listPageSize is the LIMIT per FT.SEARCH round-trip; the engine requires
	// an explicit LIMIT even for "return everything", so List pages in
	// batches of this size until the reported total is exhausted.
	listPageSize = 10000

	fieldImage   = "image"
	fieldInStock = "in_stock"
)

// store is the consumer interface for product storage (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
}

// Repo implements the catalog usecase storage contracts.
type Repo struct {
	store store
	now   func() int64
}

// New creates a product repository.
func New(s store) *Repo {
	return &Repo{
		store: s,
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

// WithNow overrides the timestamp source (tests).
func (r *Repo) WithNow(now func() int64) *Repo {
	r.now = now
	return r
}

// EnsureIndex creates the product FT index if it does not exist yet.
// The category hash field is indexed twice: as TAG for exact filtering and,
// aliased, as TEXT so the list search can substring-match it.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, IndexName)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	def, err := db.NewIndex(IndexName).
		Prefix(KeyPrefix).
		Text(catalog.FieldName).
		Text(catalog.FieldDescription).
		Tag(catalog.FieldCategory).
		TextAs(catalog.FieldCategory, catalog.FieldCategoryText).
		SortableNumeric(catalog.FieldPrice).
		SortableNumeric(catalog.FieldRating).
		SortableNumeric(catalog.FieldCreatedAt).
		Build()
	if err != nil {
		return fmt.Errorf("build index definition: %w", err)
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create index %s: %w", IndexName, err)
	}
	return nil
}

// Upsert writes a product hash. The creation timestamp is assigned on first
// write and preserved on updates.
func (r *Repo) Upsert(ctx context.Context, p domprod.Product) (domprod.Product, error) {
	stamped, err := r.stampCreatedAt(ctx, p)
	if err != nil {
		return domprod.Product{}, err
	}

	if err := r.store.HSet(ctx, productKey(stamped.ID()), hashFields(&stamped)); err != nil {
		return domprod.Product{}, fmt.Errorf("upsert product %s: %w", stamped.ID(), err)
	}
	return stamped, nil
}

// UpsertMulti writes a batch of product hashes in one round-trip.
func (r *Repo) UpsertMulti(ctx context.Context, products []domprod.Product) ([]domprod.Product, error) {
	if len(products) == 0 {
		return nil, nil
	}

	out := make([]domprod.Product, len(products))
	items := make([]db.HashSetItem, len(products))
	for i := range products {
		stamped, err := r.stampCreatedAt(ctx, products[i])
		if err != nil {
			return nil, err
		}
		out[i] = stamped
		items[i] = db.HashSetItem{
			Key:    productKey(stamped.ID()),
			Fields: hashFields(&stamped),
		}
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return nil, fmt.Errorf("upsert %d products: %w", len(items), err)
	}
	return out, nil
}

// Get returns a product by identifier, or domain.ErrNotFound. A missing hash
// comes back as an empty map, not a key-not-found error.
func (r *Repo) Get(ctx context.Context, id string) (domprod.Product, error) {
	fields, err := r.store.HGetAll(ctx, productKey(id))
	if err != nil {
		return domprod.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	if len(fields) == 0 {
		return domprod.Product{}, domain.ErrNotFound
	}
	return productFromFields(id, fields), nil
}

// List returns every product matching the predicate, in the given order,
// with no cap on the result size.
func (r *Repo) List(
	ctx context.Context, expr filter.Expression, ord catalog.Ordering,
) ([]domprod.Product, error) {
	var products []domprod.Product
	for offset := 0; ; {
		sr, err := r.store.Search(ctx, &db.SearchQuery{
			IndexName: IndexName,
			Filters:   expr,
			Sort:      sortFor(ord),
			Offset:    offset,
			Limit:     listPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}

		products = append(products, productsFromResult(sr)...)
		if sr == nil || len(sr.Entries) == 0 || len(products) >= sr.Total {
			return products, nil
		}
		offset += len(sr.Entries)
	}
}

// Suggest returns up to limit products whose name contains the term,
// ordered by rating descending.
func (r *Repo) Suggest(ctx context.Context, term string, limit int) ([]domprod.Product, error) {
	cond, err := filter.NewContains(term, catalog.FieldName)
	if err != nil {
		return nil, fmt.Errorf("suggest filter: %w", err)
	}
	expr, err := filter.NewExpression(cond)
	if err != nil {
		return nil, fmt.Errorf("suggest predicate: %w", err)
	}

	q := &db.SearchQuery{
		IndexName: IndexName,
		Filters:   expr,
		Sort:      &db.Sort{Field: catalog.FieldRating, Direction: db.SortDesc},
		Limit:     limit,
	}

	sr, err := r.store.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("suggest products: %w", err)
	}
	return productsFromResult(sr), nil
}

func (r *Repo) stampCreatedAt(ctx context.Context, p domprod.Product) (domprod.Product, error) {
	if p.ID() == "" {
		return domprod.Product{}, fmt.Errorf("product ID is required")
	}
	if p.CreatedAt() > 0 {
		return p, nil
	}

	existing, err := r.store.HGetAll(ctx, productKey(p.ID()))
	if err != nil {
		return domprod.Product{}, fmt.Errorf("check product %s: %w", p.ID(), err)
	}
	if ts, ok := existing[catalog.FieldCreatedAt]; ok {
		if millis, perr := strconv.ParseInt(ts, 10, 64); perr == nil {
			return p.WithCreatedAt(millis), nil
		}
	}
	return p.WithCreatedAt(r.now()), nil
}

// --- Mapping ---

func productKey(id string) string {
	return KeyPrefix + id
}

func sortFor(ord catalog.Ordering) *db.Sort {
	dir := db.SortAsc
	if ord.Descending {
		dir = db.SortDesc
	}
	return &db.Sort{Field: ord.Field, Direction: dir}
}

func hashFields(p *domprod.Product) map[string]string {
	return map[string]string{
		catalog.FieldName:        p.Name(),
		catalog.FieldDescription: p.Description(),
		catalog.FieldCategory:    string(p.Category()),
		catalog.FieldPrice:       strconv.FormatFloat(p.Price(), 'f', -1, 64),
		catalog.FieldRating:      strconv.FormatFloat(p.Rating(), 'f', -1, 64),
		catalog.FieldCreatedAt:   strconv.FormatInt(p.CreatedAt(), 10),
		fieldImage:               p.Image(),
		fieldInStock:             strconv.FormatBool(p.InStock()),
	}
}

func productsFromResult(sr *db.SearchResult) []domprod.Product {
	if sr == nil || sr.Total == 0 {
		return nil
	}

	products := make([]domprod.Product, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, KeyPrefix)
		products = append(products, productFromFields(id, entry.Fields))
	}
	return products
}

func productFromFields(id string, fields map[string]string) domprod.Product {
	price, _ := strconv.ParseFloat(fields[catalog.FieldPrice], 64)
	rating, _ := strconv.ParseFloat(fields[catalog.FieldRating], 64)
	createdAt, _ := strconv.ParseInt(fields[catalog.FieldCreatedAt], 10, 64)
	inStock, _ := strconv.ParseBool(fields[fieldInStock])

	return domprod.Reconstruct(
		id,
		fields[catalog.FieldName],
		domprod.Category(fields[catalog.FieldCategory]),
		price,
		rating,
		fields[fieldImage],
		fields[catalog.FieldDescription],
		inStock,
		createdAt,
	)
}
