package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shophub-cloud/shophub/internal/domain"
	domcat "github.com/shophub-cloud/shophub/internal/domain/catalog"
	domprod "github.com/shophub-cloud/shophub/internal/domain/product"
	"github.com/shophub-cloud/shophub/internal/domain/search/filter"
)

// --- Mocks ---

type mockRepo struct {
	listResult    []domprod.Product
	suggestResult []domprod.Product
	getResult     domprod.Product
	listErr       error
	suggestErr    error
	getErr        error

	listExpr    filter.Expression
	listOrd     domcat.Ordering
	suggestTerm string
	suggestLim  int
	getID       string
}

func (m *mockRepo) List(
	_ context.Context, expr filter.Expression, ord domcat.Ordering,
) ([]domprod.Product, error) {
	m.listExpr = expr
	m.listOrd = ord
	return m.listResult, m.listErr
}

func (m *mockRepo) Suggest(_ context.Context, term string, limit int) ([]domprod.Product, error) {
	m.suggestTerm = term
	m.suggestLim = limit
	return m.suggestResult, m.suggestErr
}

func (m *mockRepo) Get(_ context.Context, id string) (domprod.Product, error) {
	m.getID = id
	return m.getResult, m.getErr
}

func makeProduct(t *testing.T, id, name string, rating float64) domprod.Product {
	t.Helper()
	p, err := domprod.New(
		id, name, domprod.Electronics, 49.99, rating,
		"https://img.example/p.jpg", "", true,
	)
	if err != nil {
		t.Fatalf("domprod.New: %v", err)
	}
	return p
}

func makeCriteria(t *testing.T, raw domcat.RawCriteria) domcat.Criteria {
	t.Helper()
	c, err := domcat.ParseCriteria(raw)
	if err != nil {
		t.Fatalf("ParseCriteria: %v", err)
	}
	return c
}

// --- List ---

func TestList_Success(t *testing.T) {
	repo := &mockRepo{listResult: []domprod.Product{makeProduct(t, "p-1", "Webcam", 4.1)}}
	svc := New(repo)

	criteria := makeCriteria(t, domcat.RawCriteria{Category: "Electronics", Sort: "price-asc"})
	products, err := svc.List(context.Background(), criteria)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ID() != "p-1" {
		t.Errorf("products = %+v", products)
	}
	if repo.listOrd.Field != domcat.FieldPrice || repo.listOrd.Descending {
		t.Errorf("ordering = %+v", repo.listOrd)
	}
	if len(repo.listExpr.Conditions()) != 1 {
		t.Errorf("predicate conditions = %d", len(repo.listExpr.Conditions()))
	}
}

func TestList_EmptyCriteriaListsAll(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	_, err := svc.List(context.Background(), makeCriteria(t, domcat.RawCriteria{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.listExpr.IsEmpty() {
		t.Error("empty criteria should produce empty predicate")
	}
	if repo.listOrd.Field != domcat.FieldCreatedAt || !repo.listOrd.Descending {
		t.Errorf("default ordering = %+v, want newest-first", repo.listOrd)
	}
}

func TestList_RepoErrorIsStoreUnavailable(t *testing.T) {
	repo := &mockRepo{listErr: errors.New("search down")}
	svc := New(repo)

	_, err := svc.List(context.Background(), makeCriteria(t, domcat.RawCriteria{}))
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

// --- Suggest ---

func TestSuggest_Success(t *testing.T) {
	repo := &mockRepo{suggestResult: []domprod.Product{
		makeProduct(t, "p-1", "Wireless Headphones", 4.7),
		makeProduct(t, "p-2", "Wired Headphones", 4.2),
	}}
	svc := New(repo)

	suggestions, err := svc.Suggest(context.Background(), "  headphones  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.suggestTerm != "headphones" {
		t.Errorf("term = %q, want trimmed", repo.suggestTerm)
	}
	if repo.suggestLim != domcat.MaxSuggestions {
		t.Errorf("limit = %d, want %d", repo.suggestLim, domcat.MaxSuggestions)
	}
	if len(suggestions) != 2 {
		t.Fatalf("suggestions len = %d", len(suggestions))
	}
	if suggestions[0].ID() != "p-1" || suggestions[0].Name() != "Wireless Headphones" {
		t.Errorf("first suggestion = %+v", suggestions[0])
	}
}

func TestSuggest_EmptyTermIsValidationError(t *testing.T) {
	// An empty term is a caller error, distinct from a valid term with
	// zero matches.
	repo := &mockRepo{}
	svc := New(repo)

	for _, term := range []string{"", "   ", "\t"} {
		_, err := svc.Suggest(context.Background(), term)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("term %q: expected ErrValidation, got %v", term, err)
		}
	}
	if repo.suggestTerm != "" {
		t.Error("repository should not be reached for empty terms")
	}
}

func TestSuggest_NoMatchesIsEmptySuccess(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	suggestions, err := svc.Suggest(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("suggestions = %+v", suggestions)
	}
}

func TestSuggest_CustomLimit(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo, WithSuggestLimit(8))

	if _, err := svc.Suggest(context.Background(), "mug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.suggestLim != 8 {
		t.Errorf("limit = %d, want 8", repo.suggestLim)
	}
}

func TestSuggest_RepoErrorIsStoreUnavailable(t *testing.T) {
	repo := &mockRepo{suggestErr: errors.New("search down")}
	svc := New(repo)

	_, err := svc.Suggest(context.Background(), "mug")
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

// --- Get ---

func TestGet_Success(t *testing.T) {
	repo := &mockRepo{getResult: makeProduct(t, "p-1", "Webcam", 4.1)}
	svc := New(repo)

	p, err := svc.Get(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != "p-1" {
		t.Errorf("ID = %q", p.ID())
	}
	if repo.getID != "p-1" {
		t.Errorf("repo saw ID %q", repo.getID)
	}
}

func TestGet_EmptyID(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	_, err := svc.Get(context.Background(), "  ")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestGet_NotFoundPassesThrough(t *testing.T) {
	repo := &mockRepo{getErr: domain.ErrNotFound}
	svc := New(repo)

	_, err := svc.Get(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if errors.Is(err, domain.ErrStoreUnavailable) {
		t.Error("not-found must not read as store failure")
	}
}

func TestGet_RepoErrorIsStoreUnavailable(t *testing.T) {
	repo := &mockRepo{getErr: errors.New("connection refused")}
	svc := New(repo)

	_, err := svc.Get(context.Background(), "p-1")
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

// --- End to end over the usecase: filter + sort + suggest interplay ---

func TestListThenSuggest_DistinctPredicates(t *testing.T) {
	// The listing search spans name, description, and category; the
	// suggest path intentionally matches the name only.
	repo := &mockRepo{}
	svc := New(repo)

	criteria := makeCriteria(t, domcat.RawCriteria{Search: "wool"})
	if _, err := svc.List(context.Background(), criteria); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	listConds := repo.listExpr.Conditions()
	if len(listConds) != 1 || len(listConds[0].Keys()) != 3 {
		t.Errorf("list predicate = %+v", listConds)
	}

	if _, err := svc.Suggest(context.Background(), "wool"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.suggestTerm != "wool" {
		t.Errorf("suggest term = %q", repo.suggestTerm)
	}
}
