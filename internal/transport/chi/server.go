// Package chi exposes the storefront catalog query API over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shophub-cloud/shophub/internal/domain"
	domcat "github.com/shophub-cloud/shophub/internal/domain/catalog"
	domprod "github.com/shophub-cloud/shophub/internal/domain/product"
	logpkg "github.com/shophub-cloud/shophub/internal/logger"
	cataloguc "github.com/shophub-cloud/shophub/internal/usecase/catalog"
)

// Server hosts the catalog query endpoints.
type Server struct {
	catalog *cataloguc.Service
	store   Pinger
	logger  *zap.Logger
}

// Pinger checks catalog store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewServer creates an HTTP API server.
func NewServer(catalog *cataloguc.Service, store Pinger, logger *zap.Logger) *Server {
	return &Server{catalog: catalog, store: store, logger: logger}
}

// Routes mounts the API endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/products", s.ListProducts)
	r.Get("/api/products/{id}", s.GetProduct)
	r.Get("/api/search", s.SearchSuggestions)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListProducts handles GET /api/products with optional category, minPrice,
// maxPrice, sort, and search query parameters.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria, err := domcat.ParseCriteria(domcat.RawCriteria{
		Category: q.Get("category"),
		MinPrice: q.Get("minPrice"),
		MaxPrice: q.Get("maxPrice"),
		Sort:     q.Get("sort"),
		Search:   q.Get("search"),
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	products, err := s.catalog.List(r.Context(), criteria)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	data := make([]productResponse, len(products))
	for i := range products {
		data[i] = productToResponse(&products[i])
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Count: len(data), Data: data})
}

// GetProduct handles GET /api/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, itemResponse{Success: true, Data: productToResponse(&p)})
}

// SearchSuggestions handles GET /api/search?q=term.
func (s *Server) SearchSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.catalog.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	data := make([]suggestionResponse, len(suggestions))
	for i := range suggestions {
		data[i] = suggestionToResponse(&suggestions[i])
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Count: len(data), Data: data})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	httpStatus := http.StatusOK
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]string{"status": status})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, safeDomainMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, safeDomainMessage(err))
	default:
		// The request-scoped logger carries the request ID.
		logpkg.FromContext(r.Context()).Error("query failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, safeDomainMessage(err))
	}
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrStoreUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// --- Wire types ---

type listResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

type itemResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type productResponse struct {
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

type suggestionResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image"`
	InStock  bool    `json:"inStock"`
}

func productToResponse(p *domprod.Product) productResponse {
	return productResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Category:    string(p.Category()),
		Price:       p.Price(),
		Rating:      p.Rating(),
		Image:       p.Image(),
		Description: p.Description(),
		InStock:     p.InStock(),
		CreatedAt:   time.UnixMilli(p.CreatedAt()).UTC(),
	}
}

func suggestionToResponse(sg *domcat.Suggestion) suggestionResponse {
	return suggestionResponse{
		ID:       sg.ID(),
		Name:     sg.Name(),
		Category: string(sg.Category()),
		Price:    sg.Price(),
		Rating:   sg.Rating(),
		Image:    sg.Image(),
		InStock:  sg.InStock(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}
