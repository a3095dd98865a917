package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog query operation labels.
const (
	OpList    = "list"
	OpSuggest = "suggest"
	OpGet     = "get"
)

// Catalog query status labels.
const (
	StatusOK       = "ok"
	StatusInvalid  = "invalid"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

var catalogQueriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "shophub",
		Name:      "catalog_queries_total",
		Help:      "Total catalog queries by operation and outcome",
	},
	[]string{"operation", "status"},
)

// RegisterCatalogMetrics registers catalog query metrics explicitly (no init()).
func RegisterCatalogMetrics() {
	prometheus.MustRegister(catalogQueriesTotal)
}

// ObserveCatalogQuery counts one catalog query outcome. Safe to call before
// registration; unregistered metrics are still collected by the vector.
func ObserveCatalogQuery(operation, status string) {
	catalogQueriesTotal.WithLabelValues(operation, status).Inc()
}
