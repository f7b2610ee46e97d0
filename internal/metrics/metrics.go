package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of store operations applied.",
		},
		[]string{"store", "operation"},
	)

	storeOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operation_errors_total",
			Help: "Total number of store operations rejected.",
		},
		[]string{"store", "operation", "code"},
	)

	ordersConfirmedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_confirmed_total",
			Help: "Total number of orders appended to the order log.",
		},
	)

	catalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Current number of items in the product catalog.",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// ObserveOperation records one applied store operation.
func ObserveOperation(store, operation string) {
	storeOperationsTotal.WithLabelValues(store, operation).Inc()
}

// ObserveRejection records a store operation refused with an error code.
func ObserveRejection(store, operation, code string) {
	storeOperationErrors.WithLabelValues(store, operation, code).Inc()
}

// ObserveOrderConfirmed records one confirmed order.
func ObserveOrderConfirmed() {
	ordersConfirmedTotal.Inc()
}

// SetCatalogSize tracks the catalog item count after CRUD operations.
func SetCatalogSize(n int) {
	catalogSize.Set(float64(n))
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
