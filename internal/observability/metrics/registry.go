// Package metrics provides centralized Prometheus metrics for the domain and
// the database. HTTP metrics live with the HTTP middleware.
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track domain operations.
var (
	// EntityOperationsTotal counts successful writes by entity kind and operation.
	EntityOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entity_operations_total",
			Help: "Total number of persisted entity writes",
		},
		[]string{"entity", "operation"}, // operation: create, update, delete
	)

	// DuplicateRejectionsTotal counts writes rejected by a uniqueness rule.
	DuplicateRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duplicate_rejections_total",
			Help: "Total number of writes rejected because a unique field was taken",
		},
		[]string{"field"},
	)

	// AuthorizationDecisionsTotal counts edit-permission decisions.
	AuthorizationDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authorization_decisions_total",
			Help: "Total number of edit permission decisions",
		},
		[]string{"resource", "decision"}, // decision: allowed, denied
	)
)

// Database metrics track database performance.
var (
	// DBQueryDuration measures database call duration.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsInUse tracks active database connections.
	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections.
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordEntityOperation counts one persisted write.
func RecordEntityOperation(entity, operation string) {
	EntityOperationsTotal.WithLabelValues(entity, operation).Inc()
}

// RecordDuplicateRejection counts a write rejected on field.
func RecordDuplicateRejection(field string) {
	DuplicateRejectionsTotal.WithLabelValues(field).Inc()
}

// RecordAuthorization counts an edit-permission decision on resource.
func RecordAuthorization(resource string, allowed bool) {
	decision := "allowed"
	if !allowed {
		decision = "denied"
	}
	AuthorizationDecisionsTotal.WithLabelValues(resource, decision).Inc()
}

// RecordOperationDuration records the duration of a database call.
func RecordOperationDuration(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBStats copies pool statistics into the connection gauges.
func UpdateDBStats(stats sql.DBStats) {
	DBConnectionsInUse.Set(float64(stats.InUse))
	DBConnectionsIdle.Set(float64(stats.Idle))
}

// SetCircuitBreakerState publishes the numeric state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
