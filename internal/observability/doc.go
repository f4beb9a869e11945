// Package observability groups the logging, metrics and tracing helpers.
//
// Subpackages:
//   - logging: slog construction and context propagation
//   - metrics: Prometheus collectors for domain events and database calls
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability
