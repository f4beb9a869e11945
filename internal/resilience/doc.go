// Package resilience groups the fault-tolerance helpers used around the database:
// a circuit breaker that every repository call passes through, and a bounded
// exponential backoff used only while waiting for the database at startup.
// Mutating requests are never retried.
package resilience
