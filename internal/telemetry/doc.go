// Package telemetry configures logging and metrics for the glslang command
// line tools.
//
// Logging uses zerolog with either a console or a JSON writer. Metrics are
// Prometheus collectors kept in a private registry and served over HTTP on
// request.
package telemetry
