// Package otel provides OpenTelemetry metric exporter bindings for the
// session counters.
//
// [NewOTelExporter] registers an Int64ObservableCounter per session counter.
// A single callback reads [authclient.Manager.MetricsSnapshot] on each
// collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate session state.
package otel
