// Package observability provides OpenTelemetry tracing and metrics for
// qtkit binding resolution.
//
// Resolution happens once per process, so the instrumentation surface is
// small: one span for the whole build with per-candidate attempt events,
// and counters for resolution outcomes and activation attempts. Exporters
// ship over OTLP HTTP; call InitTracer/InitMeter once at startup if the
// host application wants the data exported, or skip them and the API
// no-ops against the default providers.
package observability
