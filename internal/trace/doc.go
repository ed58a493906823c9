// Package trace is the logging and tracing subsystem of asm09.
//
// Every component reports through a Tracer taken from its context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//	trace.Log(t, trace.LevelError, trace.ScopeDocument, "document.read", err.Error(), "uri", uri)
//
// # Tracers
//
//   - Nop: discards everything (the default when no tracer is attached)
//   - StreamTracer: writes text or NDJSON lines as events arrive
//   - RingTracer: keeps the last N events in memory; tests assert on its Snapshot
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
// off < error < warn < info < debug < trace. An event passes when its level
// is at or below the tracer's level.
//
// # Names
//
// Log events carry a stable dotted name such as "folder.scan-reference" so
// that callers and tests can match on them without parsing messages.
package trace
