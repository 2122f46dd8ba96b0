// Package trace provides a tracing subsystem for the myst interpreter.
//
// The trace package enables tracking of per-statement execution and
// method dispatch to help diagnose performance issues and
// hangs in a running program.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	myst run --trace=- --trace-level=phase myfile.myst
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - NopTracer: Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer for crash dumps
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-dispatch events
//   - LevelDebug: Everything including AST nodes
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: One Interpreter.Run call, start to finish
//   - ScopePass: One top-level statement's evaluation
//   - ScopeModule: One method dispatch (ancestor-chain lookup + invocation)
//   - ScopeNode: AST node level (reserved, not yet emitted)
//
// # Context Propagation
//
// Tracers are propagated via context where a call chain doesn't thread one
// explicitly:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "stmt[0]", parentID)
//	defer span.End("")
package trace
