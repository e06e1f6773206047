// Package telemetry provides hierarchical timing collection for pipeline
// operations. Collectors travel through context so instrumentation can be
// enabled per run without changing function signatures; when no collector is
// present, a no-op implementation keeps the overhead at zero.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.StartTimer(ctx, "load ledger")
//	// ... work ...
//	timer.End()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
)

// Private context key types to avoid collisions.
type collectorContextKey struct{}
type rootTimerContextKey struct{}

var (
	collectorKey = collectorContextKey{}
	rootTimerKey = rootTimerContextKey{}
)

// Collector collects timing data for a run.
type Collector interface {
	// Start begins timing an operation and returns a Timer. The timer must
	// be ended with End() when the operation completes.
	Start(name string) Timer

	// Report writes the collected timing tree to w.
	Report(w io.Writer)
}

// Timer tracks a single operation's timing. Timers nest via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a timer nested under this one.
	Child(name string) Timer
}

// WithCollector stores a collector in the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from the context, or a no-op collector
// when none is present.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

// WithRootTimer stores a root timer so nested operations can attach child
// timers without threading Timer values through every call.
func WithRootTimer(ctx context.Context, timer Timer) context.Context {
	return context.WithValue(ctx, rootTimerKey, timer)
}

// StartTimer starts a timer for an operation. It nests under the context's
// root timer when one is set, otherwise it starts a top-level timer on the
// context's collector.
func StartTimer(ctx context.Context, name string) Timer {
	if timer, ok := ctx.Value(rootTimerKey).(Timer); ok {
		return timer.Child(name)
	}
	return FromContext(ctx).Start(name)
}
