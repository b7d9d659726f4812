package olc

import (
	"runtime"
	"time"
)

// Default knobs. Mirrors the teacher's pattern of naming default
// constants next to the Options type they configure.
const (
	// DefaultAltitudeRuleMeters is the OLC "1000 m rule": finish altitude
	// must be no more than this many metres below start altitude.
	DefaultAltitudeRuleMeters = 1000

	// defaultPenaltyKM is subtracted from the distance of a non-compliant
	// start candidate in an anchored graph, so it is always dominated by a
	// compliant candidate when one exists (design note in spec §9). It
	// must exceed any realistically achievable true distance — about
	// 2500 km for a single flight — by a comfortable margin.
	defaultPenaltyKM = 100_000.0
)

// Options configures Optimize's execution policy. Workers never changes
// the numeric result (modulo the documented tie-break rule);
// AltitudeRuleMeters changes the rule being scored, and a TimeLimit that
// expires may leave a non-optimal solution. The zero value is not meaningful —
// use DefaultOptions and override fields as needed, exactly as the
// teacher's tsp.Options/DefaultOptions() pair does.
type Options struct {
	// Workers bounds the number of goroutines used to parallelize distance
	// matrix rows and DP graph layers. Zero or negative means
	// runtime.GOMAXPROCS(0). A value of 1 forces sequential execution
	// (useful for deterministic diffing against a brute-force oracle).
	Workers int

	// AltitudeRuleMeters overrides DefaultAltitudeRuleMeters (1000 m).
	// Exposed for testing against alternative task rules; production
	// callers should leave it at the default.
	AltitudeRuleMeters int16

	// TimeLimit optionally bounds the wall-clock time spent in the
	// branch-and-bound refinement loop (§4.7 step 5). Zero means no
	// limit. The global graph build and the first valid solution are
	// never time-limited — only further refinement candidates are
	// skipped once the deadline passes, so Optimize still returns the
	// best solution found so far rather than erroring out.
	TimeLimit time.Duration
}

// Option mutates an Options value. Functional options, in the teacher's
// core.GraphOption / matrix.Option idiom.
type Option func(*Options)

// WithWorkers sets the worker-goroutine cap. See Options.Workers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSequential forces single-goroutine execution. Equivalent to
// WithWorkers(1).
func WithSequential() Option {
	return func(o *Options) { o.Workers = 1 }
}

// WithAltitudeRule overrides the 1000 m rule threshold.
func WithAltitudeRule(meters int16) Option {
	return func(o *Options) { o.AltitudeRuleMeters = meters }
}

// WithTimeLimit bounds branch-and-bound refinement wall-clock time.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// DefaultOptions returns production-ready defaults: GOMAXPROCS workers,
// the standard 1000 m rule, and no time limit.
func DefaultOptions() Options {
	return Options{
		Workers:            0,
		AltitudeRuleMeters: DefaultAltitudeRuleMeters,
		TimeLimit:          0,
	}
}

// workerCount resolves the effective worker count for a parallel loop.
func (o Options) workerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// sequential reports whether parallel loops should run inline.
func (o Options) sequential() bool {
	return o.Workers == 1
}
