package loop

import "errors"

// DefaultThreshold is the number of departures from one cell tolerated
// before the Threshold strategy declares a cycle.
const DefaultThreshold = 3

const panicThresholdInvalid = "loop: WithThreshold: threshold must be >= 1"

// ErrNoApproach indicates that the trial cell has no in-bounds predecessor
// along the given heading.
var ErrNoApproach = errors.New("loop: no cell behind trial obstruction")

// Strategy selects how Detect recognizes a cycle.
type Strategy int

const (
	// Threshold counts departures per cell and fires above the threshold.
	Threshold Strategy = iota
	// Exact fires on the first repeated pre-turn (cell, heading) state.
	Exact
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s == Exact {
		return "exact"
	}
	return "threshold"
}

// Option configures Detect.
type Option func(*Options)

// Options holds the detection policy. Zero value is not meaningful; start
// from DefaultOptions.
type Options struct {
	Strategy  Strategy
	Threshold int
}

// DefaultOptions returns the Threshold strategy with DefaultThreshold.
func DefaultOptions() Options {
	return Options{
		Strategy:  Threshold,
		Threshold: DefaultThreshold,
	}
}

// WithThreshold selects the Threshold strategy with limit n.
// Panics if n < 1.
func WithThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) {
		o.Strategy = Threshold
		o.Threshold = n
	}
}

// WithExact selects the Exact strategy.
func WithExact() Option {
	return func(o *Options) {
		o.Strategy = Exact
	}
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
