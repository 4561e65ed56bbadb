package patrol

import (
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/loop"
)

const tracerName = "github.com/katalvlaran/patrol"

const panicWorkersInvalid = "patrol: WithWorkers: workers must be >= 1"

// Candidate is a cell where a hypothetical obstruction is tried, with the
// heading the guard held when it first reached that cell.
type Candidate struct {
	Pos int
	Dir grid.Direction
}

// Report is the outcome of one Analyze run.
type Report struct {
	// ID identifies the run in logs and traces.
	ID uuid.UUID
	// Visited counts distinct cells covered by the unmodified walk.
	Visited int
	// Candidates counts cells tried as extra obstructions.
	Candidates int
	// Loops counts candidates that trap the guard.
	Loops int
	// LoopCells lists the trapping positions in ascending order.
	LoopCells []int
	// Elapsed is the wall time of the whole analysis.
	Elapsed time.Duration
}

// Option configures Analyze and Enumerate.
type Option func(*Options)

// Options holds run parameters.
type Options struct {
	// Workers is the number of goroutines Enumerate shards candidates over.
	Workers int
	// Logger receives run progress. Never nil after gather.
	Logger logrus.FieldLogger
	// Detect is passed to every loop.Detect call.
	Detect []loop.Option
}

// DefaultOptions returns GOMAXPROCS workers, a discarding logger and the
// default detection policy.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  discard(),
		Detect:  nil,
	}
}

// WithWorkers sets the number of Enumerate workers. 1 runs every trial on
// the calling goroutine's shard sequentially. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger routes run logs to l. A nil l keeps the discarding logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDetectOptions appends loop detection options.
func WithDetectOptions(opts ...loop.Option) Option {
	return func(o *Options) {
		o.Detect = append(o.Detect, opts...)
	}
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
