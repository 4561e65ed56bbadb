package patrol

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/obstruction"
)

// Analyze walks the guard from start across g, where cells equal to wall
// block it, and counts both the visited cells and the trapping candidates.
func Analyze[T comparable](ctx context.Context, g *grid.Grid[T], start guard.State, wall T, opts ...Option) (*Report, error) {
	o := gather(opts)
	began := time.Now()
	id := uuid.New()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "patrol.Analyze",
		trace.WithAttributes(
			attribute.String("run_id", id.String()),
			attribute.Int("width", g.Width),
			attribute.Int("height", g.Height),
		),
	)
	defer span.End()

	log := o.Logger.WithFields(logrus.Fields{
		"run":    id.String(),
		"width":  g.Width,
		"height": g.Height,
	})
	log.Debug("analysis started")

	idx := obstruction.Build(g, wall)
	path, err := guard.Walk(g, start, wall)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "baseline walk failed")
		log.WithError(err).Warn("baseline walk failed")
		return nil, fmt.Errorf("patrol: Analyze: %w", err)
	}

	cands := Candidates(path)
	loops, err := Enumerate(ctx, idx, cands, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "enumerate failed")
		log.WithError(err).Warn("candidate enumeration failed")
		return nil, fmt.Errorf("patrol: Analyze: %w", err)
	}

	r := &Report{
		ID:         id,
		Visited:    path.Len(),
		Candidates: len(cands),
		Loops:      len(loops),
		LoopCells:  loops,
		Elapsed:    time.Since(began),
	}
	span.SetAttributes(
		attribute.Int("visited", r.Visited),
		attribute.Int("loops", r.Loops),
	)
	log.WithFields(logrus.Fields{
		"visited":    r.Visited,
		"candidates": r.Candidates,
		"loops":      r.Loops,
		"elapsed":    r.Elapsed,
	}).Info("analysis finished")

	return r, nil
}

// AnalyzeBoard parses a character board (. free, # wall, one of ^ > v <),
// locates the guard and runs Analyze.
func AnalyzeBoard(ctx context.Context, r io.Reader, opts ...Option) (*Report, error) {
	g, err := grid.ParseRunes(r)
	if err != nil {
		return nil, fmt.Errorf("patrol: AnalyzeBoard: %w", err)
	}
	start, err := guard.Locate(g)
	if err != nil {
		return nil, fmt.Errorf("patrol: AnalyzeBoard: %w", err)
	}

	return Analyze(ctx, g, start, rune(guard.Wall), opts...)
}
