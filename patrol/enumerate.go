package patrol

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patrol/guard"
	"github.com/katalvlaran/patrol/loop"
	"github.com/katalvlaran/patrol/obstruction"
)

// Candidates lists every cell of path except its start, sorted by position.
// The start is excluded because the guard already stands there.
func Candidates(path *guard.Path) []Candidate {
	out := make([]Candidate, 0, len(path.Visited))
	for pos, dir := range path.Visited {
		if pos == path.Start.Pos {
			continue
		}
		out = append(out, Candidate{Pos: pos, Dir: dir})
	}
	slices.SortFunc(out, func(a, b Candidate) int { return cmp.Compare(a.Pos, b.Pos) })

	return out
}

// Enumerate tries each candidate as an extra obstruction on idx and returns
// the positions that trap the guard, ascending.
//
// Candidates are split into contiguous shards, one per worker. Every worker
// clones idx and runs its trials against the clone, writing verdicts into a
// disjoint range of a shared slice, so idx itself is only read. The first
// failing trial or a done ctx stops all workers.
func Enumerate(ctx context.Context, idx *obstruction.Index, cands []Candidate, opts ...Option) ([]int, error) {
	o := gather(opts)
	workers := max(1, min(o.Workers, len(cands)))

	ctx, span := otel.Tracer(tracerName).Start(ctx, "patrol.Enumerate",
		trace.WithAttributes(
			attribute.Int("candidates", len(cands)),
			attribute.Int("workers", workers),
		),
	)
	defer span.End()

	trapped := make([]bool, len(cands))
	chunk := (len(cands) + workers - 1) / workers
	eg, ctx := errgroup.WithContext(ctx)
	for shard, lo := 0, 0; lo < len(cands); shard, lo = shard+1, lo+chunk {
		shard, lo := shard, lo // per-iteration copies (go.mod targets go 1.21)
		hi := min(lo+chunk, len(cands))
		eg.Go(func() error {
			local := idx.Clone()
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				ok, err := loop.Detect(local, cands[i].Pos, cands[i].Dir, o.Detect...)
				if err != nil {
					return fmt.Errorf("patrol: Enumerate: candidate %d: %w", cands[i].Pos, err)
				}
				trapped[i] = ok
			}
			o.Logger.WithFields(logrus.Fields{
				"shard": shard, "from": lo, "to": hi,
			}).Debug("shard done")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "enumerate failed")
		return nil, err
	}

	var out []int
	for i, ok := range trapped {
		if ok {
			out = append(out, cands[i].Pos)
		}
	}
	slices.Sort(out)
	span.SetAttributes(attribute.Int("loops", len(out)))

	return out, nil
}
