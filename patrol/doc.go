// Package patrol answers the two questions asked of a guarded board: how
// many cells does the guard cover before it leaves, and at how many of
// those cells would one extra obstruction trap it forever.
//
// What:
//
//   - Candidates: every visited cell except the start, with the heading the
//     guard held on first arrival.
//   - Enumerate: runs loop.Detect for each candidate, sharded across
//     workers; each worker owns a private clone of the obstruction index,
//     so the shared index is never written.
//   - Analyze: Build index → Walk → Candidates → Enumerate, wrapped in a
//     Report with a run ID and timing.
//   - AnalyzeBoard: the same starting from board text.
//
// Observability:
//
//   - Logging goes to a logrus.FieldLogger supplied with WithLogger; the
//     default discards everything.
//   - Analyze and Enumerate open OpenTelemetry spans on the global tracer
//     provider ("github.com/katalvlaran/patrol").
//
// Complexity:
//
//   - Analyze: O(W×H + S + C·T log k)   (S = baseline steps, C = candidates,
//     T = turning points per trial), divided across workers for the C term.
//
// Errors:
//
//   - Parsing, guard location and baseline errors are wrapped and returned.
//   - guard.ErrLooping: the unmodified board never lets the guard out.
//   - context errors: Enumerate stops between trials once ctx is done.
package patrol
