// Package obstruction indexes the blocking cells of a grid by row and by
// column so that a walker can find the nearest obstruction ahead of it
// without stepping cell by cell.
//
// What:
//
//   - Index keeps two mappings: column x → sorted row offsets, and
//     row y → sorted column offsets. A cell is in one iff it is in the other.
//   - Next answers "nearest obstruction strictly ahead of p heading d" with a
//     binary search on a single line.
//   - Place temporarily registers one extra obstruction and hands back a
//     release func that restores the index exactly.
//
// Why:
//
//   - Loop analysis re-runs a full trace once per candidate cell; replacing
//     O(W) straight-line walks with O(log k) lookups (k = obstructions on the
//     line) keeps that affordable.
//
// Complexity:
//
//   - Build: O(W×H), Memory: O(N)   (N = obstructions).
//   - Next:  O(log k).
//   - Place / release: O(k) for the slice shift on each line.
//   - Clone: O(N).
//
// Concurrency:
//
//   - An Index is not safe for concurrent mutation. Share it read-only, or
//     give each goroutine its own Clone before calling Place.
package obstruction
