// Package knightpath enumerates every shortest knight path between two
// squares of an N×N board.
//
// What:
//
//   - FindAllShortestPaths computes the minimal move count between a start
//     and end square and returns the complete set of distinct move
//     sequences achieving it, not just one witness path.
//   - Two-phase search: forward BFS layering that records the full
//     predecessor set of every square at its first (minimal) distance,
//     then backward recursive reconstruction from end to start. A
//     single-parent BFS would lose tied predecessors, so the predecessor
//     SET per square is the load-bearing structure here.
//
// Why:
//
//   - Puzzle tooling and renderers want the whole solution space, e.g. to
//     draw every minimal route a1→h8 (distance 6, 108 paths on 8×8).
//
// Complexity:
//
//   - Forward layering: O(V + E) with V = N² and E ≤ 8V.
//   - Reconstruction: O(P×D) where P is the number of shortest paths and
//     D the minimal distance. P can grow combinatorially with board size
//     and symmetry; the package deliberately returns all of them and
//     never caps the result count.
//
// Ordering:
//
//   - Returned paths are sorted into canonical lexicographic order by
//     their square sequences. The algorithm itself imposes no order; the
//     sort only decouples output from the incidental iteration order of
//     the move offsets.
//
// Errors:
//
//   - ErrInvalidSquare: start or end lies outside the board.
//   - ErrUnreachable: no sequence of legal moves connects the squares.
//     An expected outcome for disconnected configurations, not a fault.
//   - board.ErrBoardSize: the requested board size is not positive.
//
// Each query owns its layer map and predecessor sets and discards them on
// return; nothing is shared across queries.
package knightpath
