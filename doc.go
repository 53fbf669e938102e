// Package knight enumerates every shortest knight path between two
// squares of an N×N chessboard and turns the result into shareable
// artifacts.
//
// The interesting part is not finding one shortest route (any BFS does
// that) but finding ALL of them: the forward layering records the full
// predecessor set of every square, so tied routes survive and the
// backward pass reconstructs the complete solution space (108 paths for
// a1→h8 on the standard board).
//
// Everything is organized under small subpackages:
//
//	board/      — Square/Move value types and the knight-move generator
//	knightpath/ — multi-parent BFS layering + all-paths reconstruction
//	notation/   — algebraic coordinates ("a1") ⇄ Square
//	config/     — JSONC configuration (board size, default positions)
//	render/     — DOT digraph + plain-text path listings
//	api/        — HTTP endpoint serving the same query
//	cmd/knight  — the command-line tool gluing it all together
//
// Quick taste:
//
//	res, err := knightpath.FindAllShortestPaths(
//	    board.Square{File: 0, Rank: 0}, // a1
//	    board.Square{File: 7, Rank: 7}, // h8
//	    8)
//	// res.Distance == 6, len(res.Paths) == 108
//
// The path set can grow combinatorially with board size. That is the
// nature of the problem, and the library returns all of it rather than
// capping the count.
package knight
