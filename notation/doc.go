// Package notation converts between algebraic chess coordinates ("a1",
// "h8") and board.Square values.
//
// A square's file maps to a letter ('a' = file 0) and its rank to a
// 1-based number, so boards larger than 9×9 simply grow the rank digits
// ("a10"). Files beyond 'z' are not supported, which bounds usable board
// sizes at 26, plenty for a knight-move playground.
//
// The search core never parses strings; this package is the boundary
// where human-readable coordinates become Square values and back.
//
// Errors:
//
//   - ErrBadNotation: input is not letter-then-digits algebraic form.
//   - ErrOffBoard: the notation parses but names a square outside the
//     given board size.
package notation
