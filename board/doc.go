// Package board models a bounded N×N chessboard and generates legal
// knight moves on it.
//
// What:
//
//   - Square: an immutable (file, rank) coordinate pair, both in [0, N-1].
//   - Board: an N×N board defined solely by its size; it holds no state
//     beyond the bound it places on legal squares.
//   - Board.Moves: the set of squares one knight move away from a given
//     square, filtered to the board.
//
// Why:
//
//   - Shortest-path enumeration (package knightpath) queries Moves at every
//     visited square and needs it to be pure, deterministic, and O(1).
//   - Rendering and notation layers share the same Square value type.
//
// Complexity:
//
//   - Moves: O(1) time and memory (at most 8 candidates checked).
//
// Errors:
//
//   - ErrBoardSize: requested board size is not a positive integer.
//   - ErrInvalidSquare: a square handed to the generator lies off the board;
//     the generator reports this rather than silently clamping.
package board
