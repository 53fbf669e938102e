// Package board defines core types and sentinel errors for the
// chessboard and knight-move generator.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board operations.
var (
	// ErrBoardSize indicates a non-positive board size.
	ErrBoardSize = errors.New("board: size must be a positive integer")
	// ErrInvalidSquare indicates a square outside the board bounds.
	ErrInvalidSquare = errors.New("board: square outside board bounds")
)

// Square is a single board position: File is the column (0 = "a"),
// Rank is the row (0 = rank "1"). Squares compare and hash by value,
// so they can key maps directly.
type Square struct {
	File int
	Rank int
}

// String renders the square as "(file,rank)" for logs and error text.
// Algebraic formatting lives in package notation.
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
}

// Less reports whether s precedes t in file-major, then rank, order.
// It is the comparison underlying the canonical path ordering.
func (s Square) Less(t Square) bool {
	if s.File != t.File {
		return s.File < t.File
	}

	return s.Rank < t.Rank
}

// Move is one ordered knight transition between two squares.
// Moves are generated on demand and never stored persistently.
type Move struct {
	From Square
	To   Square
}

// IsKnight reports whether the move's coordinate deltas form a
// permutation of (±1, ±2), the knight-move legality predicate.
func (m Move) IsKnight() bool {
	df, dr := m.To.File-m.From.File, m.To.Rank-m.From.Rank
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}

	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}
