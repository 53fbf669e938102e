// Package board treats an N×N chessboard as the implicit vertex set of
// the knight-move graph. The Board itself is immutable once built.
package board

import "fmt"

// knightOffsets lists the 8 knight displacement vectors {(±1,±2), (±2,±1)}.
// Iteration order is fixed but carries no semantic weight: callers that
// need a canonical ordering sort results themselves.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// Board is an N×N chessboard. It has no mutable state; it only bounds
// which squares are legal.
type Board struct {
	size int
}

// New constructs a Board of the given size.
// Returns ErrBoardSize if size < 1.
// Complexity: O(1).
func New(size int) (Board, error) {
	if size < 1 {
		return Board{}, fmt.Errorf("%w: got %d", ErrBoardSize, size)
	}

	return Board{size: size}, nil
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return b.size
}

// Contains reports whether sq lies within [0,N-1] on both axes.
// Complexity: O(1).
func (b Board) Contains(sq Square) bool {
	return sq.File >= 0 && sq.File < b.size && sq.Rank >= 0 && sq.Rank < b.size
}

// Moves returns every square reachable from sq by one legal knight move,
// i.e. all in-bounds squares (file+dx, rank+dy) for the 8 knight offsets.
// Returns ErrInvalidSquare if sq itself is off the board; the generator
// does not clamp.
// Pure and deterministic; Complexity: O(1), at most 8 candidates.
func (b Board) Moves(sq Square) ([]Square, error) {
	if !b.Contains(sq) {
		return nil, fmt.Errorf("%w: %s on %d×%d board", ErrInvalidSquare, sq, b.size, b.size)
	}

	dst := make([]Square, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		cand := Square{File: sq.File + off[0], Rank: sq.Rank + off[1]}
		if b.Contains(cand) {
			dst = append(dst, cand)
		}
	}

	return dst, nil
}
