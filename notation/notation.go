package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/GongXiangbo/Knight/board"
)

// Sentinel errors for algebraic conversion.
var (
	// ErrBadNotation indicates input that is not algebraic form.
	ErrBadNotation = errors.New("notation: malformed algebraic square")
	// ErrOffBoard indicates a well-formed square outside the board.
	ErrOffBoard = errors.New("notation: square outside board")
)

// maxFiles bounds the file letter range to 'a'..'z'.
const maxFiles = 26

// Parse converts an algebraic coordinate like "a1" or "c12" into a
// Square, validating it against an N×N board of the given size.
// Returns ErrBadNotation for malformed input and ErrOffBoard for a
// square beyond the board bounds.
func Parse(alg string, size int) (board.Square, error) {
	s := strings.ToLower(strings.TrimSpace(alg))
	if len(s) < 2 {
		return board.Square{}, fmt.Errorf("%w: %q", ErrBadNotation, alg)
	}
	file := int(s[0] - 'a')
	if file < 0 || file >= maxFiles {
		return board.Square{}, fmt.Errorf("%w: %q", ErrBadNotation, alg)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || rank < 1 {
		return board.Square{}, fmt.Errorf("%w: %q", ErrBadNotation, alg)
	}

	sq := board.Square{File: file, Rank: rank - 1}
	if file >= size || rank > size {
		return board.Square{}, fmt.Errorf("%w: %q on %d×%d board", ErrOffBoard, alg, size, size)
	}

	return sq, nil
}

// Format renders a Square in algebraic form. The caller guarantees the
// square came from a board; files beyond 'z' would render garbage.
func Format(sq board.Square) string {
	return fmt.Sprintf("%c%d", 'a'+byte(sq.File), sq.Rank+1)
}

// FormatPath joins a square sequence with " -> ", the line format used
// in path listings: "a1 -> b3 -> c5".
func FormatPath(squares []board.Square) string {
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = Format(sq)
	}

	return strings.Join(parts, " -> ")
}

// ParsePath parses a listing line back into its square sequence: squares
// in algebraic form separated by "->", surrounding whitespace ignored.
// The inverse of FormatPath. Returns ErrBadNotation or ErrOffBoard from
// the first offending square.
func ParsePath(line string, size int) ([]board.Square, error) {
	parts := strings.Split(line, "->")
	squares := make([]board.Square, 0, len(parts))
	for _, part := range parts {
		sq, err := Parse(part, size)
		if err != nil {
			return nil, err
		}
		squares = append(squares, sq)
	}

	return squares, nil
}
