// Package knightpath provides tunable options and error definitions
// for shortest-path enumeration over the knight-move graph.
package knightpath

import (
	"context"
	"errors"
	"strings"

	"github.com/GongXiangbo/Knight/board"
)

// Sentinel errors for enumeration.
var (
	// ErrInvalidSquare is returned when start or end lies outside the board.
	ErrInvalidSquare = errors.New("knightpath: square outside board bounds")

	// ErrUnreachable is returned when no sequence of legal knight moves
	// connects start and end. It is a reported outcome, not a fault:
	// callers distinguish it from an empty result caused by a bug.
	ErrUnreachable = errors.New("knightpath: no knight path between squares")
)

// Option configures enumeration behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a query.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnVisit is called when the forward layering dequeues a square,
	// with its minimal distance from the start square.
	OnVisit func(sq board.Square, depth int)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(board.Square, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked per visited square.
func WithOnVisit(fn func(sq board.Square, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Path is an ordered square sequence of length distance+1: consecutive
// elements are one knight move apart, the first is the start square and
// the last is the end square.
type Path []board.Square

// Reversed returns a new Path with the square order inverted. Knight
// moves are reversible, so the reverse of a shortest a→b path is a
// shortest b→a path.
func (p Path) Reversed() Path {
	rev := make(Path, len(p))
	for i, sq := range p {
		rev[len(p)-1-i] = sq
	}

	return rev
}

// Less reports whether p precedes q in lexicographic order over square
// sequences, the canonical order of a Result's path set.
func (p Path) Less(q Path) bool {
	for i := 0; i < len(p) && i < len(q); i++ {
		if p[i] != q[i] {
			return p[i].Less(q[i])
		}
	}

	return len(p) < len(q)
}

// String joins the squares with " -> " for logs and debugging.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, sq := range p {
		parts[i] = sq.String()
	}

	return strings.Join(parts, " -> ")
}

// Result holds the outcome of an enumeration:
//   - Distance: the minimal move count from start to end.
//   - Paths: every distinct shortest path, in canonical lexicographic
//     order. All paths have length Distance+1.
type Result struct {
	Distance int
	Paths    []Path
}
