// Package knightpath implements all-shortest-paths enumeration over the
// knight-move graph of a bounded board, via multi-parent BFS layering and
// backward reconstruction.
package knightpath

import (
	"context"
	"fmt"
	"sort"

	"github.com/GongXiangbo/Knight/board"
)

// walker encapsulates the mutable state of one query. A fresh walker is
// built per call, so no state leaks across queries.
type walker struct {
	board   board.Board
	opts    Options
	ctx     context.Context
	queue   []board.Square
	layer   map[board.Square]int
	parents map[board.Square][]board.Square
}

// FindAllShortestPaths returns the set of ALL shortest knight paths from
// start to end on a size×size board, applying any number of functional
// Options.
//
// Returns board.ErrBoardSize for a non-positive size, ErrInvalidSquare if
// start or end is off the board, ErrUnreachable if no path exists, or the
// context's error on cancellation. On success Result.Paths is non-empty,
// every path has length Result.Distance+1, and paths appear in canonical
// lexicographic order.
//
// start == end is answered before any search: the result is the single
// zero-length path containing only that square.
func FindAllShortestPaths(start, end board.Square, size int, opts ...Option) (*Result, error) {
	b, err := board.New(size)
	if err != nil {
		return nil, err
	}
	if !b.Contains(start) {
		return nil, fmt.Errorf("%w: start %s on %d×%d board", ErrInvalidSquare, start, size, size)
	}
	if !b.Contains(end) {
		return nil, fmt.Errorf("%w: end %s on %d×%d board", ErrInvalidSquare, end, size, size)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if start == end {
		return &Result{Distance: 0, Paths: []Path{{start}}}, nil
	}

	w := &walker{
		board:   b,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]board.Square, 0, size*size),
		layer:   make(map[board.Square]int, size*size),
		parents: make(map[board.Square][]board.Square, size*size),
	}
	if err = w.forward(start, end); err != nil {
		return nil, err
	}

	dist, ok := w.layer[end]
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s on %d×%d board", ErrUnreachable, start, end, size, size)
	}

	paths := w.backtrack(start, end)
	sort.Slice(paths, func(i, j int) bool { return paths[i].Less(paths[j]) })

	return &Result{Distance: dist, Paths: paths}, nil
}

// forward runs the BFS layering from start. A square's distance is fixed
// the first time it is discovered and never revised; its predecessor set
// collects EVERY neighbor sitting exactly one layer closer to start, so
// tied shortest routes survive for reconstruction. Layer k is fully
// dequeued before layer k+1, which is what makes first-discovery minimal.
func (w *walker) forward(start, end board.Square) error {
	w.layer[start] = 0
	w.queue = append(w.queue, start)

	endDist := -1
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[head]
		depth := w.layer[cur]
		// All predecessors of end live in layer endDist-1, which is fully
		// processed before any endDist square is dequeued.
		if endDist >= 0 && depth >= endDist {
			break
		}
		w.opts.OnVisit(cur, depth)

		dsts, err := w.board.Moves(cur)
		if err != nil {
			return err
		}
		for _, nxt := range dsts {
			if seen, ok := w.layer[nxt]; !ok {
				w.layer[nxt] = depth + 1
				w.parents[nxt] = append(w.parents[nxt], cur)
				w.queue = append(w.queue, nxt)
				if nxt == end {
					endDist = depth + 1
				}
			} else if seen == depth+1 {
				w.parents[nxt] = append(w.parents[nxt], cur)
			}
		}
	}

	return nil
}

// backtrack expands every predecessor chain from end down to start,
// emitting one complete path per chain. Distinctness is inherent: the
// move generator yields each destination once, so predecessor sets hold
// distinct squares and no two expansions can coincide.
func (w *walker) backtrack(start, end board.Square) []Path {
	var (
		paths []Path
		tail  = make([]board.Square, 0, w.layer[end]+1)
	)

	var expand func(sq board.Square)
	expand = func(sq board.Square) {
		tail = append(tail, sq)
		if sq == start {
			p := make(Path, len(tail))
			for i, s := range tail {
				p[len(tail)-1-i] = s
			}
			paths = append(paths, p)
		} else {
			for _, prev := range w.parents[sq] {
				expand(prev)
			}
		}
		tail = tail[:len(tail)-1]
	}
	expand(end)

	return paths
}
