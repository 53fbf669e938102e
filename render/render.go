package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/emicklei/dot"

	"github.com/GongXiangbo/Knight/knightpath"
	"github.com/GongXiangbo/Knight/notation"
)

// ErrNilResult is returned when a nil result is handed to a renderer.
var ErrNilResult = errors.New("render: nil result")

// Graph builds the DOT digraph of a path set: one node per visited
// square, one edge per consecutive pair. Edges shared by several paths
// appear once. Node and edge order follow the canonical path order, so
// the graph bytes are reproducible.
func Graph(res *knightpath.Result) (*dot.Graph, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	type link struct{ src, dst string }
	drawn := make(map[link]bool)
	for _, p := range res.Paths {
		for i := 1; i < len(p); i++ {
			l := link{src: notation.Format(p[i-1]), dst: notation.Format(p[i])}
			if drawn[l] {
				continue
			}
			drawn[l] = true
			g.Edge(g.Node(l.src), g.Node(l.dst))
		}
	}
	// A zero-distance result still shows its single square.
	if res.Distance == 0 && len(res.Paths) == 1 {
		g.Node(notation.Format(res.Paths[0][0]))
	}

	return g, nil
}

// WriteDOT renders the path set as DOT source into w.
func WriteDOT(w io.Writer, res *knightpath.Result) error {
	g, err := Graph(res)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, g.String()); err != nil {
		return fmt.Errorf("render: writing dot: %w", err)
	}

	return nil
}

// SaveDOT writes the DOT source to the given file path.
func SaveDOT(path string, res *knightpath.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = WriteDOT(f, res); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// WritePaths writes the plain-text listing into w: one path per line,
// algebraic squares joined by " -> ", in canonical order.
func WritePaths(w io.Writer, res *knightpath.Result) error {
	if res == nil {
		return ErrNilResult
	}
	for _, p := range res.Paths {
		if _, err := fmt.Fprintln(w, notation.FormatPath(p)); err != nil {
			return fmt.Errorf("render: writing paths: %w", err)
		}
	}

	return nil
}

// SavePaths writes the plain-text listing to the given file path.
func SavePaths(path string, res *knightpath.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = WritePaths(f, res); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
