package render_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GongXiangbo/Knight/board"
	"github.com/GongXiangbo/Knight/knightpath"
	"github.com/GongXiangbo/Knight/render"
)

// cornerResult enumerates the 4×4 corner-to-corner query: two paths of
// two moves each, four distinct edges in total.
func cornerResult(t *testing.T) *knightpath.Result {
	t.Helper()
	res, err := knightpath.FindAllShortestPaths(
		board.Square{File: 0, Rank: 0}, board.Square{File: 3, Rank: 3}, 4)
	require.NoError(t, err)

	return res
}

// TestWriteDOT checks the digraph carries every visited square and every
// consecutive pair exactly once.
func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WriteDOT(&buf, cornerResult(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph"), "not a digraph: %q", out)
	assert.Contains(t, out, "rankdir")
	assert.Contains(t, out, `"LR"`)
	for _, sq := range []string{"a1", "b3", "c2", "d4"} {
		assert.Contains(t, out, sq)
	}
	// a1→b3→d4 and a1→c2→d4 give four deduped edges.
	assert.Equal(t, 4, strings.Count(out, "->"), "edge count in %q", out)
}

// TestWriteDOT_Deterministic: same query, same bytes.
func TestWriteDOT_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, render.WriteDOT(&first, cornerResult(t)))
	require.NoError(t, render.WriteDOT(&second, cornerResult(t)))
	assert.Equal(t, first.String(), second.String())
}

// TestWriteDOT_SharedEdges: overlapping paths must not duplicate edges.
func TestWriteDOT_SharedEdges(t *testing.T) {
	res, err := knightpath.FindAllShortestPaths(
		board.Square{File: 0, Rank: 0}, board.Square{File: 7, Rank: 7}, 8)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteDOT(&buf, res))

	// 108 paths of 6 moves each collapse far below 648 drawn edges.
	edges := strings.Count(buf.String(), "->")
	assert.Less(t, edges, 6*len(res.Paths))
	assert.Greater(t, edges, 6) // more than a single chain survives
}

// TestWriteDOT_ZeroDistance keeps the lone square visible with no edges.
func TestWriteDOT_ZeroDistance(t *testing.T) {
	sq := board.Square{File: 2, Rank: 2}
	res, err := knightpath.FindAllShortestPaths(sq, sq, 8)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteDOT(&buf, res))
	assert.Contains(t, buf.String(), "c3")
	assert.Zero(t, strings.Count(buf.String(), "->"))
}

// TestWritePaths pins the plain-text listing format and order.
func TestWritePaths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WritePaths(&buf, cornerResult(t)))
	assert.Equal(t, "a1 -> b3 -> d4\na1 -> c2 -> d4\n", buf.String())
}

// TestNilResult covers the guard on both writers.
func TestNilResult(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, errors.Is(render.WriteDOT(&buf, nil), render.ErrNilResult))
	assert.True(t, errors.Is(render.WritePaths(&buf, nil), render.ErrNilResult))
}

// TestSaveArtifacts round-trips both files through a temp directory.
func TestSaveArtifacts(t *testing.T) {
	dir := t.TempDir()
	res := cornerResult(t)

	dotPath := filepath.Join(dir, "knight_paths.dot")
	require.NoError(t, render.SaveDOT(dotPath, res))
	raw, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "digraph")

	txtPath := filepath.Join(dir, "paths.txt")
	require.NoError(t, render.SavePaths(txtPath, res))
	raw, err = os.ReadFile(txtPath)
	require.NoError(t, err)
	assert.Equal(t, "a1 -> b3 -> d4\na1 -> c2 -> d4\n", string(raw))
}
