package gen_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gferrors "github.com/graphforge/graphforge/pkg/errors"
	"github.com/graphforge/graphforge/pkg/gen"
)

func TestGrid2x2Golden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	g := gen.Grid{Rows: 2, Cols: 2}

	res, err := g.Generate(context.Background(), nil, path)
	require.NoError(t, err)
	require.EqualValues(t, 4, res.Edges)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "// Grid graph: 2x2\n0 1\n0 2\n1 3\n2 3\n", string(data))
}

func TestGridEdgeCount(t *testing.T) {
	tests := []struct {
		rows, cols int64
	}{
		{1, 1},
		{1, 10},
		{10, 1},
		{3, 4},
		{10, 7},
		{316, 316},
	}

	for _, tt := range tests {
		g := gen.Grid{Rows: tt.rows, Cols: tt.cols}
		want := tt.rows*(tt.cols-1) + tt.cols*(tt.rows-1)
		require.Equal(t, want, g.EdgeCount(), "rows=%d cols=%d", tt.rows, tt.cols)
	}
}

func TestGridProperties(t *testing.T) {
	const (
		rows = 10
		cols = 7
	)
	path := filepath.Join(t.TempDir(), "grid.txt")
	g := gen.Grid{Rows: rows, Cols: cols}

	res, err := g.Generate(context.Background(), nil, path)
	require.NoError(t, err)
	require.Equal(t, g.EdgeCount(), res.Edges)
	require.EqualValues(t, 0, res.Shortfall())

	outDegree := make(map[int64]int)
	for _, e := range readEdges(t, path) {
		require.NotEqual(t, e[0], e[1])
		require.Less(t, e[0], int64(rows*cols))
		require.Less(t, e[1], int64(rows*cols))
		outDegree[e[0]]++
	}
	for node, d := range outDegree {
		require.LessOrEqual(t, d, 2, "node %d has out-degree %d", node, d)
	}
}

func TestGridSingleCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	g := gen.Grid{Rows: 1, Cols: 1}

	res, err := g.Generate(context.Background(), nil, path)
	require.NoError(t, err)
	require.EqualValues(t, 0, res.Edges)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "// Grid graph: 1x1\n", string(data))
}

func TestGridInvalidParameters(t *testing.T) {
	for name, g := range map[string]gen.Grid{
		"zero rows":     {Rows: 0, Cols: 5},
		"zero cols":     {Rows: 5, Cols: 0},
		"negative rows": {Rows: -1, Cols: 5},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := g.Generate(context.Background(), nil, filepath.Join(t.TempDir(), "out.txt"))
			require.Error(t, err)
			require.True(t, gferrors.Is(err, gferrors.ErrCodeInvalidParameter))
		})
	}
}
