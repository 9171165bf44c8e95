package gen_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gferrors "github.com/graphforge/graphforge/pkg/errors"
	"github.com/graphforge/graphforge/pkg/gen"
)

func TestScaleFreeProperties(t *testing.T) {
	const (
		nodes  = 2000
		degree = 5
	)
	path := filepath.Join(t.TempDir(), "scalefree.txt")
	g := gen.ScaleFree{Nodes: nodes, AvgDegree: degree}

	res, err := g.Generate(context.Background(), gen.NewSource(42), path)
	require.NoError(t, err)

	// Each node emits one hub edge and degree random edges, minus skipped
	// self-loops: the total lands between N*D and N*(D+1).
	require.GreaterOrEqual(t, res.Edges, int64(nodes*degree))
	require.LessOrEqual(t, res.Edges, int64(nodes*(degree+1)))

	numHubs := g.NumHubs()
	inDegree := make(map[int64]int64)
	for _, e := range readEdges(t, path) {
		require.NotEqual(t, e[0], e[1], "self-loop emitted: %v", e)
		require.Less(t, e[0], int64(nodes))
		require.Less(t, e[1], int64(nodes))
		inDegree[e[1]]++
	}

	// Hub attachment concentrates in-degree: the busiest hub must far exceed
	// the average in-degree of a uniform graph.
	var maxIn int64
	for _, d := range inDegree {
		if d > maxIn {
			maxIn = d
		}
	}
	require.Greater(t, maxIn, int64(nodes)/numHubs/2, "expected hub in-degree skew")
}

func TestScaleFreeNumHubs(t *testing.T) {
	tests := []struct {
		nodes int64
		hubs  int64
	}{
		{1, 1},
		{19, 1},
		{20, 1},
		{40, 2},
		{100, 5},
		{100000, 5000},
	}

	for _, tt := range tests {
		g := gen.ScaleFree{Nodes: tt.nodes}
		require.Equal(t, tt.hubs, g.NumHubs(), "nodes=%d", tt.nodes)
	}
}

func TestScaleFreeSingleNode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.txt")
	g := gen.ScaleFree{Nodes: 1, AvgDegree: 3}

	// The only node is the only hub and the only target, so every candidate
	// edge is a self-loop and gets skipped.
	res, err := g.Generate(context.Background(), gen.NewSource(9), path)
	require.NoError(t, err)
	require.EqualValues(t, 0, res.Edges)
}

func TestScaleFreeHeader(t *testing.T) {
	g := gen.ScaleFree{Nodes: 100000, AvgDegree: 5}
	require.Equal(t, "// Approximate scale-free graph: 100000 nodes", g.Header())
}

func TestScaleFreeInvalidParameters(t *testing.T) {
	for name, g := range map[string]gen.ScaleFree{
		"zero nodes":      {Nodes: 0, AvgDegree: 5},
		"negative degree": {Nodes: 10, AvgDegree: -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := g.Generate(context.Background(), gen.NewSource(1), filepath.Join(t.TempDir(), "out.txt"))
			require.Error(t, err)
			require.True(t, gferrors.Is(err, gferrors.ErrCodeInvalidParameter))
		})
	}
}
