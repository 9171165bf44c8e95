package gen_test

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	gferrors "github.com/graphforge/graphforge/pkg/errors"
	"github.com/graphforge/graphforge/pkg/gen"
	"github.com/graphforge/graphforge/pkg/observability"
)

func TestFixedSeedIsByteIdentical(t *testing.T) {
	generators := map[string]gen.Generator{
		"uniform":   gen.UniformRandom{Nodes: 500, Edges: 2000},
		"streaming": gen.StreamingRandom{Nodes: 500, Edges: 2000},
		"scalefree": gen.ScaleFree{Nodes: 500, AvgDegree: 4},
		"grid":      gen.Grid{Rows: 20, Cols: 30},
		"chain":     gen.Chain{Nodes: 600},
	}

	for name, g := range generators {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			a := filepath.Join(dir, "a.txt")
			b := filepath.Join(dir, "b.txt")

			_, err := g.Generate(context.Background(), gen.NewSource(1234), a)
			require.NoError(t, err)
			_, err = g.Generate(context.Background(), gen.NewSource(1234), b)
			require.NoError(t, err)

			dataA, err := os.ReadFile(a)
			require.NoError(t, err)
			dataB, err := os.ReadFile(b)
			require.NoError(t, err)
			require.Equal(t, dataA, dataB, "fixed seed must reproduce output byte for byte")
		})
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	dir := t.TempDir()
	g := gen.UniformRandom{Nodes: 500, Edges: 2000}

	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	_, err := g.Generate(context.Background(), gen.NewSource(1), a)
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), gen.NewSource(2), b)
	require.NoError(t, err)

	dataA, _ := os.ReadFile(a)
	dataB, _ := os.ReadFile(b)
	require.NotEqual(t, dataA, dataB)
}

func TestCanceledContextAbortsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "canceled.txt")
	g := gen.StreamingRandom{Nodes: 1000, Edges: 1 << 30}

	_, err := g.Generate(ctx, gen.NewSource(1), path)
	require.Error(t, err)
	require.True(t, gferrors.Is(err, gferrors.ErrCodeCanceled))

	// The partial file stays on disk and is valid text up to the last
	// complete line (here: just the header).
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, "// Random graph (streaming): 1000 nodes, 1073741824 edges\n", string(data))
}

type recordingHooks struct {
	starts    []string
	completes []string
	edges     int64
}

func (h *recordingHooks) OnGenerateStart(_ context.Context, topology, _ string) {
	h.starts = append(h.starts, topology)
}

func (h *recordingHooks) OnGenerateComplete(_ context.Context, topology, _ string, edges int64, _ time.Duration, _ error) {
	h.completes = append(h.completes, topology)
	h.edges = edges
}

func TestGeneratorHooksAreInvoked(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetGeneratorHooks(hooks)
	defer observability.Reset()

	g := gen.Chain{Nodes: 10}
	res, err := g.Generate(context.Background(), nil, filepath.Join(t.TempDir(), "chain.txt"))
	require.NoError(t, err)
	require.Positive(t, res.Elapsed)

	require.Equal(t, []string{"chain"}, hooks.starts)
	require.Equal(t, []string{"chain"}, hooks.completes)
	require.EqualValues(t, 9, hooks.edges)
}

func TestNewTimeSource(t *testing.T) {
	var _ *rand.Rand = gen.NewTimeSource()
}
