package gen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/graphforge/graphforge/pkg/edgelist"
	gferrors "github.com/graphforge/graphforge/pkg/errors"
)

// StreamingRandom generates a uniform random directed graph in O(1) memory.
//
// It performs exactly Edges draw iterations and writes each candidate whose
// endpoints differ; self-loop draws are skipped without retry, so the actual
// edge count falls short of Edges by roughly Edges/Nodes in expectation, and
// duplicate edges are possible. Both are deliberate trade-offs for node
// counts up to 1e8 and edge counts up to 5e8, where a dedup set would defeat
// the point of streaming. Callers needing exact counts and uniqueness use
// [UniformRandom] instead.
type StreamingRandom struct {
	Nodes int64 // number of nodes, >= 2
	Edges int64 // draw iterations, >= 0
}

func (g StreamingRandom) Name() string { return "random-stream" }

func (g StreamingRandom) Header() string {
	return fmt.Sprintf("// Random graph (streaming): %d nodes, %d edges", g.Nodes, g.Edges)
}

func (g StreamingRandom) validate() error {
	if g.Nodes < 2 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "random graph needs at least 2 nodes, got %d", g.Nodes)
	}
	if g.Edges < 0 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "edge count cannot be negative, got %d", g.Edges)
	}
	return nil
}

// Generate writes the graph to path.
func (g StreamingRandom) Generate(ctx context.Context, rng *rand.Rand, path string) (*Result, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if err := requireSource(rng); err != nil {
		return nil, err
	}

	return instrument(ctx, g.Name(), path, func() (*Result, error) {
		w, err := edgelist.Create(path, g.Header())
		if err != nil {
			return nil, err
		}

		emitErr := func() error {
			for i := int64(0); i < g.Edges; i++ {
				if i&cancelMask == 0 {
					if err := canceled(ctx); err != nil {
						return err
					}
				}
				src := rng.Int63n(g.Nodes)
				dst := rng.Int63n(g.Nodes)
				if src == dst {
					continue
				}
				if err := w.WriteEdge(src, dst); err != nil {
					return err
				}
			}
			return nil
		}()

		written := w.Edges()
		if err := finishSink(w, emitErr); err != nil {
			return nil, err
		}
		return &Result{
			Path:      path,
			Topology:  g.Name(),
			Edges:     written,
			Requested: g.Edges,
		}, nil
	})
}
