package gen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/graphforge/graphforge/pkg/edgelist"
	gferrors "github.com/graphforge/graphforge/pkg/errors"
)

// UniformRandom generates a uniform random directed graph with unique edges.
//
// Edges are drawn by rejection sampling: a candidate (src, dst) is accepted
// when src != dst and the pair has not been emitted before. The number of
// draws is bounded by AttemptFactor × Edges so dense requests terminate;
// running out of budget is a soft shortfall reported on the Result, not an
// error.
type UniformRandom struct {
	Nodes int64 // number of nodes, >= 2
	Edges int64 // requested edge count, >= 0

	// AttemptFactor overrides DefaultAttemptFactor when > 0.
	AttemptFactor int64
}

func (g UniformRandom) Name() string { return "random" }

func (g UniformRandom) Header() string {
	return fmt.Sprintf("// Random graph: %d nodes, %d edges", g.Nodes, g.Edges)
}

func (g UniformRandom) validate() error {
	if g.Nodes < 2 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "random graph needs at least 2 nodes, got %d", g.Nodes)
	}
	if g.Edges < 0 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "edge count cannot be negative, got %d", g.Edges)
	}
	if g.AttemptFactor < 0 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "attempt factor cannot be negative, got %d", g.AttemptFactor)
	}
	return nil
}

// Generate writes the graph to path. With a fixed seed the output is
// byte-identical across runs.
func (g UniformRandom) Generate(ctx context.Context, rng *rand.Rand, path string) (*Result, error) {
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

		factor := g.AttemptFactor
		if factor == 0 {
			factor = DefaultAttemptFactor
		}
		maxAttempts := factor * g.Edges

		guard := NewDedupGuard(g.Edges)
		var written, attempts int64
		emitErr := func() error {
			for written < g.Edges && attempts < maxAttempts {
				if attempts&cancelMask == 0 {
					if err := canceled(ctx); err != nil {
						return err
					}
				}
				src := rng.Int63n(g.Nodes)
				dst := rng.Int63n(g.Nodes)
				attempts++

				if src == dst || !guard.TryInsert(src, dst) {
					continue
				}
				if err := w.WriteEdge(src, dst); err != nil {
					return err
				}
				written++
			}
			return nil
		}()

		if err := finishSink(w, emitErr); err != nil {
			return nil, err
		}
		return &Result{
			Path:      path,
			Topology:  g.Name(),
			Edges:     written,
			Requested: g.Edges,
			Attempts:  attempts,
		}, nil
	})
}
