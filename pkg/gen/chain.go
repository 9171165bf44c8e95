package gen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/graphforge/graphforge/pkg/edgelist"
	gferrors "github.com/graphforge/graphforge/pkg/errors"
)

// Chain generates the deterministic path graph 0 -> 1 -> ... -> Nodes-1.
//
// With maximal dependency depth and zero branching it is the adversarial
// input for algorithms that rely on parallel traversal.
type Chain struct {
	Nodes int64 // >= 1
}

func (g Chain) Name() string { return "chain" }

func (g Chain) Header() string {
	return fmt.Sprintf("// Chain graph: %d nodes", g.Nodes)
}

func (g Chain) validate() error {
	if g.Nodes < 1 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "chain needs at least 1 node, got %d", g.Nodes)
	}
	return nil
}

// Generate writes the chain to path. The rng argument is unused and may be
// nil.
func (g Chain) Generate(ctx context.Context, _ *rand.Rand, path string) (*Result, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	return instrument(ctx, g.Name(), path, func() (*Result, error) {
		w, err := edgelist.Create(path, g.Header())
		if err != nil {
			return nil, err
		}

		emitErr := func() error {
			for i := int64(0); i < g.Nodes-1; i++ {
				if i&cancelMask == 0 {
					if err := canceled(ctx); err != nil {
						return err
					}
				}
				if err := w.WriteEdge(i, i+1); err != nil {
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
			Requested: g.Nodes - 1,
		}, nil
	})
}
