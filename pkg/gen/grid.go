package gen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/graphforge/graphforge/pkg/edgelist"
	gferrors "github.com/graphforge/graphforge/pkg/errors"
)

// Grid generates a deterministic 2D lattice.
//
// The node id for cell (i, j) is i*Cols+j (row-major). Every cell links to
// its right neighbor when j < Cols-1 and to its bottom neighbor when
// i < Rows-1, for exactly Rows*(Cols-1) + Cols*(Rows-1) edges. The topology
// is inherently edge-unique, so no dedup or randomness is involved.
type Grid struct {
	Rows int64 // >= 1
	Cols int64 // >= 1
}

func (g Grid) Name() string { return "grid" }

func (g Grid) Header() string {
	return fmt.Sprintf("// Grid graph: %dx%d", g.Rows, g.Cols)
}

func (g Grid) validate() error {
	if g.Rows < 1 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "grid needs at least 1 row, got %d", g.Rows)
	}
	if g.Cols < 1 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "grid needs at least 1 column, got %d", g.Cols)
	}
	return nil
}

// EdgeCount returns the exact number of edges the grid will contain.
func (g Grid) EdgeCount() int64 {
	return g.Rows*(g.Cols-1) + g.Cols*(g.Rows-1)
}

// Generate writes the lattice to path. The rng argument is unused and may be
// nil.
func (g Grid) Generate(ctx context.Context, _ *rand.Rand, path string) (*Result, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	return instrument(ctx, g.Name(), path, func() (*Result, error) {
		w, err := edgelist.Create(path, g.Header())
		if err != nil {
			return nil, err
		}

		emitErr := func() error {
			for i := int64(0); i < g.Rows; i++ {
				if err := canceled(ctx); err != nil {
					return err
				}
				for j := int64(0); j < g.Cols; j++ {
					node := i*g.Cols + j
					if j < g.Cols-1 {
						if err := w.WriteEdge(node, node+1); err != nil {
							return err
						}
					}
					if i < g.Rows-1 {
						if err := w.WriteEdge(node, node+g.Cols); err != nil {
							return err
						}
					}
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
			Requested: g.EdgeCount(),
		}, nil
	})
}
