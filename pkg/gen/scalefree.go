package gen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/graphforge/graphforge/pkg/edgelist"
	gferrors "github.com/graphforge/graphforge/pkg/errors"
)

// hubDivisor sets the hub population: one hub per 20 nodes, clamped to
// [1, Nodes].
const hubDivisor = 20

// ScaleFree generates an approximate scale-free directed graph.
//
// A small hub subset (Nodes/20, at least one) absorbs one inbound edge from
// every node, giving hubs an in-degree around Nodes/numHubs; each node also
// gets AvgDegree uniform random out-edges. The result has heavy degree skew
// without true power-law sampling. No dedup is applied: duplicate edges and
// parallel hub edges are acceptable for benchmark inputs.
type ScaleFree struct {
	Nodes     int64 // number of nodes, >= 1
	AvgDegree int64 // random out-edges per node, >= 0
}

func (g ScaleFree) Name() string { return "scale-free" }

func (g ScaleFree) Header() string {
	return fmt.Sprintf("// Approximate scale-free graph: %d nodes", g.Nodes)
}

func (g ScaleFree) validate() error {
	if g.Nodes < 1 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "scale-free graph needs at least 1 node, got %d", g.Nodes)
	}
	if g.AvgDegree < 0 {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "average degree cannot be negative, got %d", g.AvgDegree)
	}
	return nil
}

// NumHubs returns the hub count for the configured node count.
func (g ScaleFree) NumHubs() int64 {
	hubs := g.Nodes / hubDivisor
	if hubs < 1 {
		hubs = 1
	}
	if hubs > g.Nodes {
		hubs = g.Nodes
	}
	return hubs
}

// Generate writes the graph to path.
func (g ScaleFree) Generate(ctx context.Context, rng *rand.Rand, path string) (*Result, error) {
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

		numHubs := g.NumHubs()
		emitErr := func() error {
			for v := int64(0); v < g.Nodes; v++ {
				if v&cancelMask == 0 {
					if err := canceled(ctx); err != nil {
						return err
					}
				}

				hub := rng.Int63n(numHubs)
				if v != hub {
					if err := w.WriteEdge(v, hub); err != nil {
						return err
					}
				}

				for k := int64(0); k < g.AvgDegree; k++ {
					target := rng.Int63n(g.Nodes)
					if target == v {
						continue
					}
					if err := w.WriteEdge(v, target); err != nil {
						return err
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
			Requested: g.Nodes * (g.AvgDegree + 1), // nominal ceiling before self-loop skips
		}, nil
	})
}
