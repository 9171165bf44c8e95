package plan

import (
	"os"
	"path"

	"github.com/BurntSushi/toml"

	gferrors "github.com/graphforge/graphforge/pkg/errors"
	"github.com/graphforge/graphforge/pkg/gen"
)

// Topology names accepted in TOML plan files and on the command line.
const (
	TopologyRandom       = "random"
	TopologyRandomStream = "random-stream"
	TopologyScaleFree    = "scale-free"
	TopologyGrid         = "grid"
	TopologyChain        = "chain"
)

// fileSchema is the on-disk shape of a TOML plan file:
//
//	[[entry]]
//	name = "random_1k"
//	tier = "small"
//	topology = "random"
//	nodes = 1000
//	edges = 5000
//	path = "small/random_1k.txt"   # optional, defaults to {tier}/{name}.txt
type fileSchema struct {
	Entry []entrySchema `toml:"entry"`
}

type entrySchema struct {
	Name          string `toml:"name"`
	Tier          string `toml:"tier"`
	Topology      string `toml:"topology"`
	Path          string `toml:"path"`
	Nodes         int64  `toml:"nodes"`
	Edges         int64  `toml:"edges"`
	Degree        int64  `toml:"degree"`
	Rows          int64  `toml:"rows"`
	Cols          int64  `toml:"cols"`
	AttemptFactor int64  `toml:"attempt_factor"`
}

// NewGenerator builds a configured generator from a topology name and
// parameters. Parameters irrelevant to the topology are ignored; parameter
// range validation happens at generation time.
func NewGenerator(topology string, nodes, edges, degree, rows, cols, attemptFactor int64) (gen.Generator, error) {
	switch topology {
	case TopologyRandom:
		return gen.UniformRandom{Nodes: nodes, Edges: edges, AttemptFactor: attemptFactor}, nil
	case TopologyRandomStream:
		return gen.StreamingRandom{Nodes: nodes, Edges: edges}, nil
	case TopologyScaleFree:
		return gen.ScaleFree{Nodes: nodes, AvgDegree: degree}, nil
	case TopologyGrid:
		return gen.Grid{Rows: rows, Cols: cols}, nil
	case TopologyChain:
		return gen.Chain{Nodes: nodes}, nil
	}
	return nil, gferrors.New(gferrors.ErrCodeInvalidPlan, "unknown topology %q", topology)
}

// Load reads a TOML plan file and returns its entries in file order.
func Load(file string) ([]Entry, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, gferrors.Wrap(gferrors.ErrCodeIO, err, "read plan %s", file)
	}

	var schema fileSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return nil, gferrors.Wrap(gferrors.ErrCodeInvalidPlan, err, "parse plan %s", file)
	}
	if len(schema.Entry) == 0 {
		return nil, gferrors.New(gferrors.ErrCodeInvalidPlan, "plan %s contains no entries", file)
	}

	entries := make([]Entry, 0, len(schema.Entry))
	for _, s := range schema.Entry {
		g, err := NewGenerator(s.Topology, s.Nodes, s.Edges, s.Degree, s.Rows, s.Cols, s.AttemptFactor)
		if err != nil {
			return nil, gferrors.Wrap(gferrors.ErrCodeInvalidPlan, err, "entry %s", s.Name)
		}
		out := s.Path
		if out == "" {
			out = path.Join(s.Tier, s.Name+".txt")
		}
		e := Entry{Name: s.Name, Tier: Tier(s.Tier), Generator: g, Path: out}
		if err := e.validate(); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
