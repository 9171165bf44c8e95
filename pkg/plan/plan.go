// Package plan defines the benchmark dataset plan: an ordered catalogue of
// generation requests grouped into size tiers, a runner that executes them,
// and the post-run file-size report.
//
// The built-in [Corpus] reproduces the standard benchmark corpus from the
// small tier (thousands of nodes) up to the heavy tier (1e8 nodes, 5e8
// edges). Custom corpora can be loaded from TOML plan files with [Load].
//
// # Usage
//
//	entries := plan.Filter(plan.Corpus(), []plan.Tier{plan.TierSmall})
//	result, err := plan.Run(ctx, entries, plan.Options{
//	    DataDir: "data",
//	    Seed:    42,
//	})
package plan

import (
	"github.com/graphforge/graphforge/pkg/gen"

	gferrors "github.com/graphforge/graphforge/pkg/errors"
)

// Tier groups plan entries by nominal dataset size.
type Tier string

// The standard corpus tiers.
const (
	TierSmall  Tier = "small"
	TierMedium Tier = "medium"
	TierLarge  Tier = "large"
	TierHeavy  Tier = "heavy"
)

// Tiers lists all tiers in corpus order.
var Tiers = []Tier{TierSmall, TierMedium, TierLarge, TierHeavy}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierSmall, TierMedium, TierLarge, TierHeavy:
		return true
	}
	return false
}

// Entry is one generation request: a generator, its parameters (carried by
// the generator value), and an output path relative to the data directory.
type Entry struct {
	Name      string        // unique entry name, used in logs and seeds
	Tier      Tier          // size tier
	Generator gen.Generator // configured topology
	Path      string        // output path relative to Options.DataDir
}

func (e Entry) validate() error {
	if err := gferrors.ValidateEntryName(e.Name); err != nil {
		return err
	}
	if !e.Tier.Valid() {
		return gferrors.New(gferrors.ErrCodeInvalidPlan, "entry %s: unknown tier %q", e.Name, e.Tier)
	}
	if e.Generator == nil {
		return gferrors.New(gferrors.ErrCodeInvalidPlan, "entry %s: generator is required", e.Name)
	}
	if err := gferrors.ValidateOutputPath(e.Path); err != nil {
		return gferrors.Wrap(gferrors.ErrCodeInvalidPlan, err, "entry %s", e.Name)
	}
	return nil
}

// Corpus returns the standard benchmark corpus. Heavy-tier entries write
// multi-gigabyte files and run for many minutes; callers usually filter by
// tier first.
func Corpus() []Entry {
	return []Entry{
		// Small graphs
		{Name: "random_1k", Tier: TierSmall, Generator: gen.UniformRandom{Nodes: 1_000, Edges: 5_000}, Path: "small/random_1k.txt"},
		{Name: "random_10k", Tier: TierSmall, Generator: gen.UniformRandom{Nodes: 10_000, Edges: 50_000}, Path: "small/random_10k.txt"},
		{Name: "chain_10k", Tier: TierSmall, Generator: gen.Chain{Nodes: 10_000}, Path: "small/chain_10k.txt"},

		// Medium graphs
		{Name: "random_100k", Tier: TierMedium, Generator: gen.UniformRandom{Nodes: 100_000, Edges: 500_000}, Path: "medium/random_100k.txt"},
		{Name: "scale_free_100k", Tier: TierMedium, Generator: gen.ScaleFree{Nodes: 100_000, AvgDegree: 5}, Path: "medium/scale_free_100k.txt"},
		{Name: "grid_100k", Tier: TierMedium, Generator: gen.Grid{Rows: 316, Cols: 316}, Path: "medium/grid_100k.txt"},
		{Name: "chain_100k", Tier: TierMedium, Generator: gen.Chain{Nodes: 100_000}, Path: "medium/chain_100k.txt"},

		// Large graphs (tens of seconds)
		{Name: "random_1m", Tier: TierLarge, Generator: gen.UniformRandom{Nodes: 1_000_000, Edges: 5_000_000}, Path: "large/random_1m.txt"},
		{Name: "scale_free_1m", Tier: TierLarge, Generator: gen.ScaleFree{Nodes: 1_000_000, AvgDegree: 5}, Path: "large/scale_free_1m.txt"},

		// Heavy graphs (1e8 nodes; minutes to an hour, several GB each)
		{Name: "random_100m", Tier: TierHeavy, Generator: gen.StreamingRandom{Nodes: 100_000_000, Edges: 500_000_000}, Path: "heavy/random_100m.txt"},
		{Name: "scale_free_100m", Tier: TierHeavy, Generator: gen.ScaleFree{Nodes: 100_000_000, AvgDegree: 5}, Path: "heavy/scale_free_100m.txt"},
		{Name: "chain_100m", Tier: TierHeavy, Generator: gen.Chain{Nodes: 100_000_000}, Path: "heavy/chain_100m.txt"},
		{Name: "grid_100m", Tier: TierHeavy, Generator: gen.Grid{Rows: 10_000, Cols: 10_000}, Path: "heavy/grid_100m.txt"},
	}
}

// Filter returns the entries matching any of the given tiers, preserving
// order. An empty tier list matches everything.
func Filter(entries []Entry, tiers []Tier) []Entry {
	if len(tiers) == 0 {
		return entries
	}
	want := make(map[Tier]bool, len(tiers))
	for _, t := range tiers {
		want[t] = true
	}
	var out []Entry
	for _, e := range entries {
		if want[e.Tier] {
			out = append(out, e)
		}
	}
	return out
}
