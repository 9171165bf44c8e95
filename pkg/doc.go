// Package pkg provides the core libraries for graphforge benchmark graph
// synthesis.
//
// # Overview
//
// graphforge writes directed graphs of varying topology and scale as plain
// edge-list files, for use as fixed benchmark inputs to downstream graph
// algorithms. The pkg directory is organized into these areas:
//
//  1. [gen] - Topology generators (uniform random, streaming random,
//     approximate scale-free, grid, chain)
//  2. [edgelist] - The edge-list file format: buffered writer plus a
//     streaming reader and validator
//  3. [plan] - The dataset plan: built-in benchmark corpus, TOML plan
//     files, runner, and file-size report
//  4. [errors], [observability], [buildinfo] - Structured errors,
//     instrumentation hooks, and build metadata
//
// # Architecture
//
// The typical data flow through graphforge:
//
//	DatasetPlan entry (topology + parameters + path)
//	         ↓
//	    [gen] package (draw and filter candidate edges)
//	         ↓
//	    [edgelist] package (buffered writes, header line)
//	         ↓
//	    data/{small,medium,large,heavy}/<name>.txt
//
// # Quick Start
//
// Generate one graph:
//
//	import (
//	    "context"
//	    "github.com/graphforge/graphforge/pkg/gen"
//	)
//
//	g := gen.UniformRandom{Nodes: 1000, Edges: 5000}
//	res, err := g.Generate(context.Background(), gen.NewSource(42), "data/small/random_1k.txt")
//
// Run the standard corpus:
//
//	import "github.com/graphforge/graphforge/pkg/plan"
//
//	entries := plan.Filter(plan.Corpus(), []plan.Tier{plan.TierSmall})
//	result, err := plan.Run(ctx, entries, plan.Options{Seed: 42})
//
// The CLI in internal/cli wires these together; the generator library has
// no dependency on the CLI and can be embedded directly.
package pkg
