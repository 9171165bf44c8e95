// Package gen implements the topology generators that synthesize benchmark
// graphs as edge-list files.
//
// Five topologies are provided:
//
//   - [UniformRandom]: uniform random edges with in-memory deduplication and
//     a bounded attempt budget
//   - [StreamingRandom]: uniform random edges with O(1) memory, trading edge
//     uniqueness and exact counts for scale
//   - [ScaleFree]: approximate scale-free graphs via hub attachment
//   - [Grid]: deterministic 2D lattice
//   - [Chain]: deterministic path graph, the worst case for parallel traversal
//
// All generators share the same contract: node ids are 0..Nodes-1, no edge
// has src == dst, and output goes through an [edgelist.Writer] that the
// generator owns for the duration of the run. Randomness is threaded
// explicitly as a *rand.Rand so determinism is part of the API contract
// rather than hidden global state: two runs with equal parameters and
// equally-seeded sources produce byte-identical files.
//
// Cancellation is cooperative. Generators poll the context between edge
// attempts (at a small fixed interval on the hot paths) and abort with a
// CANCELED error, flushing the sink first so the partial file stays valid
// text up to the last complete line.
package gen
