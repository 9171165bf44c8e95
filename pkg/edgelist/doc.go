// Package edgelist implements the plain-text edge-list file format used by
// the benchmark corpus.
//
// A file consists of a single header comment line starting with "//" that
// describes the topology and its nominal size, followed by one line per
// directed edge:
//
//	// Random graph: 1000 nodes, 5000 edges
//	12 845
//	307 4
//	...
//
// Each edge line is exactly "{src} {dst}\n" with both ids as decimal
// non-negative integers separated by a single space. Downstream benchmark
// harnesses parse this format; changing it is a compatibility break.
//
// The package provides a buffered [Writer] used by the topology generators
// (heavy-tier runs emit hundreds of millions of lines) and a streaming
// [ReadStats] used to inspect and validate existing files.
package edgelist
