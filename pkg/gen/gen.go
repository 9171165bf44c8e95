package gen

import (
	"context"
	"math/rand"
	"time"

	"github.com/graphforge/graphforge/pkg/edgelist"
	gferrors "github.com/graphforge/graphforge/pkg/errors"
	"github.com/graphforge/graphforge/pkg/observability"
)

const (
	// DefaultAttemptFactor bounds rejection sampling in UniformRandom: the
	// generator gives up after AttemptFactor × Edges draws. Three is a
	// pragmatic constant, not a derived bound; dense requests (Edges close
	// to Nodes×(Nodes-1)) may need more headroom.
	DefaultAttemptFactor = 3

	// cancelMask controls how often hot loops poll the context: every
	// cancelMask+1 iterations. Cancellation latency at this granularity is
	// well under a millisecond for all topologies.
	cancelMask = 1<<16 - 1
)

// Generator is a graph topology that can write itself to an edge-list file.
//
// Generate validates parameters, creates the output file (and missing parent
// directories), and emits edges. Deterministic topologies ignore rng and
// accept nil; stochastic ones require it. On invalid parameters nothing is
// written; on I/O failure the partial file is removed; on cancellation the
// file is flushed and kept, valid up to the last complete line.
type Generator interface {
	// Name returns the short topology name, e.g. "random" or "grid".
	Name() string

	// Header returns the file header comment, including the "//" prefix.
	Header() string

	// Generate writes the graph to path and reports what was written.
	Generate(ctx context.Context, rng *rand.Rand, path string) (*Result, error)
}

// Result describes one completed generation run.
type Result struct {
	Path      string        // output file path
	Topology  string        // generator name
	Edges     int64         // edges actually written
	Requested int64         // nominal edge count for the request
	Attempts  int64         // random draw attempts (UniformRandom only)
	Elapsed   time.Duration // wall time for the run
}

// Shortfall returns how many edges short of the nominal count the run came
// in. Non-zero shortfalls are soft: the output file is complete and valid,
// just smaller than requested (attempt budget exhaustion, skipped
// self-loops).
func (r *Result) Shortfall() int64 {
	return r.Requested - r.Edges
}

// NewSource returns a deterministic random source for the given seed.
// Generators draw from it sequentially; sharing one source across concurrent
// runs is not safe.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// NewTimeSource returns a random source seeded from the wall clock, for
// callers that do not need reproducibility.
func NewTimeSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// instrument wraps a generator body with observability hooks and records the
// elapsed wall time on the result.
func instrument(ctx context.Context, topology, path string, fn func() (*Result, error)) (*Result, error) {
	start := time.Now()
	observability.Generator().OnGenerateStart(ctx, topology, path)

	res, err := fn()

	elapsed := time.Since(start)
	var edges int64
	if res != nil {
		res.Elapsed = elapsed
		edges = res.Edges
	}
	observability.Generator().OnGenerateComplete(ctx, topology, path, edges, elapsed, err)
	return res, err
}

// canceled reports the context error wrapped as a CANCELED generation error,
// or nil if the context is still live.
func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return gferrors.Wrap(gferrors.ErrCodeCanceled, err, "generation aborted")
	}
	return nil
}

// finishSink finalizes the sink after edge emission. Cancellation flushes
// and keeps the valid prefix on disk; any other emit failure removes the
// partial file so it is never mistaken for a complete graph.
func finishSink(w *edgelist.Writer, emitErr error) error {
	if emitErr == nil {
		return w.Close()
	}
	if gferrors.Is(emitErr, gferrors.ErrCodeCanceled) {
		_ = w.Close()
		return emitErr
	}
	w.Discard()
	return emitErr
}

// requireSource rejects stochastic generation without an explicit random
// source, keeping determinism a caller-visible decision.
func requireSource(rng *rand.Rand) error {
	if rng == nil {
		return gferrors.New(gferrors.ErrCodeInvalidParameter, "random source is required")
	}
	return nil
}
