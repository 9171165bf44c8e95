package plan

import (
	"context"
	"hash/fnv"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	gferrors "github.com/graphforge/graphforge/pkg/errors"
	"github.com/graphforge/graphforge/pkg/gen"
	"github.com/graphforge/graphforge/pkg/observability"
)

// DefaultDataDir is where the corpus lands unless the caller overrides it.
const DefaultDataDir = "data"

// Options configures one plan run.
type Options struct {
	// DataDir is the root output directory; entry paths are joined onto it.
	// Defaults to DefaultDataDir.
	DataDir string

	// Seed is the base random seed. Each entry derives its own seed from it
	// and the entry name, so runs are reproducible regardless of tier
	// filtering or execution order. Zero means "derive from the clock"; the
	// chosen base seed is logged either way.
	Seed uint64

	// ContinueOnError keeps executing remaining entries after a failure
	// instead of aborting the run. Failures are reported in the Result
	// either way; this is an explicit choice, never a hidden default.
	ContinueOnError bool

	// Parallel is the maximum number of entries generated concurrently.
	// Entries share no state and write disjoint files, so this is safe;
	// values below 2 mean sequential execution.
	Parallel int

	// Logger receives progress output. Defaults to a discard logger.
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.DataDir == "" {
		o.DataDir = DefaultDataDir
	}
	if o.Parallel < 1 {
		o.Parallel = 1
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
}

// EntryResult records the outcome of one plan entry.
type EntryResult struct {
	Name   string
	Path   string      // absolute-ish output path (DataDir joined)
	Result *gen.Result // nil when Err is set before generation finished
	Err    error
}

// Result summarizes a plan run.
type Result struct {
	RunID   string // unique id for this run, also used in logs
	Seed    uint64 // effective base seed
	Entries []EntryResult
	Failed  int
	Elapsed time.Duration
}

// entrySeed derives a per-entry seed from the base seed and the entry name,
// so an entry generates identical output whether it runs alone or as part of
// the full corpus.
func entrySeed(base uint64, name string) uint64 {
	h := fnv.New64a()
	_, _ = io.WriteString(h, name)
	return base ^ h.Sum64()
}

// Run executes the entries in order (or Parallel at a time) and returns the
// per-entry outcomes. The returned error is nil only if every entry
// succeeded; with ContinueOnError the run still visits every entry first.
func Run(ctx context.Context, entries []Entry, opts Options) (*Result, error) {
	opts.setDefaults()

	for _, e := range entries {
		if err := e.validate(); err != nil {
			return nil, err
		}
	}

	result := &Result{
		RunID:   uuid.NewString(),
		Seed:    opts.Seed,
		Entries: make([]EntryResult, len(entries)),
	}
	logger := opts.Logger.With("run", result.RunID)
	logger.Info("starting dataset plan", "entries", len(entries), "seed", opts.Seed, "dir", opts.DataDir, "parallel", opts.Parallel)

	start := time.Now()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg  sync.WaitGroup
		sem = make(chan struct{}, opts.Parallel)
		mu  sync.Mutex
	)

	skip := func(i int, e Entry) {
		mu.Lock()
		defer mu.Unlock()
		result.Entries[i] = EntryResult{
			Name: e.Name,
			Path: filepath.Join(opts.DataDir, e.Path),
			Err:  gferrors.Wrap(gferrors.ErrCodeCanceled, runCtx.Err(), "entry %s skipped", e.Name),
		}
		result.Failed++
	}

	for i, e := range entries {
		select {
		case sem <- struct{}{}:
		case <-runCtx.Done():
			skip(i, e)
			continue
		}
		if runCtx.Err() != nil {
			<-sem
			skip(i, e)
			continue
		}

		wg.Add(1)
		go func(i int, e Entry) {
			defer wg.Done()
			defer func() { <-sem }()

			out := filepath.Join(opts.DataDir, e.Path)
			observability.Plan().OnEntryStart(runCtx, result.RunID, e.Name)
			entryStart := time.Now()

			logger.Info("generating", "entry", e.Name, "topology", e.Generator.Name(), "path", out)
			rng := gen.NewSource(entrySeed(opts.Seed, e.Name))
			res, err := e.Generator.Generate(runCtx, rng, out)

			var edges int64
			if res != nil {
				edges = res.Edges
			}
			observability.Plan().OnEntryComplete(runCtx, result.RunID, e.Name, edges, time.Since(entryStart), err)

			mu.Lock()
			defer mu.Unlock()
			result.Entries[i] = EntryResult{Name: e.Name, Path: out, Result: res, Err: err}
			if err != nil {
				result.Failed++
				logger.Error("entry failed", "entry", e.Name, "err", err)
				if !opts.ContinueOnError {
					cancel()
				}
				return
			}
			if short := res.Shortfall(); short > 0 {
				logger.Warn("entry completed under target", "entry", e.Name, "written", res.Edges, "requested", res.Requested, "shortfall", short)
			}
			logger.Info("entry done", "entry", e.Name, "edges", edges, "elapsed", time.Since(entryStart).Round(time.Millisecond))
		}(i, e)
	}

	wg.Wait()
	result.Elapsed = time.Since(start)
	observability.Plan().OnPlanComplete(ctx, result.RunID, len(entries), result.Failed, result.Elapsed)

	if result.Failed > 0 {
		return result, gferrors.New(gferrors.ErrCodePlanEntry, "%d of %d entries failed", result.Failed, len(entries))
	}
	logger.Info("plan complete", "entries", len(entries), "elapsed", result.Elapsed.Round(time.Millisecond))
	return result, nil
}
