package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Glenn-jpg/MasterNTNU/pkg/cache"
	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	fdmio "github.com/Glenn-jpg/MasterNTNU/pkg/io"
	"github.com/Glenn-jpg/MasterNTNU/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeSolve    = "solve"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete solve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, p fdm.Problem, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		ID:      uuid.NewString(),
		Problem: p,
	}
	logger := opts.Logger.With("run", result.ID[:8])
	opts.Logger = logger

	// Stage 1: Solve
	solveStart := time.Now()
	sol, solveHit, err := r.Solve(ctx, p, opts)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Solution = sol
	result.ProblemHash, _ = ProblemHash(p)
	result.Stats = Stats{
		NodeCount:   len(sol.Nodes),
		FreeCount:   sol.FreeCount,
		BranchCount: len(sol.Branches),
		LineCount:   len(sol.Lines),
		Residual:    sol.Residual,
		SolveTime:   time.Since(solveStart),
	}
	result.CacheInfo.SolveHit = solveHit

	logger.Info("solved equilibrium",
		"nodes", len(sol.Nodes),
		"free", sol.FreeCount,
		"lines", len(sol.Lines),
		"residual", sol.Residual,
		"cached", solveHit,
		"duration", result.Stats.SolveTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.Render(ctx, p, sol, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Solve finds the equilibrium of p with caching and reports whether the
// solution came from the cache.
func (r *Runner) Solve(ctx context.Context, p fdm.Problem, opts Options) (*fdm.Solution, bool, error) {
	if err := opts.ValidateForSolve(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Problems that cannot be encoded are invalid; let the solver report why.
	var key string
	if hash, err := ProblemHash(p); err == nil {
		key = r.Keyer.SolveKey(hash, opts.SolveKeyOpts())
	}

	if key != "" && !opts.Refresh {
		if data, ok := r.lookup(ctx, keyTypeSolve, key); ok {
			sol, err := fdmio.ReadSolutionJSON(bytes.NewReader(data))
			if err == nil {
				return sol, true, nil
			}
			opts.Logger.Warn("discarding unreadable cached solution", "err", err)
		}
	}

	hooks := observability.Pipeline()
	hooks.OnSolveStart(ctx, len(p.Lines), len(p.Supports))
	start := time.Now()
	sol, err := fdm.Solve(ctx, p, opts.SolveOptions()...)
	nodes := 0
	if sol != nil {
		nodes = len(sol.Nodes)
	}
	hooks.OnSolveComplete(ctx, nodes, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		var buf bytes.Buffer
		if err := fdmio.WriteSolutionJSON(sol, &buf); err == nil {
			r.store(ctx, keyTypeSolve, key, buf.Bytes(), cache.SolutionTTL)
		}
	}
	return sol, false, nil
}

// Render produces the requested artifacts for a solution with caching and
// reports whether every artifact came from the cache.
func (r *Runner) Render(ctx context.Context, p fdm.Problem, sol *fdm.Solution, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hash, err := SolutionHash(p, sol)
	if err != nil {
		return nil, false, fmt.Errorf("hash solution for cache key: %w", err)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		data, ok := r.lookup(ctx, keyTypeArtifact, key)
		if !ok {
			break
		}
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderArtifacts(ctx, p, sol, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		r.store(ctx, keyTypeArtifact, key, data, cache.ArtifactTTL)
	}
	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// ProblemHash returns the content hash of a problem's canonical JSON form.
func ProblemHash(p fdm.Problem) (string, error) {
	var buf bytes.Buffer
	if err := fdmio.WriteProblem(p, &buf, fdmio.FormatJSON); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

// SolutionHash returns the content hash of a solution together with the
// problem it solves. Both feed into rendered artifacts.
func SolutionHash(p fdm.Problem, sol *fdm.Solution) (string, error) {
	var buf bytes.Buffer
	if err := fdmio.WriteProblem(p, &buf, fdmio.FormatJSON); err != nil {
		return "", err
	}
	if err := fdmio.WriteSolutionJSON(sol, &buf); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

// lookup reads key from the cache. Backend errors count as misses.
func (r *Runner) lookup(ctx context.Context, keyType, key string) ([]byte, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
		hooks.OnCacheError(ctx, keyType, err)
		return nil, false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, keyType)
		return nil, false
	}
	hooks.OnCacheHit(ctx, keyType)
	return data, true
}

// store writes key to the cache. Backend errors are logged and dropped.
func (r *Runner) store(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	hooks := observability.Cache()
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		hooks.OnCacheError(ctx, keyType, err)
		return
	}
	hooks.OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
