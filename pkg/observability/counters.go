package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Counters is an in-process implementation of every hook interface that
// counts events. The HTTP API reports its [Snapshot] on /v1/stats.
//
//	c := observability.NewCounters()
//	observability.SetPipelineHooks(c)
//	observability.SetCacheHooks(c)
//	observability.SetHTTPHooks(c)
type Counters struct {
	solves      atomic.Int64
	solveErrors atomic.Int64
	solveNanos  atomic.Int64
	renders     atomic.Int64

	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	cacheSets   atomic.Int64
	cacheErrors atomic.Int64

	requests     atomic.Int64
	clientErrors atomic.Int64
	serverErrors atomic.Int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Solves       int64         `json:"solves"`
	SolveErrors  int64         `json:"solve_errors"`
	SolveTime    time.Duration `json:"solve_time_ns"`
	Renders      int64         `json:"renders"`
	CacheHits    int64         `json:"cache_hits"`
	CacheMisses  int64         `json:"cache_misses"`
	CacheSets    int64         `json:"cache_sets"`
	CacheErrors  int64         `json:"cache_errors"`
	Requests     int64         `json:"requests"`
	ClientErrors int64         `json:"client_errors"`
	ServerErrors int64         `json:"server_errors"`
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters { return &Counters{} }

// Snapshot returns the current counts.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Solves:       c.solves.Load(),
		SolveErrors:  c.solveErrors.Load(),
		SolveTime:    time.Duration(c.solveNanos.Load()),
		Renders:      c.renders.Load(),
		CacheHits:    c.cacheHits.Load(),
		CacheMisses:  c.cacheMisses.Load(),
		CacheSets:    c.cacheSets.Load(),
		CacheErrors:  c.cacheErrors.Load(),
		Requests:     c.requests.Load(),
		ClientErrors: c.clientErrors.Load(),
		ServerErrors: c.serverErrors.Load(),
	}
}

func (c *Counters) OnSolveStart(context.Context, int, int) {}

func (c *Counters) OnSolveComplete(_ context.Context, _ int, d time.Duration, err error) {
	if err != nil {
		c.solveErrors.Add(1)
		return
	}
	c.solves.Add(1)
	c.solveNanos.Add(int64(d))
}

func (c *Counters) OnRenderStart(context.Context, []string) {}

func (c *Counters) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	if err == nil {
		c.renders.Add(1)
	}
}

func (c *Counters) OnCacheHit(context.Context, string)          { c.cacheHits.Add(1) }
func (c *Counters) OnCacheMiss(context.Context, string)         { c.cacheMisses.Add(1) }
func (c *Counters) OnCacheSet(context.Context, string, int)     { c.cacheSets.Add(1) }
func (c *Counters) OnCacheError(context.Context, string, error) { c.cacheErrors.Add(1) }

func (c *Counters) OnRequest(context.Context, string, string) { c.requests.Add(1) }

func (c *Counters) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	switch {
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
}

var (
	_ PipelineHooks = (*Counters)(nil)
	_ CacheHooks    = (*Counters)(nil)
	_ HTTPHooks     = (*Counters)(nil)
)
