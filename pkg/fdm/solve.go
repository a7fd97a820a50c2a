package fdm

import (
	"context"
	"time"

	"gonum.org/v1/gonum/mat"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

// Validate checks a problem before any computation: all four inputs present,
// one force density per line, finite values everywhere.
func (p Problem) Validate() error {
	switch {
	case len(p.Lines) == 0:
		return apperr.New(apperr.ErrCodeMissingInput, "no lines")
	case len(p.ForceDensities) == 0:
		return apperr.New(apperr.ErrCodeMissingInput, "no force densities")
	case len(p.Supports) == 0:
		return apperr.New(apperr.ErrCodeMissingInput, "no support points")
	case p.Load == nil:
		return apperr.New(apperr.ErrCodeMissingInput, "no force vector")
	}

	if len(p.ForceDensities) != len(p.Lines) {
		return apperr.New(apperr.ErrCodeInputMismatch,
			"%d lines but %d force densities", len(p.Lines), len(p.ForceDensities))
	}

	if err := apperr.ValidateFinite("force_densities", p.ForceDensities...); err != nil {
		return err
	}
	for i, l := range p.Lines {
		if !l.Start.IsFinite() || !l.End.IsFinite() {
			return apperr.New(apperr.ErrCodeInvalidInput, "line %d has a non-finite coordinate", i)
		}
	}
	for i, s := range p.Supports {
		if !s.IsFinite() {
			return apperr.New(apperr.ErrCodeInvalidInput, "support %d has a non-finite coordinate", i)
		}
	}
	if !p.Load.IsFinite() {
		return apperr.New(apperr.ErrCodeInvalidInput, "force vector has a non-finite component")
	}
	return nil
}

// Solve computes the equilibrium shape of p.
func Solve(ctx context.Context, p Problem, opts ...Option) (*Solution, error) {
	cfg := newConfig(opts...)
	logger := cfg.logger
	start := time.Now()

	if err := apperr.ValidateTolerance(cfg.tolerance); err != nil {
		return nil, err
	}
	if !ValidMethods[cfg.method] {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "unknown solve method %q", cfg.method)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	topo, err := BuildTopology(p.Lines, p.Supports, cfg.tolerance)
	if err != nil {
		return nil, err
	}
	if err := topo.AssignDensities(p.ForceDensities); err != nil {
		return nil, err
	}
	logger.Debug("built topology",
		"nodes", len(topo.Nodes),
		"free", topo.FreeCount,
		"fixed", topo.FixedCount(),
		"branches", len(topo.Branches))

	c, err := IncidenceMatrix(topo)
	if err != nil {
		return nil, err
	}
	if err := ValidateIncidence(c); err != nil {
		return nil, err
	}

	fixed := topo.FixedPositions()
	load := *p.Load

	var (
		free     []geom.Point
		residual float64
	)
	if topo.FreeCount > 0 {
		if n, ok := topo.unsupportedNode(); ok {
			return nil, apperr.New(apperr.ErrCodeSingularSystem,
				"free node %d at %v has no path to a support", n, topo.Nodes[n].Position)
		}

		eq, err := Assemble(c, ForceDensityVector(topo.Branches), topo.FreeCount)
		if err != nil {
			return nil, err
		}

		var rhs [3]*mat.VecDense
		for axis := range rhs {
			rhs[axis] = eq.RHS(axis, load, fixed)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		xyz, err := SolveAxes(ctx, eq, rhs, cfg.method, cfg.sequential)
		if err != nil {
			return nil, err
		}
		free = axisPoints(xyz)

		for axis := 0; axis < 3; axis++ {
			residual = max(residual, eq.Residual(axis, load, free, fixed))
		}
	}

	lines, kept, err := Reconstruct(c, free, fixed, cfg.tolerance)
	if err != nil {
		return nil, err
	}

	sol := &Solution{
		Lines:        lines,
		LineBranches: kept,
		Nodes:        make([]Node, len(topo.Nodes)),
		Branches:     topo.Branches,
		FreeCount:    topo.FreeCount,
		Lengths:      make([]float64, len(topo.Branches)),
		Forces:       make([]float64, len(topo.Branches)),
		Residual:     residual,
	}
	copy(sol.Nodes, topo.Nodes)
	for i := range free {
		sol.Nodes[i].Position = free[i]
	}
	for i, b := range topo.Branches {
		l := sol.Nodes[b.Start].Position.Distance(sol.Nodes[b.End].Position)
		sol.Lengths[i] = l
		sol.Forces[i] = b.Density * l
	}

	logger.Debug("solved equilibrium",
		"lines", len(lines),
		"dropped", len(topo.Branches)-len(lines),
		"residual", residual,
		"method", cfg.method,
		"duration", time.Since(start))

	return sol, nil
}
