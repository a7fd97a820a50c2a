package fdm

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
)

// axisNames labels the three coordinate axes in error messages.
var axisNames = [3]string{"x", "y", "z"}

// factorization solves D_N·x = b for repeated right-hand sides.
// Implementations must be safe for concurrent SolveVecTo calls.
type factorization interface {
	SolveVecTo(dst *mat.VecDense, b mat.Vector) error
}

type luFactorization struct{ lu *mat.LU }

func (f luFactorization) SolveVecTo(dst *mat.VecDense, b mat.Vector) error {
	return f.lu.SolveVecTo(dst, false, b)
}

// factorize decomposes D_N with the requested method.
func factorize(dn *mat.SymDense, method Method) (factorization, error) {
	switch method {
	case MethodCholesky:
		var chol mat.Cholesky
		if ok := chol.Factorize(dn); !ok {
			return nil, apperr.New(apperr.ErrCodeSingularSystem,
				"equilibrium matrix is not positive definite (check force densities and supports)")
		}
		if c := chol.Cond(); illConditioned(c) {
			return nil, apperr.New(apperr.ErrCodeSingularSystem,
				"equilibrium matrix is nearly singular (condition number %g)", c)
		}
		return &chol, nil
	case MethodLU:
		var lu mat.LU
		lu.Factorize(dn)
		if c := lu.Cond(); illConditioned(c) {
			return nil, apperr.New(apperr.ErrCodeSingularSystem,
				"equilibrium matrix is singular (condition number %g)", c)
		}
		return luFactorization{lu: &lu}, nil
	}
	return nil, apperr.New(apperr.ErrCodeInvalidFormat, "unknown solve method %q", method)
}

// illConditioned reports whether a condition number is too large for a
// trustworthy solve.
func illConditioned(c float64) bool {
	return math.IsInf(c, 1) || math.IsNaN(c) || c > mat.ConditionTolerance
}

// SolveAxes solves D_N·x = rhs[axis] for the three axes. The factorization of
// D_N is computed once and shared; axes are solved concurrently unless
// sequential is set.
func SolveAxes(ctx context.Context, eq *Equilibrium, rhs [3]*mat.VecDense, method Method, sequential bool) ([3]*mat.VecDense, error) {
	var out [3]*mat.VecDense

	f, err := factorize(eq.DN, method)
	if err != nil {
		return out, err
	}

	solve := func(ctx context.Context, axis int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		x := mat.NewVecDense(eq.Free(), nil)
		if err := f.SolveVecTo(x, rhs[axis]); err != nil {
			return apperr.Wrap(apperr.ErrCodeSingularSystem, err, "solve %s axis", axisNames[axis])
		}
		for i := 0; i < x.Len(); i++ {
			if v := x.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
				return apperr.New(apperr.ErrCodeSingularSystem,
					"solve %s axis: non-finite coordinate for free node %d", axisNames[axis], i)
			}
		}
		out[axis] = x
		return nil
	}

	if sequential {
		for axis := range out {
			if err := solve(ctx, axis); err != nil {
				return [3]*mat.VecDense{}, err
			}
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for axis := range out {
		g.Go(func() error { return solve(gctx, axis) })
	}
	if err := g.Wait(); err != nil {
		return [3]*mat.VecDense{}, err
	}
	return out, nil
}
