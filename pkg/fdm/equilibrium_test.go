package fdm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

func gridSystem(t *testing.T) (*Topology, *mat.Dense, *Equilibrium) {
	t.Helper()
	p := gridProblem()
	topo, err := BuildTopology(p.Lines, p.Supports, DefaultTolerance)
	require.NoError(t, err)
	require.NoError(t, topo.AssignDensities(p.ForceDensities))

	c, err := IncidenceMatrix(topo)
	require.NoError(t, err)
	eq, err := Assemble(c, ForceDensityVector(topo.Branches), topo.FreeCount)
	require.NoError(t, err)
	return topo, c, eq
}

func TestIncidenceMatrix(t *testing.T) {
	_, c, _ := gridSystem(t)

	rows, cols := c.Dims()
	require.Equal(t, 8, rows)
	require.Equal(t, 8, cols)
	require.NoError(t, ValidateIncidence(c))

	require.Equal(t, 1.0, c.At(0, 0))
	require.Equal(t, -1.0, c.At(0, 1))
	require.Equal(t, 1.0, c.At(4, 0))
	require.Equal(t, -1.0, c.At(4, 4))

	s, e, ok := rowEnds(c, 6)
	require.True(t, ok)
	require.Equal(t, 2, s)
	require.Equal(t, 6, e)
}

func TestIncidenceMatrixCoincidentSupport(t *testing.T) {
	s0, a, s1 := geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(2, 0, 0)
	topo, err := BuildTopology(
		[]geom.Line{geom.Ln(s0, a), geom.Ln(a, s1)},
		[]geom.Point{s0, s1, s0},
		DefaultTolerance,
	)
	require.NoError(t, err)

	c, err := IncidenceMatrix(topo)
	require.NoError(t, err)
	require.NoError(t, ValidateIncidence(c))

	// The repeated support is node 3 and no bar reaches it.
	for i := 0; i < 2; i++ {
		require.Zero(t, c.At(i, 3), "row %d", i)
	}
}

func TestIncidenceMatrixEmpty(t *testing.T) {
	_, err := IncidenceMatrix(&Topology{})
	require.True(t, apperr.Is(err, apperr.ErrCodeMissingInput))
}

func TestValidateIncidenceRejects(t *testing.T) {
	tests := []struct {
		name string
		data []float64
	}{
		{"two starts", []float64{1, 1, -1}},
		{"no end", []float64{1, 0, 0}},
		{"bad entry", []float64{2, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIncidence(mat.NewDense(1, 3, tt.data))
			require.True(t, apperr.Is(err, apperr.ErrCodeInternal), "got %v", err)
		})
	}
}

func TestForceDensityVector(t *testing.T) {
	q := ForceDensityVector([]Branch{{Density: 1.5}, {Density: -2}})
	require.Equal(t, 2, q.Len())
	require.Equal(t, 1.5, q.AtVec(0))
	require.Equal(t, -2.0, q.AtVec(1))
}

func TestAssemble(t *testing.T) {
	_, _, eq := gridSystem(t)

	require.Equal(t, 4, eq.Free())
	require.Equal(t, 4, eq.Fixed())

	// Every free node has two q=1 neighbours and one q=2 tie-down.
	for i := 0; i < 4; i++ {
		require.Equal(t, 4.0, eq.DN.At(i, i))
		require.Equal(t, -2.0, eq.DF.At(i, i))
	}
	require.Equal(t, -1.0, eq.DN.At(0, 1))
	require.Equal(t, -1.0, eq.DN.At(0, 2))
	require.Equal(t, 0.0, eq.DN.At(0, 3))
	require.Equal(t, -1.0, eq.DN.At(3, 1))
	require.Equal(t, 0.0, eq.DF.At(0, 1))
}

func TestAssembleErrors(t *testing.T) {
	_, c, _ := gridSystem(t)

	_, err := Assemble(c, mat.NewVecDense(3, nil), 4)
	require.True(t, apperr.Is(err, apperr.ErrCodeInputMismatch))

	_, err = Assemble(c, mat.NewVecDense(8, nil), 8)
	require.True(t, apperr.Is(err, apperr.ErrCodeInvalidInput))
}

func TestRHSAndResidual(t *testing.T) {
	topo, _, eq := gridSystem(t)
	load := *gridProblem().Load
	fixed := topo.FixedPositions()

	// x axis: only the tie-downs to supports with x=3 contribute.
	rhs := eq.RHS(0, load, fixed)
	require.Equal(t, []float64{0, 6, 0, 6}, rhs.RawVector().Data)

	rhs = eq.RHS(2, load, fixed)
	require.Equal(t, []float64{-1, -1, -1, -1}, rhs.RawVector().Data)

	for axis := 0; axis < 3; axis++ {
		require.InDelta(t, 0, eq.Residual(axis, load, gridExpected, fixed), 1e-12)
	}
}

func TestSolveAxesMethodsAgree(t *testing.T) {
	topo, _, eq := gridSystem(t)
	load := *gridProblem().Load
	fixed := topo.FixedPositions()

	var rhs [3]*mat.VecDense
	for axis := range rhs {
		rhs[axis] = eq.RHS(axis, load, fixed)
	}

	for _, m := range []Method{MethodCholesky, MethodLU} {
		for _, seq := range []bool{false, true} {
			xyz, err := SolveAxes(t.Context(), eq, rhs, m, seq)
			require.NoError(t, err)
			got := axisPoints(xyz)
			for i, want := range gridExpected {
				require.InDelta(t, want.X, got[i].X, 1e-9, "%s node %d", m, i)
				require.InDelta(t, want.Y, got[i].Y, 1e-9, "%s node %d", m, i)
				require.InDelta(t, want.Z, got[i].Z, 1e-9, "%s node %d", m, i)
			}
		}
	}

	_, err := SolveAxes(t.Context(), eq, rhs, Method("qr"), false)
	require.True(t, apperr.Is(err, apperr.ErrCodeInvalidFormat))
}

func TestFactorizeSingular(t *testing.T) {
	dn := mat.NewSymDense(2, []float64{1, 1, 1, 1})

	_, err := factorize(dn, MethodCholesky)
	require.True(t, apperr.Is(err, apperr.ErrCodeSingularSystem))

	_, err = factorize(dn, MethodLU)
	require.True(t, apperr.Is(err, apperr.ErrCodeSingularSystem))
}

func TestFactorizeIllConditioned(t *testing.T) {
	dn := mat.NewSymDense(2, []float64{1, 0, 0, 1e-20})

	_, err := factorize(dn, MethodCholesky)
	require.True(t, apperr.Is(err, apperr.ErrCodeSingularSystem), "got %v", err)

	_, err = factorize(dn, MethodLU)
	require.True(t, apperr.Is(err, apperr.ErrCodeSingularSystem), "got %v", err)

	_, err = factorize(mat.NewSymDense(2, []float64{2, 0, 0, 1}), MethodCholesky)
	require.NoError(t, err)
}
