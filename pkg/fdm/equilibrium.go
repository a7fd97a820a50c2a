package fdm

import (
	"gonum.org/v1/gonum/mat"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

// Equilibrium holds the reduced system matrices of a network.
type Equilibrium struct {
	// DN is the free x free matrix C_Nᵀ·Q·C_N.
	DN *mat.SymDense

	// DF is the free x fixed matrix C_Nᵀ·Q·C_F.
	DF *mat.Dense
}

// Free returns the number of free nodes.
func (e *Equilibrium) Free() int { return e.DN.SymmetricDim() }

// Fixed returns the number of fixed nodes.
func (e *Equilibrium) Fixed() int {
	_, c := e.DF.Dims()
	return c
}

// Assemble builds D_N and D_F from the incidence matrix c, the force density
// vector q and the number of free nodes. Columns [0, free) of c are free
// nodes and the remaining columns fixed nodes.
func Assemble(c *mat.Dense, q *mat.VecDense, free int) (*Equilibrium, error) {
	rows, cols := c.Dims()
	if q.Len() != rows {
		return nil, apperr.New(apperr.ErrCodeInputMismatch,
			"%d force densities for %d incidence rows", q.Len(), rows)
	}
	if free <= 0 || free >= cols {
		return nil, apperr.New(apperr.ErrCodeInvalidInput,
			"free node count %d outside (0, %d)", free, cols)
	}

	diag := make([]float64, rows)
	for i := range diag {
		diag[i] = q.AtVec(i)
	}
	Q := mat.NewDiagDense(rows, diag)

	cN := c.Slice(0, rows, 0, free)
	cF := c.Slice(0, rows, free, cols)

	var qcN, qcF, dn, df mat.Dense
	qcN.Mul(Q, cN)
	qcF.Mul(Q, cF)
	dn.Mul(cN.T(), &qcN)
	df.Mul(cN.T(), &qcF)

	sym := mat.NewSymDense(free, nil)
	for i := 0; i < free; i++ {
		for j := i; j < free; j++ {
			sym.SetSym(i, j, dn.At(i, j))
		}
	}

	return &Equilibrium{DN: sym, DF: &df}, nil
}

// RHS returns p − D_F·x_F for one axis, where p is the load component along
// that axis repeated for every free node and fixed holds the support
// positions in node order.
func (e *Equilibrium) RHS(axis int, load geom.Vector, fixed []geom.Point) *mat.VecDense {
	xF := mat.NewVecDense(len(fixed), nil)
	for i, p := range fixed {
		xF.SetVec(i, p.Coord(axis))
	}

	b := mat.NewVecDense(e.Free(), nil)
	b.MulVec(e.DF, xF)

	pc := load.Coord(axis)
	for i := 0; i < b.Len(); i++ {
		b.SetVec(i, pc-b.AtVec(i))
	}
	return b
}

// Residual returns max |D_N·x + D_F·x_F − p| for one axis.
func (e *Equilibrium) Residual(axis int, load geom.Vector, free, fixed []geom.Point) float64 {
	x := mat.NewVecDense(len(free), nil)
	for i, p := range free {
		x.SetVec(i, p.Coord(axis))
	}
	rhs := e.RHS(axis, load, fixed)

	var r mat.VecDense
	r.MulVec(e.DN, x)
	r.SubVec(&r, rhs)

	worst := 0.0
	for i := 0; i < r.Len(); i++ {
		if v := r.AtVec(i); v > worst {
			worst = v
		} else if -v > worst {
			worst = -v
		}
	}
	return worst
}
