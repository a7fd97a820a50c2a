package fdm

import (
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

func vec(x, y, z float64) *geom.Vector {
	v := geom.Pt(x, y, z)
	return &v
}

// gridProblem is a planar 2x2 net of free nodes hung from four corner
// supports. Inner bars have q=1 and the four tie-downs q=2.
func gridProblem() Problem {
	a, b := geom.Pt(1, 1, 0), geom.Pt(2, 1, 0)
	c, d := geom.Pt(1, 2, 0), geom.Pt(2, 2, 0)
	sa, sb := geom.Pt(0, 0, 0), geom.Pt(3, 0, 0)
	sc, sd := geom.Pt(0, 3, 0), geom.Pt(3, 3, 0)
	return Problem{
		Lines: []geom.Line{
			geom.Ln(a, b), geom.Ln(c, d), geom.Ln(a, c), geom.Ln(b, d),
			geom.Ln(a, sa), geom.Ln(b, sb), geom.Ln(c, sc), geom.Ln(d, sd),
		},
		ForceDensities: []float64{1, 1, 1, 1, 2, 2, 2, 2},
		Supports:       []geom.Point{sa, sb, sc, sd},
		Load:           vec(0, 0, -1),
	}
}

// gridExpected holds the closed-form equilibrium of gridProblem in free node
// order.
var gridExpected = []geom.Point{
	geom.Pt(0.75, 0.75, -0.5),
	geom.Pt(2.25, 0.75, -0.5),
	geom.Pt(0.75, 2.25, -0.5),
	geom.Pt(2.25, 2.25, -0.5),
}

// chainProblem is S0 - A - B - S1 along x with densities q.
func chainProblem(q ...float64) Problem {
	s0, a, b, s1 := geom.Pt(0, 0, 0), geom.Pt(1, 0, 0), geom.Pt(2, 0, 0), geom.Pt(3, 0, 0)
	return Problem{
		Lines:          []geom.Line{geom.Ln(s0, a), geom.Ln(a, b), geom.Ln(b, s1)},
		ForceDensities: q,
		Supports:       []geom.Point{s0, s1},
		Load:           vec(0, 0, -1),
	}
}
