package fdm

import (
	"gonum.org/v1/gonum/mat"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

// Reconstruct rebuilds the equilibrium lines. Node positions are the solved
// free positions followed by the fixed positions, in node order. For every
// row of c the +1 column is the line's start and the −1 column its end.
// Lines whose endpoints coincide within tol are dropped; branches reports,
// for each returned line, the row it came from.
func Reconstruct(c mat.Matrix, free, fixed []geom.Point, tol float64) (lines []geom.Line, branches []int, err error) {
	rows, cols := c.Dims()
	if len(free)+len(fixed) != cols {
		return nil, nil, apperr.New(apperr.ErrCodeInternal,
			"%d positions for %d incidence columns", len(free)+len(fixed), cols)
	}

	positions := make([]geom.Point, 0, cols)
	positions = append(positions, free...)
	positions = append(positions, fixed...)

	for i := 0; i < rows; i++ {
		s, e, ok := rowEnds(c, i)
		if !ok {
			return nil, nil, apperr.New(apperr.ErrCodeInternal, "incidence row %d lacks a start or end mark", i)
		}
		l := geom.Ln(positions[s], positions[e])
		if l.IsDegenerate(tol) {
			continue
		}
		lines = append(lines, l)
		branches = append(branches, i)
	}
	return lines, branches, nil
}

// axisPoints zips three coordinate vectors into points.
func axisPoints(xyz [3]*mat.VecDense) []geom.Point {
	if xyz[0] == nil {
		return nil
	}
	out := make([]geom.Point, xyz[0].Len())
	for i := range out {
		out[i] = geom.Pt(xyz[0].AtVec(i), xyz[1].AtVec(i), xyz[2].AtVec(i))
	}
	return out
}
