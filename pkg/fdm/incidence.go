package fdm

import (
	"gonum.org/v1/gonum/mat"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
)

const (
	startMark = +1.0
	endMark   = -1.0
)

// IncidenceMatrix builds the branch x node matrix C with +1 at each branch's
// start column and −1 at its end column.
func IncidenceMatrix(t *Topology) (*mat.Dense, error) {
	if len(t.Branches) == 0 || len(t.Nodes) == 0 {
		return nil, apperr.New(apperr.ErrCodeMissingInput, "topology has no branches")
	}

	c := mat.NewDense(len(t.Branches), len(t.Nodes), nil)
	for _, b := range t.Branches {
		c.Set(b.Index, b.Start, startMark)
		c.Set(b.Index, b.End, endMark)
	}
	return c, nil
}

// ValidateIncidence checks that every row of c holds exactly one +1, one −1
// and zeros elsewhere.
func ValidateIncidence(c mat.Matrix) error {
	rows, cols := c.Dims()
	for i := 0; i < rows; i++ {
		var plus, minus int
		for j := 0; j < cols; j++ {
			switch v := c.At(i, j); v {
			case startMark:
				plus++
			case endMark:
				minus++
			case 0:
			default:
				return apperr.New(apperr.ErrCodeInternal, "incidence row %d has entry %g at column %d", i, v, j)
			}
		}
		if plus != 1 || minus != 1 {
			return apperr.New(apperr.ErrCodeInternal,
				"incidence row %d has %d start and %d end marks", i, plus, minus)
		}
	}
	return nil
}

// rowEnds returns the start (+1) and end (−1) columns of row i.
func rowEnds(c mat.Matrix, i int) (start, end int, ok bool) {
	_, cols := c.Dims()
	start, end = -1, -1
	for j := 0; j < cols; j++ {
		switch c.At(i, j) {
		case startMark:
			start = j
		case endMark:
			end = j
		}
	}
	return start, end, start >= 0 && end >= 0
}
