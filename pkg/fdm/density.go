package fdm

import "gonum.org/v1/gonum/mat"

// ForceDensityVector returns q with q[i] = branches[i].Density.
// branches must not be empty.
func ForceDensityVector(branches []Branch) *mat.VecDense {
	q := mat.NewVecDense(len(branches), nil)
	for _, b := range branches {
		q.SetVec(b.Index, b.Density)
	}
	return q
}
