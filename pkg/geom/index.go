package geom

import "math"

// cell is a quantized coordinate triple.
type cell struct {
	x, y, z int64
}

// Index deduplicates points against a fixed tolerance.
// It is not safe for concurrent use.
type Index struct {
	tol    float64
	points []Point
	cells  map[cell][]int
}

// NewIndex returns an empty index. tol must be > 0.
func NewIndex(tol float64) *Index {
	return &Index{
		tol:   tol,
		cells: make(map[cell][]int),
	}
}

// Len returns the number of registered points.
func (ix *Index) Len() int { return len(ix.points) }

// Point returns the point registered with id.
func (ix *Index) Point(id int) Point { return ix.points[id] }

// Find returns the id of the earliest-registered point within tolerance of p.
func (ix *Index) Find(p Point) (int, bool) {
	c := ix.cellOf(p)
	best := -1
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, id := range ix.cells[cell{c.x + dx, c.y + dy, c.z + dz}] {
					if best >= 0 && id > best {
						break // ids within a cell are ascending
					}
					if Coincident(ix.points[id], p, ix.tol) {
						best = id
						break
					}
				}
			}
		}
	}
	return best, best >= 0
}

// Insert registers p unconditionally and returns its id.
func (ix *Index) Insert(p Point) int {
	id := len(ix.points)
	ix.points = append(ix.points, p)
	c := ix.cellOf(p)
	ix.cells[c] = append(ix.cells[c], id)
	return id
}

// Resolve returns the id of the point coinciding with p, registering p first
// if none exists. added reports whether p was newly registered.
func (ix *Index) Resolve(p Point) (id int, added bool) {
	if id, ok := ix.Find(p); ok {
		return id, false
	}
	return ix.Insert(p), true
}

func (ix *Index) cellOf(p Point) cell {
	return cell{
		x: quantize(p.X, ix.tol),
		y: quantize(p.Y, ix.tol),
		z: quantize(p.Z, ix.tol),
	}
}

// quantize maps v to its cell number, saturating at the int64 range.
func quantize(v, tol float64) int64 {
	q := math.Floor(v / tol)
	switch {
	case q >= math.MaxInt64/2:
		return math.MaxInt64 / 2
	case q <= math.MinInt64/2:
		return math.MinInt64 / 2
	}
	return int64(q)
}
