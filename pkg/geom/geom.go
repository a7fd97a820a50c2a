package geom

import (
	"fmt"
	"math"
)

// Point is a position or direction in 3D space.
type Point struct {
	X, Y, Z float64
}

// Vector is a Point used as a direction or a force.
type Vector = Point

// Pt is a convenience function to create a Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Coord returns the coordinate along axis 0 (x), 1 (y) or 2 (z).
func (p Point) Coord(axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	case 2:
		return p.Z
	}
	panic(fmt.Sprintf("geom: axis %d out of range", axis))
}

// IsFinite reports whether all three coordinates are finite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// Array returns the coordinates as a fixed-size array.
func (p Point) Array() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// FromSlice builds a Point from a 3-element slice.
func FromSlice(v []float64) (Point, error) {
	if len(v) != 3 {
		return Point{}, fmt.Errorf("point needs 3 coordinates, got %d", len(v))
	}
	return Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Coincident reports whether a and b are closer than tol.
func Coincident(a, b Point, tol float64) bool {
	return a.Distance(b) < tol
}

// Line is a straight segment from Start to End.
type Line struct {
	Start, End Point
}

// Ln is a convenience function to create a Line.
func Ln(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// IsDegenerate reports whether the endpoints coincide within tol.
func (l Line) IsDegenerate(tol float64) bool {
	return Coincident(l.Start, l.End, tol)
}

// Bounds returns the axis-aligned bounding box of a set of lines.
// ok is false when lines is empty.
func Bounds(lines []Line) (lo, hi Point, ok bool) {
	if len(lines) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = lines[0].Start, lines[0].Start
	for _, l := range lines {
		for _, p := range [2]Point{l.Start, l.End} {
			lo = Point{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
			hi = Point{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
		}
	}
	return lo, hi, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
