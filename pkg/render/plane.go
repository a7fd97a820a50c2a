package render

import (
	"strings"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

// Plane selects the two axes kept by the projection.
type Plane string

const (
	PlaneXY Plane = "xy"
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
)

// DefaultPlane is a front view with z pointing up.
const DefaultPlane = PlaneXZ

// Planes lists the valid projection planes.
var Planes = []Plane{PlaneXY, PlaneXZ, PlaneYZ}

// ParsePlane converts a name such as "XZ" into a Plane.
func ParsePlane(s string) (Plane, error) {
	p := Plane(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PlaneXY, PlaneXZ, PlaneYZ:
		return p, nil
	}
	return "", apperr.New(apperr.ErrCodeInvalidFormat, "unknown projection plane %q (want xy, xz or yz)", s)
}

// axes returns the horizontal and vertical coordinate indices.
func (p Plane) axes() (u, v int) {
	switch p {
	case PlaneXY:
		return 0, 1
	case PlaneYZ:
		return 1, 2
	}
	return 0, 2
}

// Project maps a 3D point onto the plane.
func (p Plane) Project(pt geom.Point) (u, v float64) {
	a, b := p.axes()
	return pt.Coord(a), pt.Coord(b)
}
