package fdm

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

// DefaultTolerance is the distance below which two points are the same node.
const DefaultTolerance = 1e-3

// Node is a point of the network.
// Free nodes occupy indices [0, F) and fixed nodes [F, F+S).
type Node struct {
	Index    int
	Position geom.Point
	Fixed    bool
}

// Branch is a bar between two distinct nodes. Index is the bar's row in the
// incidence matrix and its position in the input.
type Branch struct {
	Index   int
	Start   int
	End     int
	Density float64
}

// Problem is the input of a solve.
type Problem struct {
	// Lines are the bars, in order. Bar i has force density ForceDensities[i].
	Lines []geom.Line

	// ForceDensities holds one ratio of axial force to length per line.
	ForceDensities []float64

	// Supports are the fixed nodes, in order.
	Supports []geom.Point

	// Load is applied to every free node. A nil Load is a missing input;
	// use a pointer to the zero vector for an unloaded network.
	Load *geom.Vector
}

// Solution is the result of a successful solve.
type Solution struct {
	// Lines is the equilibrium shape in bar order, without zero-length bars.
	Lines []geom.Line

	// LineBranches maps Lines[i] back to the index of the bar it came from.
	LineBranches []int

	// Nodes holds every node at its equilibrium position, free nodes first.
	Nodes []Node

	// Branches holds every bar with resolved node indices and force density.
	Branches []Branch

	// FreeCount is the number of free nodes.
	FreeCount int

	// Lengths holds the equilibrium length of every bar.
	Lengths []float64

	// Forces holds the axial force q·L of every bar.
	Forces []float64

	// Residual is the largest absolute component of D_N·x + D_F·x_F − p over
	// the three axes.
	Residual float64
}

// FixedCount returns the number of support nodes.
func (s *Solution) FixedCount() int { return len(s.Nodes) - s.FreeCount }

// Method selects the direct solver used for D_N.
type Method string

const (
	// MethodCholesky requires D_N to be symmetric positive definite.
	MethodCholesky Method = "cholesky"

	// MethodLU accepts any non-singular D_N, including the indefinite
	// matrices produced by mixed-sign force densities.
	MethodLU Method = "lu"
)

// ValidMethods is the set of supported solve methods.
var ValidMethods = map[Method]bool{
	MethodCholesky: true,
	MethodLU:       true,
}

// ParseMethod converts a case-insensitive name into a Method.
func ParseMethod(s string) (Method, bool) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	return m, ValidMethods[m]
}

// Option configures a solve.
type Option func(*config)

type config struct {
	tolerance  float64
	method     Method
	sequential bool
	logger     *log.Logger
}

func newConfig(opts ...Option) config {
	c := config{
		tolerance: DefaultTolerance,
		method:    MethodCholesky,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// WithTolerance sets the coincidence tolerance used for node deduplication
// and for dropping zero-length bars from the result.
func WithTolerance(tol float64) Option { return func(c *config) { c.tolerance = tol } }

// WithMethod selects the direct solver for D_N.
func WithMethod(m Method) Option { return func(c *config) { c.method = m } }

// WithSequentialAxes solves x, y and z one after another instead of in
// parallel.
func WithSequentialAxes() Option { return func(c *config) { c.sequential = true } }

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option { return func(c *config) { c.logger = l } }
