package fdm

import (
	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

// Topology is the node/branch structure of a network.
type Topology struct {
	// Nodes are ordered free first, then fixed in support order.
	Nodes []Node

	// Branches are in input order; Density is zero until AssignDensities.
	Branches []Branch

	// FreeCount is the number of free nodes.
	FreeCount int
}

// FixedCount returns the number of fixed nodes.
func (t *Topology) FixedCount() int { return len(t.Nodes) - t.FreeCount }

// FixedPositions returns the support positions in node order.
func (t *Topology) FixedPositions() []geom.Point {
	out := make([]geom.Point, 0, t.FixedCount())
	for _, n := range t.Nodes[t.FreeCount:] {
		out = append(out, n.Position)
	}
	return out
}

// BuildTopology turns bars and supports into nodes and branches.
//
// Supports are registered first, in order. Each bar's start and end are then
// matched against every point registered so far; an endpoint within tol of an
// existing point reuses it (the earliest registered point wins when several
// match), otherwise it becomes a new free node. Finally nodes are reordered
// so that free nodes, in discovery order, precede the supports.
//
// Every support becomes a fixed node, even one within tol of an earlier
// support; bar endpoints then attach to the earlier one and the later support
// is left without bars. Bars whose endpoints resolve to the same node are
// rejected as INVALID_INPUT.
func BuildTopology(lines []geom.Line, supports []geom.Point, tol float64) (*Topology, error) {
	if err := apperr.ValidateTolerance(tol); err != nil {
		return nil, err
	}

	ix := geom.NewIndex(tol)
	for _, s := range supports {
		ix.Insert(s)
	}

	ends := make([][2]int, len(lines))
	for i, l := range lines {
		a, _ := ix.Resolve(l.Start)
		b, _ := ix.Resolve(l.End)
		if a == b {
			return nil, apperr.New(apperr.ErrCodeInvalidInput,
				"line %d has coincident endpoints %v and %v", i, l.Start, l.End)
		}
		ends[i] = [2]int{a, b}
	}

	nSupports := len(supports)
	free := ix.Len() - nSupports
	reorder := func(id int) int {
		if id < nSupports {
			return free + id
		}
		return id - nSupports
	}

	nodes := make([]Node, ix.Len())
	for id := 0; id < ix.Len(); id++ {
		idx := reorder(id)
		nodes[idx] = Node{Index: idx, Position: ix.Point(id), Fixed: id < nSupports}
	}

	branches := make([]Branch, len(lines))
	for i, e := range ends {
		branches[i] = Branch{Index: i, Start: reorder(e[0]), End: reorder(e[1])}
	}

	return &Topology{Nodes: nodes, Branches: branches, FreeCount: free}, nil
}

// AssignDensities copies q onto the branches in index order.
func (t *Topology) AssignDensities(q []float64) error {
	if len(q) != len(t.Branches) {
		return apperr.New(apperr.ErrCodeInputMismatch,
			"%d force densities for %d branches", len(q), len(t.Branches))
	}
	for i := range t.Branches {
		t.Branches[i].Density = q[i]
	}
	return nil
}

// unsupportedNode returns the first free node with no path to a support
// through branches of non-zero density.
func (t *Topology) unsupportedNode() (int, bool) {
	adj := make([][]int, len(t.Nodes))
	for _, b := range t.Branches {
		if b.Density == 0 {
			continue
		}
		adj[b.Start] = append(adj[b.Start], b.End)
		adj[b.End] = append(adj[b.End], b.Start)
	}

	seen := make([]bool, len(t.Nodes))
	queue := make([]int, 0, len(t.Nodes))
	for i := t.FreeCount; i < len(t.Nodes); i++ {
		seen[i] = true
		queue = append(queue, i)
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, m := range adj[n] {
			if !seen[m] {
				seen[m] = true
				queue = append(queue, m)
			}
		}
	}

	for i := 0; i < t.FreeCount; i++ {
		if !seen[i] {
			return i, true
		}
	}
	return 0, false
}
