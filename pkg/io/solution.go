package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

type solutionFile struct {
	FreeCount  int          `json:"free_count"`
	FixedCount int          `json:"fixed_count"`
	Residual   float64      `json:"residual"`
	Nodes      []nodeFile   `json:"nodes"`
	Branches   []branchFile `json:"branches"`
	Lines      []solvedLine `json:"lines"`
}

type nodeFile struct {
	Index    int        `json:"index"`
	Position [3]float64 `json:"position"`
	Fixed    bool       `json:"fixed,omitempty"`
}

type branchFile struct {
	Index  int     `json:"index"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Q      float64 `json:"q"`
	Length float64 `json:"length"`
	Force  float64 `json:"force"`
}

type solvedLine struct {
	Branch int        `json:"branch"`
	Start  [3]float64 `json:"start"`
	End    [3]float64 `json:"end"`
}

// WriteSolutionJSON encodes a solution as indented JSON.
func WriteSolutionJSON(sol *fdm.Solution, w io.Writer) error {
	out := solutionFile{
		FreeCount:  sol.FreeCount,
		FixedCount: sol.FixedCount(),
		Residual:   sol.Residual,
		Nodes:      make([]nodeFile, len(sol.Nodes)),
		Branches:   make([]branchFile, len(sol.Branches)),
		Lines:      make([]solvedLine, len(sol.Lines)),
	}
	for i, n := range sol.Nodes {
		out.Nodes[i] = nodeFile{Index: n.Index, Position: n.Position.Array(), Fixed: n.Fixed}
	}
	for i, b := range sol.Branches {
		out.Branches[i] = branchFile{
			Index:  b.Index,
			Start:  b.Start,
			End:    b.End,
			Q:      b.Density,
			Length: sol.Lengths[i],
			Force:  sol.Forces[i],
		}
	}
	for i, l := range sol.Lines {
		out.Lines[i] = solvedLine{Branch: sol.LineBranches[i], Start: l.Start.Array(), End: l.End.Array()}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadSolutionJSON decodes a solution written by [WriteSolutionJSON].
func ReadSolutionJSON(r io.Reader) (*fdm.Solution, error) {
	var in solutionFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decode solution")
	}
	if in.FreeCount+in.FixedCount != len(in.Nodes) {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat,
			"solution has %d nodes but %d free and %d fixed", len(in.Nodes), in.FreeCount, in.FixedCount)
	}

	sol := &fdm.Solution{
		Nodes:     make([]fdm.Node, len(in.Nodes)),
		Branches:  make([]fdm.Branch, len(in.Branches)),
		FreeCount: in.FreeCount,
		Lengths:   make([]float64, len(in.Branches)),
		Forces:    make([]float64, len(in.Branches)),
		Residual:  in.Residual,
	}
	for i, n := range in.Nodes {
		sol.Nodes[i] = fdm.Node{Index: n.Index, Position: pointOf(n.Position), Fixed: n.Fixed}
	}
	for i, b := range in.Branches {
		if b.Start < 0 || b.Start >= len(in.Nodes) || b.End < 0 || b.End >= len(in.Nodes) {
			return nil, apperr.New(apperr.ErrCodeInvalidFormat, "branch %d references an unknown node", i)
		}
		sol.Branches[i] = fdm.Branch{Index: b.Index, Start: b.Start, End: b.End, Density: b.Q}
		sol.Lengths[i] = b.Length
		sol.Forces[i] = b.Force
	}
	if len(in.Lines) > 0 {
		sol.Lines = make([]geom.Line, len(in.Lines))
		sol.LineBranches = make([]int, len(in.Lines))
		for i, l := range in.Lines {
			sol.Lines[i] = geom.Ln(pointOf(l.Start), pointOf(l.End))
			sol.LineBranches[i] = l.Branch
		}
	}
	return sol, nil
}

// WriteOBJ writes the equilibrium lines as a Wavefront OBJ model: one vertex
// per node and one polyline element per surviving bar.
func WriteOBJ(sol *fdm.Solution, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# fdm equilibrium: %d nodes, %d lines\n", len(sol.Nodes), len(sol.Lines))
	fmt.Fprintln(bw, "o equilibrium")
	for _, n := range sol.Nodes {
		fmt.Fprintf(bw, "v %g %g %g\n", n.Position.X, n.Position.Y, n.Position.Z)
	}
	for _, bi := range sol.LineBranches {
		b := sol.Branches[bi]
		// OBJ vertex indices are 1-based.
		fmt.Fprintf(bw, "l %d %d\n", b.Start+1, b.End+1)
	}
	return bw.Flush()
}

func pointOf(a [3]float64) geom.Point {
	return geom.Pt(a[0], a[1], a[2])
}
