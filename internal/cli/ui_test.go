package cli

import (
	"strings"
	"testing"

	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

func solvedChain(t *testing.T) *fdm.Solution {
	t.Helper()
	p, err := chainProblem(2, 1, -1)
	if err != nil {
		t.Fatal(err)
	}
	sol, err := fdm.Solve(t.Context(), p)
	if err != nil {
		t.Fatal(err)
	}
	return sol
}

func TestStatsLine(t *testing.T) {
	sol := solvedChain(t)

	line := statsLine(sol, false)
	for _, want := range []string{"1 free", "2 supports", "2 branches", iconFresh} {
		if !strings.Contains(line, want) {
			t.Errorf("statsLine() = %q, missing %q", line, want)
		}
	}
	if strings.Contains(line, "collapsed") {
		t.Error("no branch collapsed in a hanging chain")
	}
	if !strings.Contains(statsLine(sol, true), iconCached) {
		t.Error("cached solutions should be marked")
	}
}

func TestNodeTable(t *testing.T) {
	out := nodeTable(solvedChain(t))

	for _, want := range []string{"NODE", "KIND", "free", "support", "-0.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("nodeTable() missing %q:\n%s", want, out)
		}
	}
}

func TestBranchTable(t *testing.T) {
	out := branchTable(solvedChain(t))

	for _, want := range []string{"BRANCH", "FORCE", "1.11803"} {
		if !strings.Contains(out, want) {
			t.Errorf("branchTable() missing %q:\n%s", want, out)
		}
	}
}

func TestGridProblem(t *testing.T) {
	for n := 2; n <= 5; n++ {
		p, err := gridProblem(n, 1, -1)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := len(p.Lines), 2*n*(n-1); got != want {
			t.Errorf("n=%d: %d lines, want %d", n, got, want)
		}
		if got, want := len(p.Supports), 4*(n-1); got != want {
			t.Errorf("n=%d: %d supports, want %d", n, got, want)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("n=%d: invalid problem: %v", n, err)
		}
	}

	p, _ := gridProblem(2, 1, -1)
	sol, err := fdm.Solve(t.Context(), p)
	if err != nil {
		t.Fatal(err)
	}
	if got := sol.Nodes[0].Position; got != geom.Pt(1, 1, -0.25) {
		t.Errorf("centre node = %v, want (1, 1, -0.25)", got)
	}
}
