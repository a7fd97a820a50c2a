package topology

import (
	"context"
	"strings"
	"testing"

	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

func hanging(t *testing.T) *fdm.Solution {
	t.Helper()
	s := geom.Pt(0, 0, 0)
	load := geom.Pt(0, 0, -1)
	sol, err := fdm.Solve(context.Background(), fdm.Problem{
		Lines:          []geom.Line{geom.Ln(s, geom.Pt(1, 0, 0))},
		ForceDensities: []float64{2},
		Supports:       []geom.Point{s},
		Load:           &load,
	})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	return sol
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(hanging(t), Options{})

	if !strings.Contains(dot, "graph G") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(dot, `"N0"`) {
		t.Error("ToDOT() output missing free node")
	}
	if !strings.Contains(dot, `"S1" [label="S1", shape=box`) {
		t.Errorf("ToDOT() output missing support box:\n%s", dot)
	}
	if !strings.Contains(dot, `"S1" -- "N0" [label="q=2"]`) {
		t.Errorf("ToDOT() output missing edge:\n%s", dot)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(hanging(t), Options{Detailed: true})

	if !strings.Contains(dot, "(0, 0, -0.5)") {
		t.Errorf("ToDOT() detailed output missing position:\n%s", dot)
	}
	if !strings.Contains(dot, `F=1`) {
		t.Errorf("ToDOT() detailed output missing force:\n%s", dot)
	}
}

func TestToDOT_Collapsed(t *testing.T) {
	s := geom.Pt(0, 0, 0)
	load := geom.Pt(0, 0, 0)
	sol, err := fdm.Solve(context.Background(), fdm.Problem{
		Lines:          []geom.Line{geom.Ln(geom.Pt(1, 0, 0), s)},
		ForceDensities: []float64{1},
		Supports:       []geom.Point{s},
		Load:           &load,
	})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}

	if dot := ToDOT(sol, Options{}); !strings.Contains(dot, "style=dashed") {
		t.Errorf("collapsed bar should be dashed:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 62.00 116.00" width="62" height="116"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if !strings.HasSuffix(out, "<g/></svg>") {
		t.Errorf("normalizeViewBox() dropped content: %s", out)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %s", got)
	}
}
