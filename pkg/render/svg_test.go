package render

import (
	"context"
	"strings"
	"testing"

	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

func catenary(t *testing.T, q float64) (fdm.Problem, *fdm.Solution) {
	t.Helper()
	s0, s1 := geom.Pt(0, 0, 0), geom.Pt(4, 0, 0)
	a, b, c := geom.Pt(1, 0, 0), geom.Pt(2, 0, 0), geom.Pt(3, 0, 0)
	load := geom.Pt(0, 0, -1)
	p := fdm.Problem{
		Lines:          []geom.Line{geom.Ln(s0, a), geom.Ln(a, b), geom.Ln(b, c), geom.Ln(c, s1)},
		ForceDensities: []float64{q, q, q, q},
		Supports:       []geom.Point{s0, s1},
		Load:           &load,
	}
	opts := []fdm.Option{}
	if q < 0 {
		opts = append(opts, fdm.WithMethod(fdm.MethodLU))
	}
	sol, err := fdm.Solve(context.Background(), p, opts...)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	return p, sol
}

func TestRenderSVG(t *testing.T) {
	p, sol := catenary(t, 1)
	svg := string(RenderSVG(sol, WithInput(p.Lines), WithNodes()))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("RenderSVG() is not a single svg element:\n%s", svg)
	}
	if got := strings.Count(svg, "<line"); got != 8 {
		t.Errorf("line count = %d, want 8 (4 input + 4 solved)", got)
	}
	if !strings.Contains(svg, `stroke-dasharray`) {
		t.Error("input geometry should be dashed")
	}
	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("free node markers = %d, want 3", got)
	}
	if strings.Contains(svg, colorCompression) {
		t.Error("a hanging chain has no bars in compression")
	}
	if !strings.Contains(svg, colorTension) {
		t.Error("missing tension colour")
	}
}

func TestRenderSVGCompression(t *testing.T) {
	_, sol := catenary(t, -1)
	svg := string(RenderSVG(sol))

	if !strings.Contains(svg, colorCompression) {
		t.Error("an inverted chain should be drawn in compression colour")
	}
	if strings.Contains(svg, "<circle") {
		t.Error("node markers are off by default")
	}
}

func TestRenderSVGFrame(t *testing.T) {
	_, sol := catenary(t, 1)

	// The xz extent is 4 wide, so 4 units map to 800-2*40 pixels.
	svg := string(RenderSVG(sol, WithPlane(PlaneXZ), WithWidth(800)))
	if !strings.Contains(svg, `width="800"`) {
		t.Errorf("RenderSVG() width mismatch:\n%s", svg[:120])
	}

	// Seen from above the chain is a horizontal line with no height.
	svg = string(RenderSVG(sol, WithPlane(PlaneXY)))
	if !strings.Contains(svg, `height="80"`) {
		t.Errorf("top view should only be margin high:\n%s", svg[:120])
	}
}

func TestParsePlane(t *testing.T) {
	for _, want := range Planes {
		got, err := ParsePlane(strings.ToUpper(string(want)))
		if err != nil || got != want {
			t.Errorf("ParsePlane(%q) = %q, %v", want, got, err)
		}
	}
	if _, err := ParsePlane("zx"); err == nil {
		t.Error("ParsePlane(zx) should fail")
	}
}

func TestPlaneProject(t *testing.T) {
	p := geom.Pt(1, 2, 3)
	tests := []struct {
		plane Plane
		u, v  float64
	}{
		{PlaneXY, 1, 2},
		{PlaneXZ, 1, 3},
		{PlaneYZ, 2, 3},
	}
	for _, tt := range tests {
		u, v := tt.plane.Project(p)
		if u != tt.u || v != tt.v {
			t.Errorf("%s.Project() = (%v, %v), want (%v, %v)", tt.plane, u, v, tt.u, tt.v)
		}
	}
}

func TestToPNGWithoutRSVG(t *testing.T) {
	if RSVGAvailable() {
		t.Skip("rsvg-convert installed")
	}
	if _, err := ToPNG(context.Background(), []byte("<svg/>"), 1); err == nil {
		t.Error("ToPNG() should fail without rsvg-convert")
	}
}
