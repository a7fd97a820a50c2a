package geom

import "testing"

func TestIndexResolve(t *testing.T) {
	ix := NewIndex(1e-3)

	id, added := ix.Resolve(Pt(0, 0, 0))
	if id != 0 || !added {
		t.Fatalf("first Resolve = (%d, %v), want (0, true)", id, added)
	}

	id, added = ix.Resolve(Pt(1, 0, 0))
	if id != 1 || !added {
		t.Fatalf("second Resolve = (%d, %v), want (1, true)", id, added)
	}

	id, added = ix.Resolve(Pt(0.0004, -0.0004, 0))
	if id != 0 || added {
		t.Errorf("near-duplicate Resolve = (%d, %v), want (0, false)", id, added)
	}

	if ix.Len() != 2 {
		t.Errorf("Len = %d, want 2", ix.Len())
	}
}

func TestIndexAcrossCellBoundary(t *testing.T) {
	const tol = 1e-3
	ix := NewIndex(tol)

	// The two points straddle the cell boundary at x = tol.
	ix.Insert(Pt(0.00099, 0, 0))
	id, ok := ix.Find(Pt(0.00101, 0, 0))
	if !ok || id != 0 {
		t.Errorf("Find across boundary = (%d, %v), want (0, true)", id, ok)
	}
}

func TestIndexNegativeCoordinates(t *testing.T) {
	ix := NewIndex(0.5)
	ix.Insert(Pt(-10.1, -3.2, -0.01))

	if _, ok := ix.Find(Pt(-10.2, -3.2, 0.01)); !ok {
		t.Error("Find should match across the negative cell boundary")
	}
	if _, ok := ix.Find(Pt(-11, -3.2, 0)); ok {
		t.Error("Find should not match a point 0.9 away")
	}
}

func TestIndexFirstMatchWins(t *testing.T) {
	const tol = 1e-3
	ix := NewIndex(tol)

	// Two registered points 1.5*tol apart; a query between them is within
	// tolerance of both.
	ix.Insert(Pt(0.0015, 0, 0))
	ix.Insert(Pt(0, 0, 0))

	id, ok := ix.Find(Pt(0.00075, 0, 0))
	if !ok {
		t.Fatal("query should match")
	}
	if id != 0 {
		t.Errorf("Find = %d, want earliest registered id 0", id)
	}
}

func TestIndexMatchesLinearScan(t *testing.T) {
	const tol = 0.1
	ix := NewIndex(tol)
	var pts []Point
	for i := 0; i < 20; i++ {
		for j := 0; j < 5; j++ {
			p := Pt(float64(i)*0.07, float64(j)*0.13, float64(i*j%3)*0.05)
			pts = append(pts, p)
		}
	}

	var registered []Point
	for _, p := range pts {
		want := -1
		for k, r := range registered {
			if Coincident(r, p, tol) {
				want = k
				break
			}
		}

		got, added := ix.Resolve(p)
		if want >= 0 {
			if added || got != want {
				t.Fatalf("Resolve(%v) = (%d, %v), linear scan found %d", p, got, added, want)
			}
			continue
		}
		if !added || got != len(registered) {
			t.Fatalf("Resolve(%v) = (%d, %v), want new id %d", p, got, added, len(registered))
		}
		registered = append(registered, p)
	}
}
