package fdm_test

import (
	"context"
	"fmt"

	"github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
	"github.com/Glenn-jpg/MasterNTNU/pkg/geom"
)

func ExampleSolve() {
	support := geom.Pt(0, 0, 0)
	load := geom.Pt(0, 0, -1)

	sol, err := fdm.Solve(context.Background(), fdm.Problem{
		Lines:          []geom.Line{geom.Ln(support, geom.Pt(1, 0, 0))},
		ForceDensities: []float64{2},
		Supports:       []geom.Point{support},
		Load:           &load,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, l := range sol.Lines {
		fmt.Printf("(%.2f, %.2f, %.2f) -> (%.2f, %.2f, %.2f)\n",
			l.Start.X, l.Start.Y, l.Start.Z, l.End.X, l.End.Y, l.End.Z)
	}
	fmt.Printf("force %.2f\n", sol.Forces[0])
	// Output:
	// (0.00, 0.00, 0.00) -> (0.00, 0.00, -0.50)
	// force 1.00
}

func ExampleSolve_mismatch() {
	support := geom.Pt(0, 0, 0)
	load := geom.Pt(0, 0, -1)

	_, err := fdm.Solve(context.Background(), fdm.Problem{
		Lines:          []geom.Line{geom.Ln(support, geom.Pt(1, 0, 0))},
		ForceDensities: []float64{1, 2},
		Supports:       []geom.Point{support},
		Load:           &load,
	})
	fmt.Println(err)
	// Output:
	// INPUT_MISMATCH: 1 lines but 2 force densities
}
