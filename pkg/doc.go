// Package pkg provides the libraries behind the fdm force density solver.
//
// # Overview
//
// The force density method finds the equilibrium shape of a network of
// cables or bars. Each line carries a force density q (axial force divided
// by length); with the supports held in place and a load on every free node,
// equilibrium reduces to one sparse symmetric linear system per axis.
//
// # Architecture
//
// The typical data flow:
//
//	Problem file (JSON, TOML, HCL)
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [fdm] package (topology → incidence → D_N, D_F → solve → lines)
//	         ↓
//	    [render] package (SVG projection, Graphviz topology, PDF/PNG)
//	         ↓
//	    JSON/OBJ/SVG/DOT output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/Glenn-jpg/MasterNTNU/pkg/fdm"
//	    fdmio "github.com/Glenn-jpg/MasterNTNU/pkg/io"
//	    "github.com/Glenn-jpg/MasterNTNU/pkg/render"
//	)
//
//	p, _ := fdmio.ImportProblem("grid.toml")
//	sol, _ := fdm.Solve(context.Background(), p)
//	svg := render.RenderSVG(sol, render.WithPlane(render.PlaneXZ))
//
// # Main Packages
//
// [fdm] - The solver: node discovery, incidence matrix, D_N/D_F assembly,
// Cholesky or LU solves of the three axes and reconstruction of the lines.
//
// [geom] - Points, lines and the tolerance-based spatial index that merges
// coincident endpoints.
//
// [io] - Problem files in JSON, TOML and HCL; solution export to JSON and
// Wavefront OBJ.
//
// [render] - SVG projection plots and their PDF/PNG conversion.
// [render/topology] draws the network as a Graphviz diagram.
//
// [pipeline] - The cached solve → render pipeline used by the CLI and the
// HTTP API.
//
// [cache] - File, Redis and null cache backends keyed by content hash.
//
// [api] - The HTTP API (chi router).
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Hook interfaces for metrics and tracing.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./pkg/...                   # All tests
//	go test ./pkg/fdm/...               # Solver only
//	go test -run Example ./pkg/...      # Examples only
//	FDM_TEST_REDIS_URL=redis://localhost:6379/15 go test ./pkg/cache/
//
// [fdm]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/fdm
// [geom]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/geom
// [io]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/io
// [render]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/render
// [render/topology]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/render/topology
// [pipeline]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/cache
// [api]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/api
// [errors]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/errors
// [observability]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/Glenn-jpg/MasterNTNU/pkg/buildinfo
package pkg
