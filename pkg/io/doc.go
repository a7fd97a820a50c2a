// Package io reads and writes force density problems and their solutions.
//
// # Problem Files
//
// A problem holds the four solver inputs: lines with force densities,
// support points and one load vector. Three encodings are supported and
// selected by file extension (see [FormatFromPath]):
//
//	{
//	  "lines": [
//	    {"start": [1, 1, 0], "end": [2, 1, 0], "q": 1},
//	    {"start": [1, 1, 0], "end": [0, 0, 0], "q": 2}
//	  ],
//	  "supports": [[0, 0, 0]],
//	  "load": [0, 0, -1]
//	}
//
// The TOML form uses the same keys with [[lines]] tables. The HCL form uses
// one line block per bar:
//
//	supports = [[0, 0, 0]]
//	load     = [0, 0, -1]
//
//	line {
//	  start = [1, 1, 0]
//	  end   = [0, 0, 0]
//	  q     = 2
//	}
//
// HCL files may use the arithmetic functions abs, ceil, floor, min, max and
// pow, and the variable pi.
//
// Force densities are given either per line (q) or as one top-level
// force_densities array aligned with the lines. Mixing the two forms is an
// error.
//
// # Validation
//
// [ReadProblem] returns a problem that has already passed
// [fdm.Problem.Validate]: all four inputs are present, the density count
// matches the line count and every number is finite. Decode failures are
// reported as INVALID_PROBLEM, missing inputs as MISSING_INPUT.
//
// # Solutions
//
// [WriteSolutionJSON] writes every node, every branch with its length and
// axial force, and the equilibrium lines. [ReadSolutionJSON] restores the
// same [fdm.Solution], which lets solutions be cached on disk. [WriteOBJ]
// writes the equilibrium lines as a Wavefront OBJ polyline model.
package io
