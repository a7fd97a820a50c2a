// Package fdm solves the Force Density Method (FDM) equilibrium problem for
// networks of straight bars.
//
// # Overview
//
// Given a set of bars (lines), a force density per bar, a set of fixed support
// points and one external load vector, [Solve] computes the positions of the
// free nodes that put every free node in static equilibrium, and returns the
// equilibrium shape as a list of lines.
//
// The solve runs as a strictly forward chain of stages, each exposed on its
// own so that callers (and tests) can inspect intermediate results:
//
//  1. [BuildTopology]: deduplicate bar endpoints into nodes (free nodes first,
//     supports last) and resolve each bar to a pair of node indices
//  2. [IncidenceMatrix]: the signed bar x node connectivity matrix C
//  3. [ForceDensityVector]: the vector q of force densities in bar order
//  4. [Assemble]: D_N = C_Nᵀ·Q·C_N and D_F = C_Nᵀ·Q·C_F
//  5. [SolveAxes]: D_N·x = p − D_F·x_F for x, y and z independently
//  6. [Reconstruct]: rebuild lines from solved and fixed coordinates
//
// # Load Model
//
// The single load vector is applied, unchanged, to every free node. This is
// a uniform nodal load, not a tributary-area load distribution.
//
// # Failure Modes
//
// All errors are *errors.Error values from the errors package of this module
// and can be matched by code:
//
//   - MISSING_INPUT: lines, force densities, supports or load absent
//   - INPUT_MISMATCH: number of force densities differs from number of lines
//   - INVALID_INPUT: non-finite values, zero-length bars
//   - SINGULAR_SYSTEM: D_N cannot be factorized (disconnected free nodes,
//     free nodes without a path to a support, non-positive force densities)
//
// No stage returns NaN coordinates; a solve either succeeds completely or
// returns an error and no geometry.
//
// # Concurrency
//
// [Solve] has no shared state and may be called concurrently. Within one
// call, the three axis solves run in parallel against a single read-only
// factorization of D_N unless [WithSequentialAxes] is given.
package fdm
