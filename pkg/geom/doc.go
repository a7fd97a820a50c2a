// Package geom provides the small amount of 3D geometry the solver needs.
//
// # Types
//
// [Point] is a position (or, used as a direction, a force vector) in 3D
// space. [Line] is a straight segment between two points and is the unit of
// both solver input (one line per bar) and solver output (one line per
// surviving bar in the equilibrium shape).
//
// # Coincidence
//
// Two points are treated as the same node when their distance is strictly
// less than a tolerance (see [Coincident]). The same test is used when
// deduplicating branch endpoints and when dropping zero-length bars from the
// result, so both stages agree on what "the same point" means.
//
// # Spatial Index
//
// [Index] deduplicates points against a tolerance in expected O(1) per
// lookup. Points are hashed by their coordinates quantized to the tolerance,
// so any point within tolerance of a query lies in one of the 27 cells
// surrounding the query's own cell. When several registered points are
// within tolerance of a query, the one registered first wins; this matches a
// linear scan in registration order.
package geom
