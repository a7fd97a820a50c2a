// Package topology draws the node/branch structure of a force density network.
//
// # Overview
//
// Where the projection plot in the parent package shows geometry, this
// package shows connectivity: which bars join which nodes, and with what
// force density. Free nodes are ellipses, supports are boxes and every edge
// is labelled with its force density q.
//
// # Usage
//
//	dot := topology.ToDOT(sol, topology.Options{})
//	svg, err := topology.RenderSVG(ctx, dot)
//
// Bars that collapsed to zero length in the equilibrium are drawn dashed.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package topology
