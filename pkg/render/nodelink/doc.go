// Package nodelink renders a family as a Graphviz node-link diagram.
//
// # Overview
//
// The generation layout in package layout packs rows flush left and draws
// every connector itself. This package hands the same family to Graphviz
// instead, which centres rows and routes edges around boxes. It backs the
// "dot" (DOT source) and "graphviz" (Graphviz-laid-out SVG) output formats.
//
// # Usage
//
//	dot := nodelink.ToDOT(f, l, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// [ToDOT] keeps the generations computed by [layout.Build]: each row becomes
// a rank=same subgraph, so Graphviz cannot move a person to a different
// generation. Parent-child links are plain edges without arrowheads;
// marriages are dashed edges that do not affect ranking. Only people with a
// position are emitted.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [layout.Build]: github.com/matzehuels/familytree/pkg/layout
package nodelink
