// Package render provides output format conversion for family diagrams.
//
// # Overview
//
// Diagrams are produced as SVG by the [sink] subpackage. This package turns
// any SVG document into PNG or PDF using the external rsvg-convert tool from
// librsvg:
//
//	svg := sink.RenderSVG(s)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// # Subpackages
//
//   - [styles]: visual styles (classic, print)
//   - [sink]: scene serializers (SVG, JSON, PNG, PDF)
//   - [nodelink]: Graphviz rendering of the family graph
//
// [styles]: github.com/matzehuels/familytree/pkg/render/styles
// [sink]: github.com/matzehuels/familytree/pkg/render/sink
// [nodelink]: github.com/matzehuels/familytree/pkg/render/nodelink
package render
