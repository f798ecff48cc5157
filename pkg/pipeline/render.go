package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/layout"
	"github.com/matzehuels/familytree/pkg/render/nodelink"
	"github.com/matzehuels/familytree/pkg/render/sink"
	"github.com/matzehuels/familytree/pkg/render/styles"
	"github.com/matzehuels/familytree/pkg/scene"
)

// LayoutAndRender lays out the family with the default geometry and returns
// the SVG document in the classic style.
func LayoutAndRender(members []family.Person, relationships []family.Relationship) ([]byte, error) {
	d, err := Compute(family.Family{Members: members, Relationships: relationships}, layout.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return sink.RenderSVG(d.Scene, sink.WithStyle(styles.Classic{})), nil
}

// Render computes the diagram and renders every requested format without
// caching.
func Render(ctx context.Context, f family.Family, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	d, err := Compute(f, opts.Layout)
	if err != nil {
		return nil, err
	}
	return RenderDiagram(ctx, f, d.Layout, d.Scene, opts)
}

// RenderDiagram serializes an already computed diagram. The family and layout
// are only consulted for the graph formats (dot, graphviz); the scene formats
// need only s.
func RenderDiagram(ctx context.Context, f family.Family, l layout.Layout, s scene.Scene, opts Options) (map[string][]byte, error) {
	opts.SetDefaults()
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, err
	}

	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}

	var dot string
	if opts.NeedsGraph() {
		dot = nodelink.ToDOT(f, l, nodelink.Options{})
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(s, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(s, sink.WithJSONStyle(opts.Style))
		case FormatDOT:
			data = []byte(dot)
		case FormatGraphviz:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, s, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, s, svgOpts...)
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
