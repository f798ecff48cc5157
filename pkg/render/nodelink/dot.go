package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/layout"
	"github.com/matzehuels/familytree/pkg/render"
)

// ContentTypeDOT is the media type of raw DOT source.
const ContentTypeDOT = "text/vnd.graphviz"

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the generation number to each label.
	Detailed bool
}

// ToDOT converts a laid-out family to Graphviz DOT source.
func ToDOT(f family.Family, l layout.Layout, opts Options) string {
	byID := make(map[string]family.Person, len(f.Members))
	for _, m := range f.Members {
		byID[m.ID] = m
	}

	var buf bytes.Buffer
	buf.WriteString("digraph family {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=\"#e3f2fd\", color=\"#1976d2\", fontname=\"Arial\", fontsize=14];\n")
	buf.WriteString("  edge [color=\"#666666\", arrowhead=none];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for g, row := range l.Rows {
		if len(row) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\n  { rank=same; // generation %d\n", g)
		for _, id := range row {
			fmt.Fprintf(&buf, "    %q [label=%q];\n", id, fmtLabel(byID[id], g, opts.Detailed))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	seen := make(map[[2]string]bool)
	for _, r := range f.Relationships {
		if !r.IsParentChild() || !placed(l, r.ParentID) || !placed(l, r.ChildID) {
			continue
		}
		edge := [2]string{r.ParentID, r.ChildID}
		if seen[edge] {
			continue
		}
		seen[edge] = true
		fmt.Fprintf(&buf, "  %q -> %q;\n", r.ParentID, r.ChildID)
	}

	for _, m := range family.InferMarriages(f.Relationships) {
		if placed(l, m.Parents[0]) && placed(l, m.Parents[1]) {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, color=\"#1976d2\", constraint=false];\n", m.Parents[0], m.Parents[1])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func placed(l layout.Layout, id string) bool {
	_, ok := l.At(id)
	return ok
}

func fmtLabel(p family.Person, generation int, detailed bool) string {
	name := p.Name
	if name == "" {
		name = p.ID
	}
	parts := []string{name}
	if d := p.Detail(); d != "" {
		parts = append(parts, d)
	}
	if detailed {
		parts = append(parts, fmt.Sprintf("gen: %d", generation))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel-sized one so the diagram scales like the native SVG output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders DOT source as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders DOT source as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
