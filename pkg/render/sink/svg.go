package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/familytree/pkg/render/styles"
	"github.com/matzehuels/familytree/pkg/scene"
)

// ContentTypeSVG is the media type of [RenderSVG] output.
const ContentTypeSVG = "image/svg+xml"

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
	title string
}

// WithStyle selects the visual style.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle adds a <title> element, shown as a tooltip by most viewers.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG writes the scene as a standalone SVG document. Connectors are
// painted before boxes so boxes cover line ends.
func RenderSVG(s scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Classic{}}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := styles.Num(s.Width), styles.Num(s.Height)

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n", w, h, w, h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}
	r.style.RenderDefs(&buf)

	buf.WriteString("\n  <!-- Relationship lines -->\n")
	for _, c := range s.Commands {
		switch c.Kind {
		case scene.KindLine:
			r.style.RenderLine(&buf, c)
		case scene.KindPath:
			r.style.RenderPath(&buf, c)
		}
	}

	buf.WriteString("\n  <!-- Person boxes -->\n")
	for _, c := range s.Commands {
		if c.Kind == scene.KindBox && c.Box != nil {
			r.style.RenderBox(&buf, *c.Box)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
