package styles

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/scene"
)

// Style names accepted by [ByName].
const (
	NameClassic = "classic"
	NamePrint   = "print"
)

// Style defines the visual appearance for family diagram rendering.
type Style interface {
	// RenderDefs writes the <defs> block (stylesheet, filters).
	RenderDefs(buf *bytes.Buffer)
	// RenderLine writes a marriage line. c.Points holds both ends.
	RenderLine(buf *bytes.Buffer, c scene.Command)
	// RenderPath writes a descent elbow. c.Points holds the corners.
	RenderPath(buf *bytes.Buffer, c scene.Command)
	// RenderBox writes a person box with its labels.
	RenderBox(buf *bytes.Buffer, b scene.Box)
}

var registry = map[string]Style{
	NameClassic: Classic{},
	NamePrint:   Print{},
}

// ByName returns the style registered under name.
func ByName(name string) (Style, error) {
	s, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (must be one of: %v)", name, Names())
	}
	return s, nil
}

// Names lists the registered styles, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

const classicCSS = `
      .person-box { fill: #e3f2fd; stroke: #1976d2; stroke-width: 2; }
      .person-name { font-family: Arial, sans-serif; font-size: 14px; fill: #000; text-anchor: middle; }
      .person-details { font-family: Arial, sans-serif; font-size: 11px; fill: #555; text-anchor: middle; }
      .relationship-line { stroke: #666; stroke-width: 2; fill: none; }
      .marriage-line { stroke: #1976d2; stroke-width: 2; fill: none; }`

const printCSS = `
      .person-box { fill: #fff; stroke: #000; stroke-width: 1.5; }
      .person-name { font-family: Georgia, serif; font-size: 14px; fill: #000; text-anchor: middle; }
      .person-details { font-family: Georgia, serif; font-size: 11px; fill: #333; text-anchor: middle; }
      .relationship-line { stroke: #444; stroke-width: 1.5; fill: none; }
      .marriage-line { stroke: #000; stroke-width: 1.5; stroke-dasharray: 4 2; fill: none; }`

// Classic is the default look.
type Classic struct{}

func (Classic) RenderDefs(buf *bytes.Buffer) { writeDefs(buf, classicCSS) }

func (Classic) RenderLine(buf *bytes.Buffer, c scene.Command) {
	if len(c.Points) < 2 {
		return
	}
	from, to := c.Points[0], c.Points[1]
	fmt.Fprintf(buf, `  <line class="marriage-line" x1="%s" y1="%s" x2="%s" y2="%s" />`+"\n",
		Num(from.X), Num(from.Y), Num(to.X), Num(to.Y))
}

func (Classic) RenderPath(buf *bytes.Buffer, c scene.Command) {
	if len(c.Points) == 0 {
		return
	}
	buf.WriteString(`  <path class="relationship-line" d="`)
	for i, p := range c.Points {
		if i == 0 {
			buf.WriteString("M ")
		} else {
			buf.WriteString(" L ")
		}
		buf.WriteString(Num(p.X))
		buf.WriteByte(' ')
		buf.WriteString(Num(p.Y))
	}
	buf.WriteString(`" />` + "\n")
}

func (Classic) RenderBox(buf *bytes.Buffer, b scene.Box) {
	cx := Num(b.CenterX())
	buf.WriteString("  <g>\n")
	fmt.Fprintf(buf, `    <rect class="person-box" x="%s" y="%s" width="%s" height="%s" rx="%s" />`+"\n",
		Num(b.X), Num(b.Y), Num(b.W), Num(b.H), Num(b.Radius))
	fmt.Fprintf(buf, `    <text class="person-name" x="%s" y="%s">%s</text>`+"\n",
		cx, Num(b.NameY), EscapeXML(b.Name))
	if b.HasDetail() {
		fmt.Fprintf(buf, `    <text class="person-details" x="%s" y="%s">%s</text>`+"\n",
			cx, Num(b.DetailY), EscapeXML(b.Detail))
	}
	buf.WriteString("  </g>\n")
}

// Print is a grayscale variant of [Classic] with identical markup.
type Print struct{ Classic }

func (Print) RenderDefs(buf *bytes.Buffer) { writeDefs(buf, printCSS) }

func writeDefs(buf *bytes.Buffer, css string) {
	buf.WriteString("  <defs>\n    <style>")
	buf.WriteString(css)
	buf.WriteString("\n    </style>\n  </defs>\n")
}
