// Package scene turns a layout and its connectors into an ordered list of
// typed draw commands.
//
// A [Scene] is format-independent: sinks in render/sink serialize it to SVG,
// JSON, PNG or PDF. Command order is the paint order:
//
//  1. each drawn marriage line, followed by the descent paths of its children
//  2. single-parent descent paths, in relationship order
//  3. person boxes, in member order
package scene

import (
	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/layout"
	"github.com/matzehuels/familytree/pkg/route"
)

// Kind identifies a draw command.
type Kind string

const (
	KindLine Kind = "line" // marriage line
	KindPath Kind = "path" // descent elbow
	KindBox  Kind = "box"  // person box with labels
)

// Command is one primitive of the diagram. Points is set for lines (two
// points) and paths (four points); Box is set for boxes.
type Command struct {
	Kind   Kind          `json:"kind"`
	From   string        `json:"from,omitempty"` // marriage key or parent id
	To     string        `json:"to,omitempty"`   // child id for paths
	Points []route.Point `json:"points,omitempty"`
	Box    *Box          `json:"box,omitempty"`
}

// Box is a person's rectangle and its label anchors. NameY and DetailY are
// absolute baselines; both labels are centred on CenterX.
type Box struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Detail  string  `json:"detail,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"width"`
	H       float64 `json:"height"`
	Radius  float64 `json:"radius"`
	NameY   float64 `json:"name_y"`
	DetailY float64 `json:"detail_y"`
}

// CenterX returns the horizontal centre of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// HasDetail reports whether the secondary label should be drawn.
func (b Box) HasDetail() bool { return b.Detail != "" }

// Scene is a complete diagram ready for serialization.
type Scene struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Commands []Command `json:"commands"`
}

// Count returns the number of commands of kind k.
func (s Scene) Count(k Kind) int {
	n := 0
	for _, c := range s.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Assemble orders connectors and boxes into a scene and sizes the canvas to
// the placed boxes plus the configured margin. Members without a position are
// not drawn.
func Assemble(members []family.Person, l layout.Layout, c route.Connectors, cfg layout.Config) Scene {
	s := Scene{Commands: make([]Command, 0, len(members)+len(c.Singles)+2*len(c.Marriages))}

	var maxX, maxY float64
	for _, p := range l.Positions {
		maxX = max(maxX, p.X+cfg.BoxWidth)
		maxY = max(maxY, p.Y+cfg.BoxHeight)
	}
	s.Width = maxX + cfg.Margin
	s.Height = maxY + cfg.Margin

	for _, m := range c.Marriages {
		s.Commands = append(s.Commands, Command{
			Kind:   KindLine,
			From:   m.Key,
			Points: []route.Point{m.Line.From, m.Line.To},
		})
		for _, d := range m.Descents {
			s.Commands = append(s.Commands, pathCommand(m.Key, d))
		}
	}
	for _, p := range c.Singles {
		s.Commands = append(s.Commands, pathCommand(p.Parent, p.Elbow))
	}

	for _, m := range members {
		pos, ok := l.At(m.ID)
		if !ok {
			continue
		}
		s.Commands = append(s.Commands, Command{
			Kind: KindBox,
			Box: &Box{
				ID:      m.ID,
				Name:    m.Name,
				Detail:  m.Detail(),
				X:       pos.X,
				Y:       pos.Y,
				W:       cfg.BoxWidth,
				H:       cfg.BoxHeight,
				Radius:  cfg.CornerRadius,
				NameY:   pos.Y + cfg.NameBaseline,
				DetailY: pos.Y + cfg.DetailBaseline,
			},
		})
	}
	return s
}

func pathCommand(from string, e route.Elbow) Command {
	return Command{
		Kind:   KindPath,
		From:   from,
		To:     e.Child,
		Points: e.Points[:],
	}
}
