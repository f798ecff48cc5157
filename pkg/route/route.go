package route

import (
	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/layout"
)

// Point is a coordinate in SVG user units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is a straight segment between two spouses.
type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Mid returns the midpoint of the segment.
func (l Line) Mid() Point {
	return Point{X: (l.From.X + l.To.X) / 2, Y: (l.From.Y + l.To.Y) / 2}
}

// Elbow is a four-point orthogonal path: down, across, down.
type Elbow struct {
	Child  string   `json:"child"`
	Points [4]Point `json:"points"`
}

// MarriageConnector is a marriage line plus the descent paths of the
// couple's placed children, in child order.
type MarriageConnector struct {
	Key      string  `json:"key"`
	Line     Line    `json:"line"`
	Descents []Elbow `json:"descents,omitempty"`
}

// ParentConnector is the descent path from a lone recorded parent.
type ParentConnector struct {
	Parent string `json:"parent"`
	Elbow
}

// Connectors holds everything drawn between boxes, in draw order.
type Connectors struct {
	Marriages []MarriageConnector `json:"marriages"`
	Singles   []ParentConnector   `json:"singles"`
}

// Route builds connectors for marriages and single-parent relationships.
// Marriages are visited in the given order and relationships in input order.
func Route(l layout.Layout, marriages []family.Marriage, pg family.Parentage, rels []family.Relationship, cfg layout.Config) Connectors {
	var c Connectors

	for _, m := range marriages {
		if mc, ok := routeMarriage(l, m, cfg); ok {
			c.Marriages = append(c.Marriages, mc)
		}
	}

	for _, r := range rels {
		if !r.IsParentChild() || pg.Count(r.ChildID) > 1 {
			continue
		}
		parent, ok := l.At(r.ParentID)
		if !ok {
			continue
		}
		child, ok := l.At(r.ChildID)
		if !ok {
			continue
		}
		start := Point{X: parent.X + cfg.BoxWidth/2, Y: parent.Y + cfg.BoxHeight}
		c.Singles = append(c.Singles, ParentConnector{
			Parent: r.ParentID,
			Elbow:  elbow(r.ChildID, start, parent.Y+cfg.BoxHeight+cfg.VGap/2, child, cfg),
		})
	}
	return c
}

func routeMarriage(l layout.Layout, m family.Marriage, cfg layout.Config) (MarriageConnector, bool) {
	p1, ok1 := l.At(m.Parents[0])
	p2, ok2 := l.At(m.Parents[1])
	if !ok1 || !ok2 || p1.Generation != p2.Generation {
		return MarriageConnector{}, false
	}

	line := Line{
		From: Point{X: p1.X + cfg.BoxWidth, Y: p1.Y + cfg.BoxHeight/2},
		To:   Point{X: p2.X, Y: p2.Y + cfg.BoxHeight/2},
	}
	mc := MarriageConnector{Key: m.Key, Line: line}

	mid := line.Mid()
	dropY := p1.Y + cfg.BoxHeight + cfg.VGap/2
	for _, id := range m.Children {
		child, ok := l.At(id)
		if !ok {
			continue
		}
		mc.Descents = append(mc.Descents, elbow(id, mid, dropY, child, cfg))
	}
	return mc, true
}

// elbow runs from start down to dropY, across to the child's centre and down
// to the top of the child's box.
func elbow(child string, start Point, dropY float64, pos layout.Position, cfg layout.Config) Elbow {
	cx := pos.X + cfg.BoxWidth/2
	return Elbow{
		Child: child,
		Points: [4]Point{
			start,
			{X: start.X, Y: dropY},
			{X: cx, Y: dropY},
			{X: cx, Y: pos.Y},
		},
	}
}
