package pipeline

import (
	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/layout"
	"github.com/matzehuels/familytree/pkg/route"
	"github.com/matzehuels/familytree/pkg/scene"
)

// Diagram is the computed form of a family: where every person sits and the
// ordered draw commands that connect them.
type Diagram struct {
	Layout    layout.Layout
	Marriages []family.Marriage
	Scene     scene.Scene
}

// Compute runs every layout stage over f. Input-shape problems (duplicate or
// empty ids, invalid geometry) and parent-child cycles are returned as coded
// errors; dangling references and unreachable people are dropped.
func Compute(f family.Family, cfg layout.Config) (*Diagram, error) {
	idx, err := family.NewIndex(f.Members)
	if err != nil {
		return nil, err
	}

	pg := family.ParentsByChild(f.Relationships)
	marriages := pg.Marriages()
	roots := family.RootIDs(f.Members, f.Relationships)

	l, err := layout.Build(idx, f.Relationships, roots, cfg)
	if err != nil {
		return nil, err
	}

	connectors := route.Route(l, marriages, pg, f.Relationships, cfg)
	return &Diagram{
		Layout:    l,
		Marriages: marriages,
		Scene:     scene.Assemble(f.Members, l, connectors, cfg),
	}, nil
}
