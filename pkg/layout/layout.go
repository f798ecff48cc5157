package layout

import (
	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/family"
)

// Position is the top-left corner of a person's box.
type Position struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Generation int     `json:"generation"`
}

// Layout is the placement of every reachable person.
type Layout struct {
	// Positions holds one entry per placed person.
	Positions map[string]Position `json:"positions"`
	// Rows lists ids by generation, left to right. A row may be empty when
	// all of its people moved deeper.
	Rows [][]string `json:"rows"`
}

// At returns the position of id.
func (l Layout) At(id string) (Position, bool) {
	p, ok := l.Positions[id]
	return p, ok
}

// Len returns the number of placed people.
func (l Layout) Len() int { return len(l.Positions) }

// Generations returns the number of rows.
func (l Layout) Generations() int { return len(l.Rows) }

// Build places the people reachable from roots. idx decides which ids are
// known; relationships touching unknown ids contribute nothing.
func Build(idx *family.Index, rels []family.Relationship, roots []string, cfg Config) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	if err := family.CheckCycles(idx, rels); err != nil {
		return Layout{}, err
	}

	children := make(map[string][]string)
	for _, r := range rels {
		if r.IsParentChild() && idx.Has(r.ChildID) {
			children[r.ParentID] = append(children[r.ParentID], r.ChildID)
		}
	}

	gen := make(map[string]int, idx.Len())
	var rows [][]string

	frontier := uniqueKnown(idx, roots)
	for _, id := range frontier {
		gen[id] = 0
	}
	if len(frontier) > 0 {
		rows = append(rows, frontier)
	}

	for g := 0; len(frontier) > 0; g++ {
		var next []string
		seen := make(map[string]bool)
		for _, id := range frontier {
			for _, c := range children[id] {
				if !seen[c] {
					seen[c] = true
					next = append(next, c)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		// An acyclic family never needs more rows than people.
		if g+2 > idx.Len() {
			return Layout{}, &errors.CycleError{}
		}
		for _, c := range next {
			gen[c] = g + 1
		}
		rows = append(rows, next)
		frontier = next
	}

	return place(rows, gen, cfg), nil
}

// place drops stale row entries left behind by people that moved deeper and
// turns the surviving row indices into coordinates.
func place(rows [][]string, gen map[string]int, cfg Config) Layout {
	l := Layout{
		Positions: make(map[string]Position, len(gen)),
		Rows:      make([][]string, len(rows)),
	}
	for g, row := range rows {
		kept := make([]string, 0, len(row))
		for _, id := range row {
			if gen[id] == g {
				kept = append(kept, id)
			}
		}
		for i, id := range kept {
			l.Positions[id] = Position{
				X:          cfg.OriginX + float64(i)*cfg.ColumnWidth(),
				Y:          cfg.OriginY + float64(g)*cfg.RowHeight(),
				Generation: g,
			}
		}
		l.Rows[g] = kept
	}
	return l
}

func uniqueKnown(idx *family.Index, ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if idx.Has(id) && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
