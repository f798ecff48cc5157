package family

import "slices"

// Marriage is a couple inferred from a child that lists exactly two parents.
// Parents is sorted lexicographically; Children keeps input order.
type Marriage struct {
	Key      string
	Parents  [2]string
	Children []string
}

// Includes reports whether id is one of the two spouses.
func (m Marriage) Includes(id string) bool {
	return m.Parents[0] == id || m.Parents[1] == id
}

// MarriageKey returns the canonical key for a couple. The result does not
// depend on argument order.
func MarriageKey(a, b string) string {
	p := couple(a, b)
	return p[0] + "-" + p[1]
}

func couple(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Parentage groups recorded parents by child, preserving the order in which
// children first appear among the relationships.
type Parentage struct {
	children []string
	parents  map[string][]string
}

// ParentsByChild groups the parent ids of every recognized relationship by
// child id. A parent listed twice for the same child counts once.
func ParentsByChild(rels []Relationship) Parentage {
	pg := Parentage{parents: make(map[string][]string)}
	for _, r := range rels {
		if !r.IsParentChild() {
			continue
		}
		ps, seen := pg.parents[r.ChildID]
		if !seen {
			pg.children = append(pg.children, r.ChildID)
		}
		if !slices.Contains(ps, r.ParentID) {
			pg.parents[r.ChildID] = append(ps, r.ParentID)
		}
	}
	return pg
}

// Parents returns the recorded parents of child, in input order.
func (pg Parentage) Parents(child string) []string { return pg.parents[child] }

// Count returns how many distinct parents child has on record.
func (pg Parentage) Count(child string) int { return len(pg.parents[child]) }

// Children returns every child id in order of first appearance.
func (pg Parentage) Children() []string { return pg.children }

// InferMarriages derives couples from shared children. Each child with
// exactly two recorded parents is appended to the marriage of that pair,
// creating it on first sight. Marriages come back in creation order.
func InferMarriages(rels []Relationship) []Marriage {
	return ParentsByChild(rels).Marriages()
}

// Marriages performs the grouping of [InferMarriages] on an existing Parentage.
func (pg Parentage) Marriages() []Marriage {
	var marriages []Marriage
	byPair := make(map[[2]string]int)

	for _, child := range pg.children {
		ps := pg.parents[child]
		if len(ps) != 2 {
			continue
		}
		pair := couple(ps[0], ps[1])
		i, ok := byPair[pair]
		if !ok {
			i = len(marriages)
			byPair[pair] = i
			marriages = append(marriages, Marriage{
				Key:     pair[0] + "-" + pair[1],
				Parents: pair,
			})
		}
		marriages[i].Children = append(marriages[i].Children, child)
	}
	return marriages
}
