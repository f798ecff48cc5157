package family

// Roots returns every member who is never the child of a recognized
// relationship, in input order. These seed generation 0.
//
// A child whose only parent is unknown is still not a root: it is dropped
// from the layout unless another parent path reaches it.
func Roots(members []Person, rels []Relationship) []Person {
	isChild := make(map[string]bool, len(rels))
	for _, r := range rels {
		if r.IsParentChild() {
			isChild[r.ChildID] = true
		}
	}

	var roots []Person
	for _, m := range members {
		if !isChild[m.ID] {
			roots = append(roots, m)
		}
	}
	return roots
}

// RootIDs is [Roots] reduced to ids.
func RootIDs(members []Person, rels []Relationship) []string {
	roots := Roots(members, rels)
	ids := make([]string, len(roots))
	for i, r := range roots {
		ids[i] = r.ID
	}
	return ids
}
