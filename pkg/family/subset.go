package family

// Descendants narrows f to the person with the given id, everyone descended
// from them, and the co-parents of those descendants. The focus person and the
// co-parents become roots of the result because their own parents are left out.
//
// ok is false when id is not a member of f.
func Descendants(f Family, id string) (sub Family, ok bool) {
	known := make(map[string]bool, len(f.Members))
	for _, m := range f.Members {
		known[m.ID] = true
	}
	if !known[id] {
		return Family{}, false
	}

	rels := parentChild(f.Relationships)
	children := make(map[string][]string)
	for _, r := range rels {
		children[r.ParentID] = append(children[r.ParentID], r.ChildID)
	}

	keep := map[string]bool{id: true}
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range children[cur] {
			if !keep[c] {
				keep[c] = true
				queue = append(queue, c)
			}
		}
	}

	// Co-parents of kept children.
	spouses := make(map[string]bool)
	for _, r := range rels {
		if keep[r.ChildID] && r.ChildID != id && !keep[r.ParentID] {
			spouses[r.ParentID] = true
		}
	}
	for s := range spouses {
		keep[s] = true
	}

	for _, m := range f.Members {
		if keep[m.ID] {
			sub.Members = append(sub.Members, m)
		}
	}
	for _, r := range rels {
		if keep[r.ParentID] && keep[r.ChildID] && r.ChildID != id && !spouses[r.ChildID] {
			sub.Relationships = append(sub.Relationships, r)
		}
	}
	return sub, true
}
