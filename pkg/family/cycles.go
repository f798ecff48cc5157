package family

import (
	"github.com/matzehuels/familytree/pkg/errors"
)

// dfsFrame is one entry of the explicit depth-first stack.
type dfsFrame struct {
	id   string
	next int // index of the next child to visit
}

// CheckCycles reports a [errors.CycleError] if following parent-child links
// between known members ever returns to a person already on the current path.
//
// The walk is an explicit-stack depth-first search with white/gray/black
// colouring, so deep families cannot exhaust the goroutine stack. Members are
// visited in input order and children in relationship order, which makes the
// reported path deterministic.
func CheckCycles(idx *Index, rels []Relationship) error {
	const (
		white = iota
		gray
		black
	)

	children := make(map[string][]string)
	for _, r := range rels {
		if r.IsParentChild() && idx.Has(r.ParentID) && idx.Has(r.ChildID) {
			children[r.ParentID] = append(children[r.ParentID], r.ChildID)
		}
	}

	color := make(map[string]int, idx.Len())
	for _, start := range idx.IDs() {
		if color[start] != white {
			continue
		}
		color[start] = gray
		stack := []dfsFrame{{id: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			kids := children[top.id]
			if top.next == len(kids) {
				color[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := kids[top.next]
			top.next++

			switch color[child] {
			case white:
				color[child] = gray
				stack = append(stack, dfsFrame{id: child})
			case gray:
				return &errors.CycleError{Path: cyclePath(stack, child)}
			}
		}
	}
	return nil
}

// cyclePath cuts the stack at the first occurrence of back and closes the loop.
func cyclePath(stack []dfsFrame, back string) []string {
	start := 0
	for i, f := range stack {
		if f.id == back {
			start = i
			break
		}
	}
	path := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.id)
	}
	return append(path, back)
}
