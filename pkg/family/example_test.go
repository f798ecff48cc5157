package family_test

import (
	"fmt"

	"github.com/matzehuels/familytree/pkg/family"
)

func ExampleInferMarriages() {
	rels := []family.Relationship{
		{Type: family.ParentChild, ParentID: "mum", ChildID: "ann"},
		{Type: family.ParentChild, ParentID: "dad", ChildID: "ann"},
		{Type: family.ParentChild, ParentID: "dad", ChildID: "bob"},
		{Type: family.ParentChild, ParentID: "mum", ChildID: "bob"},
	}

	for _, m := range family.InferMarriages(rels) {
		fmt.Println(m.Key, m.Children)
	}
	// Output: dad-mum [ann bob]
}

func ExampleRootIDs() {
	members := []family.Person{{ID: "ann"}, {ID: "mum"}, {ID: "dad"}}
	rels := []family.Relationship{
		{Type: family.ParentChild, ParentID: "mum", ChildID: "ann"},
		{Type: family.ParentChild, ParentID: "dad", ChildID: "ann"},
	}

	fmt.Println(family.RootIDs(members, rels))
	// Output: [mum dad]
}
