package family

import (
	"slices"
	"testing"
)

func memberIDs(f Family) []string {
	ids := make([]string, len(f.Members))
	for i, m := range f.Members {
		ids[i] = m.ID
	}
	return ids
}

func TestDescendants(t *testing.T) {
	f := Family{
		Members: people("gp1", "gp2", "dad", "mum", "kid", "uncle"),
		Relationships: []Relationship{
			pc("gp1", "dad"), pc("gp2", "dad"),
			pc("gp1", "uncle"), pc("gp2", "uncle"),
			pc("dad", "kid"), pc("mum", "kid"),
		},
	}

	sub, ok := Descendants(f, "dad")
	if !ok {
		t.Fatal("Descendants(dad) ok = false")
	}
	if got := memberIDs(sub); !slices.Equal(got, []string{"dad", "mum", "kid"}) {
		t.Errorf("members = %v, want [dad mum kid]", got)
	}
	if len(sub.Relationships) != 2 {
		t.Errorf("relationships = %v, want the two links to kid", sub.Relationships)
	}
	if got := RootIDs(sub.Members, sub.Relationships); !slices.Equal(got, []string{"dad", "mum"}) {
		t.Errorf("roots of subset = %v, want [dad mum]", got)
	}
}

func TestDescendantsLeaf(t *testing.T) {
	f := Family{
		Members:       people("a", "b"),
		Relationships: []Relationship{pc("a", "b")},
	}
	sub, ok := Descendants(f, "b")
	if !ok {
		t.Fatal("Descendants(b) ok = false")
	}
	if got := memberIDs(sub); !slices.Equal(got, []string{"b"}) {
		t.Errorf("members = %v, want [b]", got)
	}
	if len(sub.Relationships) != 0 {
		t.Errorf("relationships = %v, want none", sub.Relationships)
	}
}

func TestDescendantsUnknown(t *testing.T) {
	if _, ok := Descendants(Family{Members: people("a")}, "zz"); ok {
		t.Error("Descendants(zz) ok = true, want false")
	}
}
