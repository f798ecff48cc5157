package scene

import (
	"testing"

	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/layout"
	"github.com/matzehuels/familytree/pkg/route"
)

func pc(parent, child string) family.Relationship {
	return family.Relationship{Type: family.ParentChild, ParentID: parent, ChildID: child}
}

func assemble(t *testing.T, members []family.Person, rels []family.Relationship) Scene {
	t.Helper()
	idx, err := family.NewIndex(members)
	if err != nil {
		t.Fatal(err)
	}
	cfg := layout.DefaultConfig()
	l, err := layout.Build(idx, rels, family.RootIDs(members, rels), cfg)
	if err != nil {
		t.Fatal(err)
	}
	pg := family.ParentsByChild(rels)
	return Assemble(members, l, route.Route(l, pg.Marriages(), pg, rels, cfg), cfg)
}

func kinds(s Scene) []Kind {
	out := make([]Kind, len(s.Commands))
	for i, c := range s.Commands {
		out[i] = c.Kind
	}
	return out
}

func TestAssembleEmpty(t *testing.T) {
	s := assemble(t, nil, nil)
	if s.Width != 50 || s.Height != 50 {
		t.Errorf("size = %vx%v, want 50x50", s.Width, s.Height)
	}
	if len(s.Commands) != 0 {
		t.Errorf("Commands = %v, want none", s.Commands)
	}
}

func TestAssembleSinglePerson(t *testing.T) {
	s := assemble(t, []family.Person{{ID: "a", Name: "Ada"}}, nil)

	if s.Width != 220 || s.Height != 160 {
		t.Errorf("size = %vx%v, want 220x160", s.Width, s.Height)
	}
	if len(s.Commands) != 1 || s.Commands[0].Kind != KindBox {
		t.Fatalf("Commands = %+v, want one box", s.Commands)
	}
	b := s.Commands[0].Box
	if b.CenterX() != 110 || b.NameY != 75 || b.DetailY != 92 {
		t.Errorf("label anchors = (%v, %v, %v), want (110, 75, 92)", b.CenterX(), b.NameY, b.DetailY)
	}
	if b.HasDetail() {
		t.Error("box without birth year should have no detail")
	}
}

func TestAssembleOrder(t *testing.T) {
	members := []family.Person{
		{ID: "a", Name: "A"}, {ID: "b", Name: "B"},
		{ID: "c", Name: "C", BirthYear: family.Year(1990)},
		{ID: "d", Name: "D"},
	}
	rels := []family.Relationship{pc("a", "c"), pc("b", "c"), pc("a", "d")}
	s := assemble(t, members, rels)

	want := []Kind{KindLine, KindPath, KindPath, KindBox, KindBox, KindBox, KindBox}
	got := kinds(s)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}

	if s.Commands[1].To != "c" || s.Commands[1].From != "a-b" {
		t.Errorf("first path = %+v, want marriage a-b to c", s.Commands[1])
	}
	if s.Commands[2].To != "d" || s.Commands[2].From != "a" {
		t.Errorf("second path = %+v, want a to d", s.Commands[2])
	}
	if got := s.Commands[5].Box; got.ID != "c" || got.Detail != "b. 1990" {
		t.Errorf("box c = %+v", got)
	}
	if s.Count(KindBox) != 4 {
		t.Errorf("Count(box) = %d, want 4", s.Count(KindBox))
	}
}

func TestAssembleSkipsUnplaced(t *testing.T) {
	members := []family.Person{{ID: "a"}, {ID: "orphan"}}
	s := assemble(t, members, []family.Relationship{pc("ghost", "orphan")})

	if s.Count(KindBox) != 1 {
		t.Errorf("Count(box) = %d, want 1", s.Count(KindBox))
	}
}
