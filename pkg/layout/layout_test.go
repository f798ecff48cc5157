package layout

import (
	"slices"
	"testing"

	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/family"
)

func pc(parent, child string) family.Relationship {
	return family.Relationship{Type: family.ParentChild, ParentID: parent, ChildID: child}
}

func build(t *testing.T, ids []string, rels []family.Relationship) Layout {
	t.Helper()
	l, err := buildErr(t, ids, rels)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return l
}

func buildErr(t *testing.T, ids []string, rels []family.Relationship) (Layout, error) {
	t.Helper()
	members := make([]family.Person, len(ids))
	for i, id := range ids {
		members[i] = family.Person{ID: id, Name: id}
	}
	idx, err := family.NewIndex(members)
	if err != nil {
		t.Fatalf("NewIndex() error: %v", err)
	}
	return Build(idx, rels, family.RootIDs(members, rels), DefaultConfig())
}

func TestBuildSinglePerson(t *testing.T) {
	l := build(t, []string{"a"}, nil)

	got, ok := l.At("a")
	if !ok {
		t.Fatal("a not placed")
	}
	want := Position{X: 50, Y: 50, Generation: 0}
	if got != want {
		t.Errorf("At(a) = %+v, want %+v", got, want)
	}
	if l.Generations() != 1 {
		t.Errorf("Generations() = %d, want 1", l.Generations())
	}
}

func TestBuildCouple(t *testing.T) {
	l := build(t, []string{"a", "b", "c"}, []family.Relationship{pc("a", "c"), pc("b", "c")})

	tests := []struct {
		id   string
		want Position
	}{
		{"a", Position{X: 50, Y: 50, Generation: 0}},
		{"b", Position{X: 210, Y: 50, Generation: 0}},
		{"c", Position{X: 50, Y: 190, Generation: 1}},
	}
	for _, tt := range tests {
		if got, _ := l.At(tt.id); got != tt.want {
			t.Errorf("At(%s) = %+v, want %+v", tt.id, got, tt.want)
		}
	}
}

func TestBuildRowOrder(t *testing.T) {
	// Children are collected per parent in row order, then relationship order.
	rels := []family.Relationship{
		pc("p2", "d"),
		pc("p1", "b"),
		pc("p1", "a"),
		pc("p2", "b"),
	}
	l := build(t, []string{"p1", "p2", "a", "b", "d"}, rels)

	if !slices.Equal(l.Rows[1], []string{"b", "a", "d"}) {
		t.Errorf("Rows[1] = %v, want [b a d]", l.Rows[1])
	}
}

func TestBuildMovesToDeeperGeneration(t *testing.T) {
	// c is a child of both a root and a grandchild.
	rels := []family.Relationship{pc("r", "a"), pc("r", "c"), pc("a", "b"), pc("b", "c")}
	l := build(t, []string{"r", "a", "b", "c"}, rels)

	if p, _ := l.At("c"); p.Generation != 3 {
		t.Errorf("c generation = %d, want 3", p.Generation)
	}
	if !slices.Equal(l.Rows[1], []string{"a"}) {
		t.Errorf("Rows[1] = %v, want [a] with no hole", l.Rows[1])
	}
	if p, _ := l.At("a"); p.X != 50 {
		t.Errorf("a.X = %v, want 50", p.X)
	}
	if p, _ := l.At("c"); p.Y != 50+3*140 {
		t.Errorf("c.Y = %v, want %v", p.Y, 50+3*140)
	}
}

func TestBuildDiamond(t *testing.T) {
	rels := []family.Relationship{pc("a", "b"), pc("a", "c"), pc("b", "d"), pc("c", "d")}
	l := build(t, []string{"a", "b", "c", "d"}, rels)

	if l.Len() != 4 {
		t.Errorf("Len() = %d, want 4", l.Len())
	}
	if !slices.Equal(l.Rows[2], []string{"d"}) {
		t.Errorf("Rows[2] = %v, want [d] exactly once", l.Rows[2])
	}
}

func TestBuildUnreachable(t *testing.T) {
	// x's only parent is unknown, so nobody reaches it.
	l := build(t, []string{"a", "x"}, []family.Relationship{pc("ghost", "x")})

	if _, ok := l.At("x"); ok {
		t.Error("x should not be placed")
	}
	if _, ok := l.At("a"); !ok {
		t.Error("a should be placed")
	}
}

func TestBuildIgnoresUnknownChildren(t *testing.T) {
	l := build(t, []string{"a"}, []family.Relationship{pc("a", "ghost")})
	if l.Generations() != 1 || l.Len() != 1 {
		t.Errorf("layout = %+v, want only a", l)
	}
}

func TestBuildIgnoresOtherRelationshipTypes(t *testing.T) {
	rels := []family.Relationship{{Type: "sibling", ParentID: "a", ChildID: "b"}}
	l := build(t, []string{"a", "b"}, rels)

	if !slices.Equal(l.Rows[0], []string{"a", "b"}) {
		t.Errorf("Rows[0] = %v, want [a b]", l.Rows[0])
	}
}

func TestBuildEmpty(t *testing.T) {
	l := build(t, nil, nil)
	if l.Len() != 0 || l.Generations() != 0 {
		t.Errorf("layout = %+v, want empty", l)
	}
}

func TestBuildCycle(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		rels []family.Relationship
	}{
		{"no roots", []string{"a", "b"}, []family.Relationship{pc("a", "b"), pc("b", "a")}},
		{"unreachable cycle", []string{"r", "a", "b"}, []family.Relationship{pc("a", "b"), pc("b", "a")}},
		{"below a root", []string{"r", "a", "b"}, []family.Relationship{pc("r", "a"), pc("a", "b"), pc("b", "a")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildErr(t, tt.ids, tt.rels)
			if !errors.IsStructural(err) {
				t.Errorf("Build() error = %v, want structural", err)
			}
		})
	}
}

func TestBuildCustomConfig(t *testing.T) {
	members := []family.Person{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	rels := []family.Relationship{pc("a", "c")}
	idx, _ := family.NewIndex(members)

	cfg := DefaultConfig()
	cfg.BoxWidth, cfg.HGap, cfg.VGap, cfg.OriginX = 100, 10, 20, 0

	l, err := Build(idx, rels, family.RootIDs(members, rels), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := l.At("b"); p.X != 110 {
		t.Errorf("b.X = %v, want 110", p.X)
	}
	if p, _ := l.At("c"); p.Y != 50+60+20 {
		t.Errorf("c.Y = %v, want 130", p.Y)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero gaps", func(c *Config) { c.HGap, c.VGap = 0, 0 }, true},
		{"zero width", func(c *Config) { c.BoxWidth = 0 }, false},
		{"negative height", func(c *Config) { c.BoxHeight = -1 }, false},
		{"negative margin", func(c *Config) { c.Margin = -5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Fatalf("Validate() = %v, want ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() code = %s, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}
