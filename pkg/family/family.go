package family

import (
	"strconv"
)

// ParentChild is the only relationship type the layout understands.
const ParentChild = "parent-child"

// Person is a single box in the diagram. ID is the identity; Name is the
// primary label. BirthYear is optional and rendered as a secondary label when
// set, including an explicit zero.
type Person struct {
	ID        string `json:"id" yaml:"id" toml:"id" bson:"id" validate:"required"`
	Name      string `json:"name" yaml:"name" toml:"name" bson:"name"`
	BirthYear *int   `json:"birthYear,omitempty" yaml:"birthYear,omitempty" toml:"birthYear,omitempty" bson:"birth_year,omitempty"`
}

// HasBirthYear reports whether a birth year was supplied.
func (p Person) HasBirthYear() bool { return p.BirthYear != nil }

// Detail returns the secondary label ("b. 1815"), or "" without a birth year.
func (p Person) Detail() string {
	if p.BirthYear == nil {
		return ""
	}
	return "b. " + strconv.Itoa(*p.BirthYear)
}

// Relationship links a parent to a child.
type Relationship struct {
	Type     string `json:"type" yaml:"type" toml:"type" bson:"type"`
	ParentID string `json:"parentId" yaml:"parentId" toml:"parentId" bson:"parent_id"`
	ChildID  string `json:"childId" yaml:"childId" toml:"childId" bson:"child_id"`
}

// IsParentChild reports whether the relationship is recognized by the layout.
func (r Relationship) IsParentChild() bool { return r.Type == ParentChild }

// Family is the complete input of one diagram.
type Family struct {
	Members       []Person       `json:"members" yaml:"members" toml:"members" bson:"members"`
	Relationships []Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty" toml:"relationships,omitempty" bson:"relationships,omitempty"`
}

// Year is a convenience for building people with a birth year in code.
func Year(y int) *int { return &y }

// parentChild returns the recognized relationships in input order.
func parentChild(rels []Relationship) []Relationship {
	out := make([]Relationship, 0, len(rels))
	for _, r := range rels {
		if r.IsParentChild() {
			out = append(out, r)
		}
	}
	return out
}
