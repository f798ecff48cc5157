package family

import (
	"github.com/matzehuels/familytree/pkg/errors"
)

// Index is an id lookup over a member list that also remembers input order.
type Index struct {
	byID  map[string]*Person
	order []string
}

// NewIndex builds the lookup. Empty and duplicate ids are rejected as
// input-shape errors, since later passes could not tell two boxes apart.
func NewIndex(members []Person) (*Index, error) {
	idx := &Index{
		byID:  make(map[string]*Person, len(members)),
		order: make([]string, 0, len(members)),
	}
	for i := range members {
		p := &members[i]
		if p.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "member %d has an empty id", i)
		}
		if _, dup := idx.byID[p.ID]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateID, "duplicate person id %q", p.ID)
		}
		idx.byID[p.ID] = p
		idx.order = append(idx.order, p.ID)
	}
	return idx, nil
}

// Get returns the person with the given id.
func (x *Index) Get(id string) (*Person, bool) {
	p, ok := x.byID[id]
	return p, ok
}

// Has reports whether id names a known person.
func (x *Index) Has(id string) bool {
	_, ok := x.byID[id]
	return ok
}

// IDs returns member ids in input order.
func (x *Index) IDs() []string { return x.order }

// Len returns the number of indexed people.
func (x *Index) Len() int { return len(x.order) }
