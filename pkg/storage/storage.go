// Package storage keeps rendered diagrams so clients can fetch them again by
// id.
//
// The HTTP service saves every successful render and returns the id in the
// X-Diagram-ID header; GET /api/family-tree/{id} reads it back. Two backends
// exist: [MemoryStore] for single-process deployments and tests, and
// [MongoStore] for anything that must survive a restart.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Get for unknown ids.
var ErrNotFound = errors.New("diagram not found")

// Diagram is one stored render.
type Diagram struct {
	ID          string    `json:"id" bson:"_id"`
	Format      string    `json:"format" bson:"format"`
	Style       string    `json:"style" bson:"style"`
	ContentType string    `json:"content_type" bson:"content_type"`
	Data        []byte    `json:"-" bson:"data"`
	FamilyHash  string    `json:"family_hash" bson:"family_hash"`
	People      int       `json:"people" bson:"people"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Store persists diagrams. Save assigns ID and CreatedAt when they are empty
// and returns the stored record.
type Store interface {
	Save(ctx context.Context, d Diagram) (Diagram, error)
	Get(ctx context.Context, id string) (Diagram, error)
	Close(ctx context.Context) error
}

// NewID returns a random diagram id.
func NewID() string { return uuid.NewString() }

// ValidID reports whether id looks like an id produced by [NewID].
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func stamp(d Diagram, now time.Time) Diagram {
	if d.ID == "" {
		d.ID = NewID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now.UTC()
	}
	return d
}
