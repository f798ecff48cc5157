package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close(ctx)

	saved, err := s.Save(ctx, Diagram{Format: "svg", Data: []byte("<svg/>")})
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !ValidID(saved.ID) {
		t.Errorf("Save() id = %q, want a uuid", saved.ID)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("Save() should stamp CreatedAt")
	}

	got, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got.Data) != "<svg/>" || got.Format != "svg" {
		t.Errorf("Get() = %+v", got)
	}

	got.Data[0] = 'X'
	again, _ := s.Get(ctx, saved.ID)
	if string(again.Data) != "<svg/>" {
		t.Error("Get() should return a copy of the stored bytes")
	}
}

func TestMemoryStoreKeepsGivenID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	saved, _ := s.Save(ctx, Diagram{ID: "fixed", CreatedAt: created})
	if saved.ID != "fixed" || !saved.CreatedAt.Equal(created) {
		t.Errorf("Save() = %+v, want given id and timestamp", saved)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	_, err := NewMemoryStore(0).Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(2)

	first, _ := s.Save(ctx, Diagram{})
	s.Save(ctx, Diagram{})
	s.Save(ctx, Diagram{})

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if _, err := s.Get(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Error("oldest diagram should have been evicted")
	}
}

func TestValidID(t *testing.T) {
	if !ValidID(NewID()) {
		t.Error("NewID() should be valid")
	}
	if ValidID("../etc/passwd") {
		t.Error("path-like id should be invalid")
	}
}
