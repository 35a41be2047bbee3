package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "test_registry.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	cleanup := func() {
		s.Close()
		os.Remove(path)
	}

	return s, cleanup
}

func TestNewStore(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	if s == nil {
		t.Fatal("store should not be nil")
	}
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSetAndGet(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if err := s.Set(ctx, 1, "document_title", "Home"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := s.Get(ctx, 1, "document_title")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "Home" {
		t.Errorf("Get = %q, want %q", got, "Home")
	}

	// Update
	if err := s.Set(ctx, 1, "document_title", "Welcome"); err != nil {
		t.Fatalf("Set update failed: %v", err)
	}
	got, err = s.Get(ctx, 1, "document_title")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "Welcome" {
		t.Errorf("Get = %q, want %q", got, "Welcome")
	}
}

func TestGetNotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.Get(context.Background(), 42, "description")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if err := s.Set(ctx, 1, "description", "About"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Delete(ctx, 1, "description"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, 1, "description"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}
	// Deleting again is not an error.
	if err := s.Delete(ctx, 1, "description"); err != nil {
		t.Errorf("second Delete failed: %v", err)
	}
}

func TestFind(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	seed := []Entry{
		{2, "description", "B description"},
		{1, "document_title", "A title"},
		{1, "description", "A description"},
		{1, "keywords", "ignored"},
		{3, "document_title", "C title"},
	}
	for _, e := range seed {
		if err := s.Set(ctx, e.TargetID, e.Name, e.Value); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	got, err := s.Find(ctx, []int64{1, 2}, []string{"document_title", "description"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	want := []Entry{
		{1, "description", "A description"},
		{1, "document_title", "A title"},
		{2, "description", "B description"},
	}
	if len(got) != len(want) {
		t.Fatalf("Find returned %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFindEmptySets(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if err := s.Set(ctx, 1, "description", "A"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	for _, tc := range []struct {
		ids   []int64
		names []string
	}{
		{nil, []string{"description"}},
		{[]int64{1}, nil},
	} {
		got, err := s.Find(ctx, tc.ids, tc.names)
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Find(%v, %v) = %v, want none", tc.ids, tc.names, got)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "?"},
		{3, "?,?,?"},
	}
	for _, tt := range tests {
		if got := placeholders(tt.n); got != tt.want {
			t.Errorf("placeholders(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFindManyIDs(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	const n = 3*maxFindIDs + 7
	ids := make([]int64, 0, n)
	for i := int64(n); i >= 1; i-- {
		ids = append(ids, i)
	}
	for _, id := range []int64{1, maxFindIDs, maxFindIDs + 1, n} {
		if err := s.Set(ctx, id, "description", "set"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	got, err := s.Find(ctx, ids, []string{"description"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	want := []int64{1, maxFindIDs, maxFindIDs + 1, n}
	if len(got) != len(want) {
		t.Fatalf("Find returned %d entries, want %d: %v", len(got), len(want), got)
	}
	for i, id := range want {
		if got[i].TargetID != id {
			t.Errorf("entry %d target = %d, want %d", i, got[i].TargetID, id)
		}
	}
}
