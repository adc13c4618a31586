package session

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	s := New("entity.n.01", "eng", 200, time.Hour)
	if s.ID == "" {
		t.Fatal("ID is empty")
	}
	if other := New("entity.n.01", "eng", 200, time.Hour); other.ID == s.ID {
		t.Errorf("two sessions share ID %q", s.ID)
	}
	if got := s.Current(); got != "entity.n.01" {
		t.Errorf("Current() = %q, want entity.n.01", got)
	}
	if s.IsExpired() {
		t.Error("new session is expired")
	}
}

func TestPushBack(t *testing.T) {
	s := New("a", "eng", 10, time.Hour)
	s.Push("b")
	s.Push("b")
	s.Push("c")
	if want := []string{"a", "b", "c"}; !slices.Equal(s.History, want) {
		t.Fatalf("History = %v, want %v", s.History, want)
	}

	if !s.Back() || s.Current() != "b" {
		t.Errorf("Back() -> Current() = %q, want b", s.Current())
	}
	if !s.Back() || s.Current() != "a" {
		t.Errorf("Back() -> Current() = %q, want a", s.Current())
	}
	if s.Back() {
		t.Error("Back() at first root = true, want false")
	}
	if s.Current() != "a" {
		t.Errorf("Current() = %q, want a", s.Current())
	}
}

func TestCurrentEmpty(t *testing.T) {
	var s Session
	if got := s.Current(); got != "" {
		t.Errorf("Current() = %q, want empty", got)
	}
}

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	got, err := store.Get(ctx, "missing")
	if err != nil || got != nil {
		t.Fatalf("Get(missing) = %v, %v; want nil, nil", got, err)
	}

	s := New("a", "eng", 10, time.Hour)
	s.Push("b")
	if err := store.Set(ctx, s); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err = store.Get(ctx, s.ID)
	if err != nil || got == nil {
		t.Fatalf("Get() = %v, %v", got, err)
	}
	if got.Current() != "b" || got.Language != "eng" || got.Limit != 10 {
		t.Errorf("Get() = %+v", got)
	}

	// Mutating the returned copy must not affect the store until Set.
	got.Push("c")
	again, _ := store.Get(ctx, s.ID)
	if again.Current() != "b" {
		t.Errorf("stored Current() = %q after unsaved Push, want b", again.Current())
	}

	expired := New("x", "eng", 10, -time.Minute)
	if err := store.Set(ctx, expired); err != nil {
		t.Fatalf("Set(expired) error = %v", err)
	}
	if got, _ := store.Get(ctx, expired.ID); got != nil {
		t.Errorf("Get(expired) = %v, want nil", got)
	}
	if err := store.Cleanup(ctx); err != nil {
		t.Errorf("Cleanup() error = %v", err)
	}

	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got, _ := store.Get(ctx, s.ID); got != nil {
		t.Errorf("Get() after Delete = %v, want nil", got)
	}
	if err := store.Delete(ctx, s.ID); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	testStore(t, store)
}

func TestMemoryStoreCleanup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Set(ctx, New("a", "eng", 10, -time.Second))
	store.Set(ctx, New("b", "eng", 10, time.Hour))
	if err := store.Cleanup(ctx); err != nil {
		t.Fatal(err)
	}
	if got := store.Len(); got != 1 {
		t.Errorf("Len() after Cleanup = %d, want 1", got)
	}
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	testStore(t, store)
}

func TestFileStoreCleanup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	store.Set(ctx, New("a", "eng", 10, -time.Second))
	store.Set(ctx, New("b", "eng", 10, time.Hour))
	if err := store.Cleanup(ctx); err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("files after Cleanup = %d, want 1", len(entries))
	}
}

func TestFileStorePathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	s := New("a", "eng", 10, time.Hour)
	s.ID = "../escape"
	if err := store.Set(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.json")); err != nil {
		t.Errorf("session not written inside store dir: %v", err)
	}
}

func TestCLIStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewCLIStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if got, err := store.GetSession(ctx); err != nil || got != nil {
		t.Fatalf("GetSession() = %v, %v; want nil, nil", got, err)
	}

	s := New("dog.n.01", "eng", 50, time.Hour)
	if err := store.SaveSession(ctx, s); err != nil {
		t.Fatal(err)
	}
	if filepath.Base(store.Path()) != "browse.json" {
		t.Errorf("Path() = %q", store.Path())
	}
	got, err := store.GetSession(ctx)
	if err != nil || got == nil || got.Current() != "dog.n.01" {
		t.Fatalf("GetSession() = %v, %v", got, err)
	}
	if err := store.DeleteSession(ctx); err != nil {
		t.Fatal(err)
	}
	if got, _ := store.GetSession(ctx); got != nil {
		t.Errorf("GetSession() after delete = %v", got)
	}
}
