package state

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore()

	st := NewSessionState("s1", "a@example.com", fixedNow())
	st.AppendTurn("q1", "r1", fixedNow())
	st.LastProductQuery = "zoom h6"

	if err := store.Save(context.Background(), st); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.CustomerEmail != "a@example.com" {
		t.Fatalf("CustomerEmail = %q", loaded.CustomerEmail)
	}
	if len(loaded.History) != 1 || loaded.History[0].Query != "q1" {
		t.Fatalf("unexpected history: %#v", loaded.History)
	}
	if loaded.LastProductQuery != "zoom h6" {
		t.Fatalf("LastProductQuery = %q", loaded.LastProductQuery)
	}
}

func TestInMemoryStoreLoadIsolatedFromCaller(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore()
	st := NewSessionState("s1", "", fixedNow())
	if err := store.Save(context.Background(), st); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Mutating what came back must not leak into the next load.
	first, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	first.AppendTurn("rogue", "rogue", fixedNow())

	second, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(second.History) != 0 {
		t.Fatalf("store shared memory with caller: %#v", second.History)
	}
}

func TestInMemoryStoreNotFound(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore()
	_, err := store.Load(context.Background(), "missing")
	if !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}
}

func TestInMemoryStoreInvalidInput(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore()

	if _, err := store.Load(context.Background(), "   "); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Load blank id: %v", err)
	}
	if err := store.Save(context.Background(), nil); !errors.Is(err, ErrNilSessionState) {
		t.Fatalf("Save nil: %v", err)
	}
	if err := store.Save(context.Background(), &SessionState{}); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Save blank id: %v", err)
	}
	if err := store.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Delete blank id: %v", err)
	}
}

func TestInMemoryStoreDelete(t *testing.T) {
	t.Parallel()

	store := NewInMemoryStore()
	st := NewSessionState("s1", "", fixedNow())
	if err := store.Save(context.Background(), st); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Load(context.Background(), "s1"); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound after delete, got %v", err)
	}
}
