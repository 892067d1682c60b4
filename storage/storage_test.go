package storage

import (
	"path"
	"testing"

	"github.com/rs/zerolog"

	"github.com/collabd/collabd/models"
)

// newTestStore opens a store on a temporary file with the schema created.
func newTestStore(t *testing.T) *Store {
	dbPath := path.Join(t.TempDir(), "test_store.db")
	store, err := Open(dbPath, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	return store
}

func TestInitializeCreatesTables(t *testing.T) {
	store := newTestStore(t)

	for _, table := range []string{"groups", "projects", "databases", "events"} {
		var name string
		err := store.db.Get(&name,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table)
		if err != nil {
			t.Errorf("Table %q does not exist: %v", table, err)
		}
	}
}

func TestInitializeIdempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.InsertGroup(&models.Group{Name: "g1", Date: "2024-01-01"}); err != nil {
		t.Fatalf("InsertGroup returned error: %v", err)
	}

	// A second Initialize against populated tables must not fail or alter
	// existing rows.
	if err := store.Initialize(); err != nil {
		t.Fatalf("second Initialize returned error: %v", err)
	}

	group, err := store.SelectGroup("g1")
	if err != nil {
		t.Fatalf("SelectGroup returned error: %v", err)
	}
	if group == nil || group.Date != "2024-01-01" {
		t.Errorf("Expected g1 with date 2024-01-01 to survive re-init, got %+v", group)
	}
}

func TestOpenUnwritablePath(t *testing.T) {
	_, err := Open(path.Join(t.TempDir(), "missing", "nested", "store.db"), zerolog.Nop())
	if err == nil {
		t.Fatal("Expected error opening store in a nonexistent directory")
	}
}
