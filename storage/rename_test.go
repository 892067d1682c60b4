package storage

import (
	"testing"

	"github.com/collabd/collabd/models"
)

func TestRenameProjectCascade(t *testing.T) {
	store := newTestStore(t)
	seedScope(t, store)

	scope := models.Scope{Group: "g1", Project: "p1", Database: "main"}
	for _, tick := range []int64{1, 2} {
		err := store.InsertEvent(scope, &models.Event{Type: "rename", Tick: tick})
		if err != nil {
			t.Fatalf("InsertEvent(tick=%d) returned error: %v", tick, err)
		}
	}

	if err := store.RenameProject("g1", "p1", "p2"); err != nil {
		t.Fatalf("RenameProject returned error: %v", err)
	}

	projects, err := store.SelectProjects("g1", "p2", 0)
	if err != nil {
		t.Fatalf("SelectProjects returned error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project named p2, got %d", len(projects))
	}

	databases, err := store.SelectDatabases("g1", "p2", "", 0)
	if err != nil {
		t.Fatalf("SelectDatabases returned error: %v", err)
	}
	if len(databases) != 1 || databases[0].Name != "main" {
		t.Fatalf("Expected database main under p2, got %+v", databases)
	}

	events, err := store.SelectEvents("g1", "p2", "main", 0)
	if err != nil {
		t.Fatalf("SelectEvents returned error: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("Expected 2 events under p2, got %d", len(events))
	}

	// Nothing may remain under the old name.
	oldProjects, err := store.SelectProjects("g1", "p1", 0)
	if err != nil {
		t.Fatalf("SelectProjects returned error: %v", err)
	}
	if len(oldProjects) != 0 {
		t.Errorf("Expected no projects named p1, got %d", len(oldProjects))
	}
	oldDatabases, err := store.SelectDatabases("g1", "p1", "", 0)
	if err != nil {
		t.Fatalf("SelectDatabases returned error: %v", err)
	}
	if len(oldDatabases) != 0 {
		t.Errorf("Expected no databases under p1, got %d", len(oldDatabases))
	}
	oldEvents, err := store.SelectEvents("g1", "p1", "main", 0)
	if err != nil {
		t.Fatalf("SelectEvents returned error: %v", err)
	}
	if len(oldEvents) != 0 {
		t.Errorf("Expected no events under p1, got %d", len(oldEvents))
	}
}

func TestRenameProjectScopedToGroup(t *testing.T) {
	store := newTestStore(t)
	seedScope(t, store)

	// Same project name in a second group must be untouched by the rename.
	if err := store.InsertGroup(&models.Group{Name: "g2"}); err != nil {
		t.Fatalf("InsertGroup returned error: %v", err)
	}
	if err := store.InsertProject(&models.Project{GroupName: "g2", Name: "p1", Hash: "h", File: "f", Type: "t"}); err != nil {
		t.Fatalf("InsertProject returned error: %v", err)
	}

	if err := store.RenameProject("g1", "p1", "p2"); err != nil {
		t.Fatalf("RenameProject returned error: %v", err)
	}

	other, err := store.SelectProject("g2", "p1")
	if err != nil {
		t.Fatalf("SelectProject returned error: %v", err)
	}
	if other == nil {
		t.Error("Rename in g1 must not touch g2's project p1")
	}
}
