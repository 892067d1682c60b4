package storage

import (
	"fmt"
)

// RenameProject renames a project and re-homes its databases and events.
//
// The engine's foreign keys carry no cascading update, so the rename spans
// three tables. Each step commits independently; a crash between steps leaves
// some tables on the old name and some on the new. Callers that need to
// recover must inspect all three tables.
func (s *Store) RenameProject(group, oldName, newName string) error {
	if err := s.UpdateProjectName(group, oldName, newName); err != nil {
		return fmt.Errorf("failed to rename project %s: %w", oldName, err)
	}
	if err := s.UpdateDatabaseProject(group, oldName, newName); err != nil {
		return fmt.Errorf("failed to re-home databases of %s: %w", oldName, err)
	}
	if err := s.UpdateEventsProject(group, oldName, newName); err != nil {
		return fmt.Errorf("failed to re-home events of %s: %w", oldName, err)
	}
	s.log.Info().
		Str("group", group).
		Str("old_name", oldName).
		Str("new_name", newName).
		Msg("renamed project")
	return nil
}
