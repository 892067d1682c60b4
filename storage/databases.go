package storage

import (
	"fmt"

	"github.com/collabd/collabd/models"
)

// InsertDatabase inserts a new database under its project. The model's Tick
// field is never written; a database's tick lives on its events.
func (s *Store) InsertDatabase(database *models.Database) error {
	date := database.Date
	if date == "" {
		date = models.DefaultDate()
	}
	err := s.insertRow("databases", fields{
		{"group_name", database.GroupName},
		{"project", database.Project},
		{"name", database.Name},
		{"date", date},
	})
	if err != nil {
		return err
	}
	s.log.Debug().
		Str("group", database.GroupName).
		Str("project", database.Project).
		Str("database", database.Name).
		Msg("inserted database")
	return nil
}

// SelectDatabases selects the databases with the given group, project and
// name. Empty criteria match any value for that column.
func (s *Store) SelectDatabases(group, project, name string, limit int) ([]models.Database, error) {
	rows, err := s.selectRows("databases", fields{
		{"group_name", group},
		{"project", project},
		{"name", name},
	}, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var databases []models.Database
	for rows.Next() {
		var database models.Database
		if err := rows.StructScan(&database); err != nil {
			return nil, fmt.Errorf("failed to scan database: %w", err)
		}
		databases = append(databases, database)
	}
	return databases, rows.Err()
}

// SelectDatabase selects the database with the given group, project and name,
// or nil if it does not exist.
func (s *Store) SelectDatabase(group, project, name string) (*models.Database, error) {
	databases, err := s.SelectDatabases(group, project, name, 1)
	if err != nil {
		return nil, err
	}
	if len(databases) == 0 {
		return nil, nil
	}
	return &databases[0], nil
}

// UpdateDatabaseProject re-homes every database row under the given group
// from one owning project name to another.
func (s *Store) UpdateDatabaseProject(group, oldName, newName string) error {
	return s.updateRows("databases", "project", newName, fields{
		{"group_name", group},
		{"project", oldName},
	}, 0)
}
