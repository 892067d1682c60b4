package storage

import (
	"fmt"

	"github.com/collabd/collabd/models"
)

// InsertProject inserts a new project under its group. The group must already
// exist; foreign keys are declarative only and not checked here.
func (s *Store) InsertProject(project *models.Project) error {
	date := project.Date
	if date == "" {
		date = models.DefaultDate()
	}
	err := s.insertRow("projects", fields{
		{"group_name", project.GroupName},
		{"name", project.Name},
		{"hash", project.Hash},
		{"file", project.File},
		{"type", project.Type},
		{"date", date},
	})
	if err != nil {
		return err
	}
	s.log.Debug().
		Str("group", project.GroupName).
		Str("project", project.Name).
		Msg("inserted project")
	return nil
}

// SelectProjects selects the projects with the given group and name. Empty
// criteria match any value for that column.
func (s *Store) SelectProjects(group, name string, limit int) ([]models.Project, error) {
	rows, err := s.selectRows("projects", fields{
		{"group_name", group},
		{"name", name},
	}, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.StructScan(&project); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// SelectProject selects the project with the given group and name, or nil if
// it does not exist.
func (s *Store) SelectProject(group, name string) (*models.Project, error) {
	projects, err := s.SelectProjects(group, name, 1)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, nil
	}
	return &projects[0], nil
}

// UpdateProjectName renames a project in the projects table only. Databases
// and events referencing the old name must be updated separately; see
// RenameProject.
func (s *Store) UpdateProjectName(group, oldName, newName string) error {
	return s.updateRows("projects", "name", newName, fields{
		{"group_name", group},
		{"name", oldName},
	}, 0)
}
