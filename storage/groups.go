package storage

import (
	"fmt"

	"github.com/collabd/collabd/models"
)

// InsertGroup inserts a new group. Inserting a name that already exists
// returns a *DuplicateKeyError.
func (s *Store) InsertGroup(group *models.Group) error {
	date := group.Date
	if date == "" {
		date = models.DefaultDate()
	}
	err := s.insertRow("groups", fields{
		{"name", group.Name},
		{"date", date},
	})
	if err != nil {
		return err
	}
	s.log.Debug().Str("group", group.Name).Msg("inserted group")
	return nil
}

// SelectGroups selects the groups with the given name. An empty name matches
// all groups. A limit of zero means no limit.
func (s *Store) SelectGroups(name string, limit int) ([]models.Group, error) {
	rows, err := s.selectRows("groups", fields{{"name", name}}, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.StructScan(&group); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// SelectGroup selects the group with the given name, or nil if it does not
// exist.
func (s *Store) SelectGroup(name string) (*models.Group, error) {
	groups, err := s.SelectGroups(name, 1)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, nil
	}
	return &groups[0], nil
}
