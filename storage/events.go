package storage

import (
	"fmt"

	"github.com/collabd/collabd/models"
)

const selectEventsSinceSQL = `
SELECT * FROM events
WHERE group_name = ? AND project = ? AND database = ? AND tick > ?
ORDER BY tick ASC;
`

const lastTickSQL = `
SELECT COALESCE(MAX(tick), 0) FROM events
WHERE group_name = ? AND project = ? AND database = ?;
`

type eventRow struct {
	GroupName string `db:"group_name"`
	Project   string `db:"project"`
	Database  string `db:"database"`
	Tick      int64  `db:"tick"`
	Dict      string `db:"dict"`
}

// InsertEvent appends an event to the log for the client's scope. Two writers
// racing on the same tick is a *DuplicateKeyError, never a silent overwrite.
func (s *Store) InsertEvent(scope models.Scope, event *models.Event) error {
	payload, err := models.EncodeEventV1(event)
	if err != nil {
		return fmt.Errorf("failed to encode event payload: %w", err)
	}
	err = s.insertRow("events", fields{
		{"group_name", scope.Group},
		{"project", scope.Project},
		{"database", scope.Database},
		{"tick", event.Tick},
		{"dict", string(payload)},
	})
	if err != nil {
		return err
	}
	s.log.Debug().
		Str("group", scope.Group).
		Str("project", scope.Project).
		Str("database", scope.Database).
		Int64("tick", event.Tick).
		Msg("inserted event")
	return nil
}

// SelectEvents returns all events in the scope with tick > sinceTick, in
// ascending tick order. Reconnecting clients replay these to catch up.
func (s *Store) SelectEvents(group, project, database string, sinceTick int64) ([]*models.Event, error) {
	var rows []eventRow
	err := s.db.Select(&rows, selectEventsSinceSQL, group, project, database, sinceTick)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}

	events := make([]*models.Event, 0, len(rows))
	for _, row := range rows {
		event, err := models.DecodeEventV1([]byte(row.Dict), row.Tick)
		if err != nil {
			return nil, fmt.Errorf("failed to decode event at tick %d: %w", row.Tick, err)
		}
		events = append(events, event)
	}
	return events, nil
}

// LastTick returns the highest tick recorded for the scope, or 0 if no
// events exist yet. Writers start real history at tick 1.
func (s *Store) LastTick(group, project, database string) (int64, error) {
	var tick int64
	err := s.db.Get(&tick, lastTickSQL, group, project, database)
	if err != nil {
		return 0, fmt.Errorf("failed to query last tick: %w", err)
	}
	return tick, nil
}

// UpdateEventsProject re-homes every event row under the given group from one
// owning project name to another.
func (s *Store) UpdateEventsProject(group, oldName, newName string) error {
	return s.updateRows("events", "project", newName, fields{
		{"group_name", group},
		{"project", oldName},
	}, 0)
}
