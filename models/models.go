package models

import (
	"time"
)

// Group is a top-level collaboration namespace grouping projects.
type Group struct {
	Name string `db:"name" json:"name"`
	Date string `db:"date" json:"date"`
}

// Project is a named reverse-engineering project within a group, identified
// by group and name.
type Project struct {
	GroupName string `db:"group_name" json:"group_name"`
	Name      string `db:"name" json:"name"`
	Hash      string `db:"hash" json:"hash"`
	File      string `db:"file" json:"file"`
	Type      string `db:"type" json:"type"`
	Date      string `db:"date" json:"date"`
}

// Database is a named snapshot of collaborative state within a project.
//
// Tick mirrors the latest event tick for display to clients. It is derived
// from the event log and never written to the databases table.
type Database struct {
	GroupName string `db:"group_name" json:"group_name"`
	Project   string `db:"project" json:"project"`
	Name      string `db:"name" json:"name"`
	Date      string `db:"date" json:"date"`
	Tick      int64  `db:"-" json:"tick"`
}

// Scope is the (group, project, database) triple that events are partitioned
// by. The session layer fills it from the connected client's state.
type Scope struct {
	Group    string `json:"group"`
	Project  string `json:"project"`
	Database string `json:"database"`
}

// DefaultDate returns the creation timestamp recorded for rows whose date
// was not set by the caller.
func DefaultDate() string {
	return time.Now().UTC().Format(time.RFC3339)
}
