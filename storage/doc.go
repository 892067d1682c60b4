package storage

// Package storage provides the persistent record-keeping layer for the
// collaboration server: groups, projects, named databases and the per-database
// event log, all stored in a single SQLite file. The session layer is expected
// to call Initialize once at startup and use the typed accessors for all
// subsequent reads and writes.
