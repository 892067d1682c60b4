package storage

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// Store owns the connection to the SQLite file backing the server. One Store
// is shared by all callers; the pool is capped at a single connection so the
// engine's own locking serializes concurrent statements. Every statement
// auto-commits, there are no multi-statement transactions anywhere in this
// layer.
type Store struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// Open opens the SQLite database at the given path, creating the file if it
// does not exist.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	log := logger.With().
		Str("store_id", uuid.NewString()).
		Str("path", path).
		Logger()
	log.Debug().Msg("store opened")

	return &Store{db: db, log: log}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Initialize creates the four entity tables if they do not exist. It is safe
// to call on every startup, including against a populated database file.
// Foreign keys are declarative only; callers must create parents before
// children.
func (s *Store) Initialize() error {
	err := s.createTable("groups", []string{
		"name TEXT NOT NULL",
		"date TEXT NOT NULL",
		"PRIMARY KEY (name)",
	})
	if err != nil {
		return fmt.Errorf("failed to create groups table: %w", err)
	}

	err = s.createTable("projects", []string{
		"group_name TEXT NOT NULL",
		"name TEXT NOT NULL",
		"hash TEXT NOT NULL",
		"file TEXT NOT NULL",
		"type TEXT NOT NULL",
		"date TEXT NOT NULL",
		"FOREIGN KEY (group_name) REFERENCES groups (name)",
		"PRIMARY KEY (group_name, name)",
	})
	if err != nil {
		return fmt.Errorf("failed to create projects table: %w", err)
	}

	err = s.createTable("databases", []string{
		"group_name TEXT NOT NULL",
		"project TEXT NOT NULL",
		"name TEXT NOT NULL",
		"date TEXT NOT NULL",
		"FOREIGN KEY (group_name) REFERENCES groups (name)",
		"FOREIGN KEY (group_name, project) REFERENCES projects (group_name, name)",
		"PRIMARY KEY (group_name, project, name)",
	})
	if err != nil {
		return fmt.Errorf("failed to create databases table: %w", err)
	}

	err = s.createTable("events", []string{
		"group_name TEXT NOT NULL",
		"project TEXT NOT NULL",
		"database TEXT NOT NULL",
		"tick INTEGER NOT NULL",
		"dict TEXT NOT NULL",
		"FOREIGN KEY (group_name) REFERENCES groups (name)",
		"FOREIGN KEY (group_name, project) REFERENCES projects (group_name, name)",
		"FOREIGN KEY (group_name, project, database) REFERENCES databases (group_name, project, name)",
		"PRIMARY KEY (group_name, project, database, tick)",
	})
	if err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	s.log.Debug().Msg("schema initialized")
	return nil
}
