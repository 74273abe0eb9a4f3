package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

//go:embed archive_schema.sql
var archiveSchemaSQL string

// DB wraps a sql.DB holding both the live schema (surrogate keys, manual
// entry) and the archival schema (natural keys, bulk import). Only the
// router package is allowed to reach across the two.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// both schemas.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply live schema: %w", err)
	}
	if _, err := conn.Exec(archiveSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply archive schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// ResetArchive drops and recreates the four archival tables. Destructive
// administrative action intended only as a pre-step before a fresh bulk
// import; live tables are untouched.
func (db *DB) ResetArchive() error {
	drop := `
		DROP TABLE IF EXISTS history_player_games;
		DROP TABLE IF EXISTS history_games;
		DROP TABLE IF EXISTS history_seasons;
		DROP TABLE IF EXISTS history_players;`
	if _, err := db.conn.Exec(drop); err != nil {
		return fmt.Errorf("drop archive tables: %w", err)
	}
	if _, err := db.conn.Exec(archiveSchemaSQL); err != nil {
		return fmt.Errorf("recreate archive tables: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
