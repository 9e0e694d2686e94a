package telemetry

import (
	"database/sql"
)

// initSchema initializes the database schema for the snapshot history
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS snapshots (
            timestamp INTEGER PRIMARY KEY,
            mode INTEGER,
            lat REAL,
            lon REAL,
            alt REAL,
            seen INTEGER,
            used INTEGER
        )
    `)
	return err
}
