package telemetry

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/terryburton/munin-plugin-gpsd/internal/errors"
	"github.com/terryburton/munin-plugin-gpsd/internal/logger"
	"github.com/terryburton/munin-plugin-gpsd/internal/snapshot"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRecorder(cfg Config) (Recorder, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	logger.Debug().Str("path", cfg.DBPath).Msg("initializing snapshot history")

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &sqliteRecorder{
		db: db,
	}, nil
}

func (r *sqliteRecorder) Record(ctx context.Context, ts time.Time, snap *snapshot.Snapshot) error {
	errFactory := errors.New()

	if snap == nil {
		return errFactory.New(ErrInvalidSnapshot)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO snapshots (
            timestamp, mode, lat, lon, alt, seen, used
        ) VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(timestamp) DO UPDATE SET
            mode = excluded.mode,
            lat = excluded.lat,
            lon = excluded.lon,
            alt = excluded.alt,
            seen = excluded.seen,
            used = excluded.used
    `,
		ts.Unix(),
		nullable(snap, snapshot.FieldMode),
		nullable(snap, snapshot.FieldLat),
		nullable(snap, snapshot.FieldLon),
		nullable(snap, snapshot.FieldAlt),
		nullable(snap, snapshot.FieldSeen),
		nullable(snap, snapshot.FieldUsed),
	)
	if err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRecorder) Close() error {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}
	return nil
}

// nullable maps an absent scalar to SQL NULL rather than zero.
func nullable(snap *snapshot.Snapshot, field string) any {
	if v, ok := snap.Scalar(field); ok {
		return v
	}
	return nil
}
