// Package cache persists the most recently completed snapshot between
// plugin invocations. The daemon's report cadence and munin's short
// plugin lifetime do not line up, so back-to-back aspect polls reuse one
// collection cycle instead of each opening their own session.
package cache

import (
	"encoding/json"
	"os"
	"time"

	"github.com/terryburton/munin-plugin-gpsd/internal/errors"
	"github.com/terryburton/munin-plugin-gpsd/internal/logger"
	"github.com/terryburton/munin-plugin-gpsd/internal/snapshot"
)

// FreshnessWindow is the maximum age at which a cached snapshot is still
// served. The file's own modification time is the freshness timestamp.
const FreshnessWindow = 60 * time.Second

const defaultFilePerm = 0o644

// Read returns the cached snapshot, or nil when no usable entry exists:
// missing file, entry older than the freshness window, or undecodable
// content. Every miss cause is logged and absorbed here; staleness and
// corruption are never surfaced as errors.
func Read(path string) *snapshot.Snapshot {
	errFactory := errors.New()

	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug().Err(err).Str("path", path).Msg("cache unreadable")
		}
		return nil
	}

	age := time.Since(info.ModTime())
	if age > FreshnessWindow {
		logger.Debug().
			Str("path", path).
			Dur("age", age).
			Msg("cached snapshot too old")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(errFactory.Wrap(ErrRead, err)).Str("path", path).Msg("cache unreadable")
		return nil
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn().Err(errFactory.Wrap(ErrDecode, err)).Str("path", path).Msg("discarding undecodable cache entry")
		return nil
	}

	logger.Debug().Str("path", path).Dur("age", age).Msg("cache hit")
	return &snap
}

// Write serializes snap to path. Callers treat a failure as a lost
// optimization, not a failed collection.
func Write(path string, snap *snapshot.Snapshot) error {
	errFactory := errors.New()

	data, err := json.Marshal(snap)
	if err != nil {
		return errFactory.Wrap(ErrEncode, err)
	}

	if err := os.WriteFile(path, data, defaultFilePerm); err != nil {
		return errFactory.Wrap(ErrWrite, err)
	}

	return nil
}
