package telemetry

import (
	"context"
	"time"

	"github.com/terryburton/munin-plugin-gpsd/internal/snapshot"
)

// Recorder appends freshly collected snapshots to a durable history.
// Recording is best-effort: the provider logs and swallows failures so
// history never affects whether a snapshot is returned.
type Recorder interface {
	Record(ctx context.Context, ts time.Time, snap *snapshot.Snapshot) error
	Close() error
}
