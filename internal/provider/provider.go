// Package provider orchestrates snapshot acquisition: serve from the
// cache when fresh, otherwise collect from the daemon, then fold the
// result back into the durable state. Every failure inside collapses to
// one outcome for the caller: no snapshot this cycle.
package provider

import (
	"context"
	"time"

	"github.com/terryburton/munin-plugin-gpsd/internal/cache"
	"github.com/terryburton/munin-plugin-gpsd/internal/collector"
	"github.com/terryburton/munin-plugin-gpsd/internal/errors"
	"github.com/terryburton/munin-plugin-gpsd/internal/logger"
	"github.com/terryburton/munin-plugin-gpsd/internal/registry"
	"github.com/terryburton/munin-plugin-gpsd/internal/snapshot"
	"github.com/terryburton/munin-plugin-gpsd/internal/telemetry"
)

// Config carries the acquisition settings. An empty CachePath or
// RegistryPath disables that file entirely; acquisition still works, it
// is simply uncached respectively unseeded across invocations.
type Config struct {
	Timeout      time.Duration
	CachePath    string
	RegistryPath string
}

func (c Config) Validate() error {
	errFactory := errors.New()
	if c.Timeout <= 0 {
		return errFactory.New(errors.ErrInvalidTimeout)
	}
	return nil
}

// Provider is the single contract this core owes its caller: a completed
// snapshot or nothing. Callers never branch on the failure reason.
type Provider interface {
	GetSnapshot() (*snapshot.Snapshot, error)
}

type service struct {
	cfg     Config
	coll    collector.Collector
	history telemetry.Recorder // nil when history is disabled
}

func New(cfg Config, coll collector.Collector, history telemetry.Recorder) (Provider, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	return &service{
		cfg:     cfg,
		coll:    coll,
		history: history,
	}, nil
}

func (s *service) GetSnapshot() (*snapshot.Snapshot, error) {
	errFactory := errors.New()

	// The cache already reflects a previously registry-merged state, so a
	// hit touches neither file.
	if s.cfg.CachePath != "" {
		if snap := cache.Read(s.cfg.CachePath); snap != nil {
			return snap, nil
		}
	}

	known := snapshot.NewIDSet()
	registryUsable := false
	if s.cfg.RegistryPath != "" {
		set, err := registry.Read(s.cfg.RegistryPath)
		if err != nil {
			// Collection still runs, but with pre-seeding and merge-back
			// disabled for this cycle. Resetting the set here would
			// silently destroy the accumulated identifiers.
			logger.Warn().Err(err).
				Str("path", s.cfg.RegistryPath).
				Msg("registry unavailable; pre-seeding disabled this cycle")
		} else {
			known = set
			registryUsable = true
		}
	}

	snap, err := s.coll.Collect(known, s.cfg.Timeout)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrUnavailable, err)
	}

	if registryUsable {
		if known.Merge(snap.SatelliteIDs()) {
			if err := registry.Write(s.cfg.RegistryPath, known); err != nil {
				logger.Warn().Err(err).Msg("failed to persist registry")
			}
		}
	}

	if s.cfg.CachePath != "" {
		if err := cache.Write(s.cfg.CachePath, snap); err != nil {
			logger.Warn().Err(err).Msg("failed to persist snapshot cache")
		}
	}

	if s.history != nil {
		if err := s.history.Record(context.Background(), time.Now(), snap); err != nil {
			logger.Warn().Err(err).Msg("failed to record snapshot history")
		}
	}

	return snap, nil
}
