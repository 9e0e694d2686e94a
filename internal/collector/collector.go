// Package collector assembles one consistent snapshot from the
// location-service report stream. A snapshot exists only once a position
// report and a usable sky report have both been consumed; anything less
// is a timeout, never a partial result.
package collector

import (
	"time"

	"github.com/terryburton/munin-plugin-gpsd/internal/errors"
	"github.com/terryburton/munin-plugin-gpsd/internal/gpsd"
	"github.com/terryburton/munin-plugin-gpsd/internal/logger"
	"github.com/terryburton/munin-plugin-gpsd/internal/snapshot"
)

// pollInterval is the pause between read attempts. The daemon emits one
// report cycle per second, so polling any faster just spins.
const pollInterval = 200 * time.Millisecond

// Collector defines the core domain interface
type Collector interface {
	// Collect assembles a snapshot within timeout. known pre-seeds the
	// per-satellite fields so previously seen satellites stay in the
	// field set as explicit unknowns.
	Collect(known snapshot.IDSet, timeout time.Duration) (*snapshot.Snapshot, error)
}

// mergeState tracks which of the two report categories are still owed.
// Modeled as an explicit state machine so the all-or-nothing merge
// invariant is visible in the transitions rather than in flag checks.
type mergeState int

const (
	needBoth mergeState = iota
	needSky
	needPosition
	merged
)

type service struct {
	dial gpsd.Dialer
}

func New(dial gpsd.Dialer) Collector {
	return &service{dial: dial}
}

func (s *service) Collect(known snapshot.IDSet, timeout time.Duration) (*snapshot.Snapshot, error) {
	errFactory := errors.New()

	sess, err := s.dial()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to open session")
		return nil, errFactory.Wrap(ErrSessionFault, err)
	}
	defer sess.Close()

	snap := snapshot.New()
	state := needBoth
	deadline := time.Now().Add(timeout)

	for state != merged {
		if !time.Now().Before(deadline) {
			logger.Info().
				Dur("timeout", timeout).
				Msg("collection deadline exceeded before both report categories arrived")
			return nil, errFactory.New(ErrTimeout)
		}

		rep, err := sess.NextReport()
		if err != nil {
			switch errors.CodeOf(err) {
			case gpsd.ErrNoReport:
				time.Sleep(pollInterval)
			case gpsd.ErrMalformedReport:
				logger.Debug().Err(err).Msg("skipping malformed report")
			default:
				// A dropped connection ends this attempt; the provider
				// treats it the same as a timeout.
				logger.Warn().Err(err).Msg("session fault during collection")
				return nil, errFactory.Wrap(ErrSessionFault, err)
			}
			continue
		}

		state = apply(state, rep, snap, known)
	}

	return snap, nil
}

func apply(state mergeState, rep gpsd.Report, snap *snapshot.Snapshot, known snapshot.IDSet) mergeState {
	switch r := rep.(type) {
	case *gpsd.TPV:
		applyPosition(snap, r)
		switch state {
		case needBoth:
			return needSky
		case needPosition:
			return merged
		}
	case *gpsd.SKY:
		if r.Satellites == nil {
			// No satellite list, nothing to merge yet.
			return state
		}
		applySky(snap, r, known)
		switch state {
		case needBoth:
			return needPosition
		case needSky:
			return merged
		}
	}
	return state
}

// applyPosition records every scalar the position report carries. Absent
// fields stay absent; they are never defaulted to zero.
func applyPosition(snap *snapshot.Snapshot, r *gpsd.TPV) {
	if r.Mode != nil {
		snap.SetScalar(snapshot.FieldMode, float64(*r.Mode))
	}

	scalars := []struct {
		field string
		value *float64
	}{
		{snapshot.FieldLat, r.Lat},
		{snapshot.FieldLon, r.Lon},
		{snapshot.FieldAlt, r.Alt},
		{snapshot.FieldTrack, r.Track},
		{snapshot.FieldSpeed, r.Speed},
		{snapshot.FieldClimb, r.Climb},
		{snapshot.FieldEpt, r.Ept},
		{snapshot.FieldEpx, r.Epx},
		{snapshot.FieldEpy, r.Epy},
		{snapshot.FieldEpv, r.Epv},
		{snapshot.FieldEpd, r.Epd},
		{snapshot.FieldEps, r.Eps},
		{snapshot.FieldEpc, r.Epc},
	}
	for _, sc := range scalars {
		if sc.value != nil {
			snap.SetScalar(sc.field, *sc.value)
		}
	}
}

func applySky(snap *snapshot.Snapshot, r *gpsd.SKY, known snapshot.IDSet) {
	dops := []struct {
		field string
		value *float64
	}{
		{snapshot.FieldXdop, r.Xdop},
		{snapshot.FieldYdop, r.Ydop},
		{snapshot.FieldVdop, r.Vdop},
		{snapshot.FieldHdop, r.Hdop},
		{snapshot.FieldGdop, r.Gdop},
		{snapshot.FieldTdop, r.Tdop},
		{snapshot.FieldPdop, r.Pdop},
	}
	for _, sc := range dops {
		if sc.value != nil {
			snap.SetScalar(sc.field, *sc.value)
		}
	}

	snap.SetScalar(snapshot.FieldSeen, 0)
	snap.SetScalar(snapshot.FieldUsed, 0)

	// Pre-seed every previously seen satellite as unknown so the field
	// set stays stable across polls even as satellites drop out of view.
	for id := range known {
		for _, metric := range snapshot.SatelliteMetrics {
			snap.SetReading(metric, id, snapshot.Unknown())
		}
	}

	seen, used := 0, 0
	for i := range r.Satellites {
		sat := &r.Satellites[i]
		seen++
		if sat.Used {
			used++
		}

		if sat.GnssID == nil || sat.SvID == nil {
			continue
		}
		id := snapshot.Identifier(*sat.GnssID, *sat.SvID)

		snap.SetReading(snapshot.MetricSNR, id, reading(sat.SS))
		snap.SetReading(snapshot.MetricAzimuth, id, reading(sat.Az))
		snap.SetReading(snapshot.MetricElevation, id, reading(sat.El))
	}

	snap.SetScalar(snapshot.FieldSeen, float64(seen))
	snap.SetScalar(snapshot.FieldUsed, float64(used))
}

// reading converts an optional wire value into a per-satellite reading.
// The daemon reports sentinel values at or below zero for measurements it
// does not actually have.
func reading(v *float64) snapshot.Reading {
	if v == nil || *v <= 0 {
		return snapshot.Unknown()
	}
	return snapshot.Of(*v)
}
