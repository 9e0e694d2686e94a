package snapshot

import (
	"encoding/json"
	"sort"
)

// Scalar field names. Names double as munin fieldnames, so they stay
// lowercase alphanumeric.
const (
	FieldMode  = "mode"
	FieldLat   = "lat"
	FieldLon   = "lon"
	FieldAlt   = "alt"
	FieldTrack = "track"
	FieldSpeed = "speed"
	FieldClimb = "climb"
	FieldEpt   = "ept"
	FieldEpx   = "epx"
	FieldEpy   = "epy"
	FieldEpv   = "epv"
	FieldEpd   = "epd"
	FieldEps   = "eps"
	FieldEpc   = "epc"

	FieldXdop = "xdop"
	FieldYdop = "ydop"
	FieldVdop = "vdop"
	FieldHdop = "hdop"
	FieldGdop = "gdop"
	FieldTdop = "tdop"
	FieldPdop = "pdop"
	FieldSeen = "seen"
	FieldUsed = "used"
)

// Per-satellite metric names.
const (
	MetricSNR       = "snr"
	MetricAzimuth   = "azimuth"
	MetricElevation = "elevation"
)

// PositionFields lists every scalar carried by a position report.
var PositionFields = []string{
	FieldMode, FieldLat, FieldLon, FieldAlt, FieldTrack, FieldSpeed,
	FieldClimb, FieldEpt, FieldEpx, FieldEpy, FieldEpv, FieldEpd,
	FieldEps, FieldEpc,
}

// SkyFields lists every scalar carried by a sky report.
var SkyFields = []string{
	FieldXdop, FieldYdop, FieldVdop, FieldHdop, FieldGdop, FieldTdop,
	FieldPdop, FieldSeen, FieldUsed,
}

// SatelliteMetrics lists the per-satellite metric names.
var SatelliteMetrics = []string{MetricSNR, MetricAzimuth, MetricElevation}

// Reading is a single per-satellite measurement: either a known numeric
// value or an explicit unknown marker (rendered as munin "U").
type Reading struct {
	Known bool
	Value float64
}

// Unknown returns the explicit unknown marker.
func Unknown() Reading {
	return Reading{}
}

// Of returns a known reading carrying v.
func Of(v float64) Reading {
	return Reading{Known: true, Value: v}
}

// MarshalJSON encodes a known reading as its number and an unknown one as null.
func (r Reading) MarshalJSON() ([]byte, error) {
	if !r.Known {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

func (r *Reading) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Reading{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = Reading{Known: true, Value: v}
	return nil
}

// Snapshot is one consistent point-in-time view of the receiver: scalar
// navigation fields merged from a position report and a sky report, plus
// per-satellite measurements keyed by metric name then satellite identifier.
// A field absent from the source report is absent from Scalars, never zero.
type Snapshot struct {
	Scalars    map[string]float64            `json:"scalars"`
	Satellites map[string]map[string]Reading `json:"satellites"`
}

// New returns an empty snapshot with both maps allocated.
func New() *Snapshot {
	return &Snapshot{
		Scalars:    make(map[string]float64),
		Satellites: make(map[string]map[string]Reading),
	}
}

// SetScalar records a scalar field value.
func (s *Snapshot) SetScalar(field string, v float64) {
	s.Scalars[field] = v
}

// Scalar returns a scalar field value and whether it is present.
func (s *Snapshot) Scalar(field string) (float64, bool) {
	v, ok := s.Scalars[field]
	return v, ok
}

// SetReading records a per-satellite measurement.
func (s *Snapshot) SetReading(metric, id string, r Reading) {
	m, ok := s.Satellites[metric]
	if !ok {
		m = make(map[string]Reading)
		s.Satellites[metric] = m
	}
	m[id] = r
}

// SatelliteIDs returns the sorted union of satellite identifiers present
// in any per-satellite metric.
func (s *Snapshot) SatelliteIDs() []string {
	set := make(map[string]struct{})
	for _, m := range s.Satellites {
		for id := range m {
			set[id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
