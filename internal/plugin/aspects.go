// Package plugin renders a snapshot as munin plugin output. One aspect
// per graph; the aspect is selected by the wildcard executable name.
package plugin

import "github.com/terryburton/munin-plugin-gpsd/internal/snapshot"

// Aspect describes one munin graph: either a fixed list of scalar fields
// or one per-satellite metric whose fields follow the visible satellites.
type Aspect struct {
	Name   string
	Title  string
	VLabel string
	Args   string
	Fields []string // scalar aspect
	Metric string   // per-satellite aspect
}

var aspects = []Aspect{
	{
		Name:   "satellites",
		Title:  "GPS satellites",
		VLabel: "satellites",
		Args:   "--base 1000 -l 0",
		Fields: []string{snapshot.FieldSeen, snapshot.FieldUsed},
	},
	{
		Name:   "position",
		Title:  "GPS position",
		VLabel: "degrees / meters",
		Args:   "--base 1000",
		Fields: []string{snapshot.FieldMode, snapshot.FieldLat, snapshot.FieldLon, snapshot.FieldAlt},
	},
	{
		Name:   "motion",
		Title:  "GPS motion",
		VLabel: "m/s / degrees",
		Args:   "--base 1000",
		Fields: []string{snapshot.FieldSpeed, snapshot.FieldClimb, snapshot.FieldTrack},
	},
	{
		Name:   "error",
		Title:  "GPS error estimates",
		VLabel: "estimated error",
		Args:   "--base 1000 -l 0",
		Fields: []string{
			snapshot.FieldEpt, snapshot.FieldEpx, snapshot.FieldEpy,
			snapshot.FieldEpv, snapshot.FieldEpd, snapshot.FieldEps,
			snapshot.FieldEpc,
		},
	},
	{
		Name:   "dop",
		Title:  "GPS dilution of precision",
		VLabel: "dop",
		Args:   "--base 1000 -l 0",
		Fields: []string{
			snapshot.FieldXdop, snapshot.FieldYdop, snapshot.FieldVdop,
			snapshot.FieldHdop, snapshot.FieldGdop, snapshot.FieldTdop,
			snapshot.FieldPdop,
		},
	},
	{
		Name:   "snr",
		Title:  "GPS satellite signal-to-noise",
		VLabel: "dB",
		Args:   "--base 1000 -l 0",
		Metric: snapshot.MetricSNR,
	},
	{
		Name:   "azimuth",
		Title:  "GPS satellite azimuth",
		VLabel: "degrees",
		Args:   "--base 1000 -l 0 -u 360",
		Metric: snapshot.MetricAzimuth,
	},
	{
		Name:   "elevation",
		Title:  "GPS satellite elevation",
		VLabel: "degrees",
		Args:   "--base 1000 -l 0 -u 90",
		Metric: snapshot.MetricElevation,
	},
}

var fieldLabels = map[string]string{
	snapshot.FieldMode:  "Fix mode",
	snapshot.FieldLat:   "Latitude",
	snapshot.FieldLon:   "Longitude",
	snapshot.FieldAlt:   "Altitude",
	snapshot.FieldSpeed: "Speed",
	snapshot.FieldClimb: "Climb rate",
	snapshot.FieldTrack: "Track angle",
	snapshot.FieldEpt:   "Time error",
	snapshot.FieldEpx:   "Longitude error",
	snapshot.FieldEpy:   "Latitude error",
	snapshot.FieldEpv:   "Vertical error",
	snapshot.FieldEpd:   "Track error",
	snapshot.FieldEps:   "Speed error",
	snapshot.FieldEpc:   "Climb error",
	snapshot.FieldXdop:  "Longitudinal dop",
	snapshot.FieldYdop:  "Latitudinal dop",
	snapshot.FieldVdop:  "Vertical dop",
	snapshot.FieldHdop:  "Horizontal dop",
	snapshot.FieldGdop:  "Geometric dop",
	snapshot.FieldTdop:  "Time dop",
	snapshot.FieldPdop:  "Position dop",
	snapshot.FieldSeen:  "Satellites seen",
	snapshot.FieldUsed:  "Satellites used",
}

// Names returns the aspect names in display order.
func Names() []string {
	names := make([]string, len(aspects))
	for i := range aspects {
		names[i] = aspects[i].Name
	}
	return names
}

// Lookup returns the aspect with the given name.
func Lookup(name string) (Aspect, bool) {
	for _, a := range aspects {
		if a.Name == name {
			return a, true
		}
	}
	return Aspect{}, false
}
