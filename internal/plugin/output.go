package plugin

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/terryburton/munin-plugin-gpsd/internal/snapshot"
)

// unknownValue is munin's marker for a value the plugin cannot provide.
const unknownValue = "U"

// WriteConfig emits the munin configuration block for the aspect. The
// snapshot supplies the field set of per-satellite aspects; with the
// registry in play it includes previously seen satellites, so the graph
// keeps its fields as satellites come and go.
func (a Aspect) WriteConfig(w io.Writer, snap *snapshot.Snapshot) {
	fmt.Fprintf(w, "graph_title %s\n", a.Title)
	fmt.Fprintf(w, "graph_vlabel %s\n", a.VLabel)
	fmt.Fprintf(w, "graph_args %s\n", a.Args)
	fmt.Fprintf(w, "graph_category gps\n")

	if a.Metric != "" {
		for _, id := range satelliteIDs(snap, a.Metric) {
			fmt.Fprintf(w, "%s.label %s\n", Fieldname(id), id)
		}
		return
	}

	for _, field := range a.Fields {
		fmt.Fprintf(w, "%s.label %s\n", field, fieldLabels[field])
	}
}

// WriteValues emits the munin fetch block for the aspect. Absent scalars
// and unknown readings both render as U.
func (a Aspect) WriteValues(w io.Writer, snap *snapshot.Snapshot) {
	if a.Metric != "" {
		readings := snap.Satellites[a.Metric]
		for _, id := range satelliteIDs(snap, a.Metric) {
			fmt.Fprintf(w, "%s.value %s\n", Fieldname(id), formatReading(readings[id]))
		}
		return
	}

	for _, field := range a.Fields {
		if v, ok := snap.Scalar(field); ok {
			fmt.Fprintf(w, "%s.value %s\n", field, formatValue(v))
		} else {
			fmt.Fprintf(w, "%s.value %s\n", field, unknownValue)
		}
	}
}

// Fieldname sanitizes a satellite identifier into a munin fieldname:
// everything outside [A-Za-z0-9_] becomes an underscore ("GP 5" -> "GP_5").
func Fieldname(id string) string {
	out := []byte(id)
	for i, c := range out {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

func satelliteIDs(snap *snapshot.Snapshot, metric string) []string {
	ids := make([]string, 0, len(snap.Satellites[metric]))
	for id := range snap.Satellites[metric] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func formatReading(r snapshot.Reading) string {
	if !r.Known {
		return unknownValue
	}
	return formatValue(r.Value)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
