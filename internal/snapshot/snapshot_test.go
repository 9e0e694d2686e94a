package snapshot_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terryburton/munin-plugin-gpsd/internal/snapshot"
)

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "GP 5", snapshot.Identifier(0, 5))
	assert.Equal(t, "SB 133", snapshot.Identifier(1, 133))
	assert.Equal(t, "GA 12", snapshot.Identifier(2, 12))
	assert.Equal(t, "BD 20", snapshot.Identifier(3, 20))
	assert.Equal(t, "IM 1", snapshot.Identifier(4, 1))
	assert.Equal(t, "QZ 2", snapshot.Identifier(5, 2))
	assert.Equal(t, "GL 3", snapshot.Identifier(6, 3))
}

func TestIdentifierUnknownConstellation(t *testing.T) {
	assert.Equal(t, "unknown 7", snapshot.Identifier(42, 7))
	assert.Equal(t, "unknown 1", snapshot.Identifier(-1, 1))
}

func TestIDSetMerge(t *testing.T) {
	set := snapshot.NewIDSet("GP 5")

	assert.True(t, set.Merge([]string{"GP 5", "GL 3"}), "a new identifier grows the set")
	assert.False(t, set.Merge([]string{"GP 5", "GL 3"}), "merging known identifiers does not")
	assert.Equal(t, []string{"GL 3", "GP 5"}, set.Sorted())
}

func TestReadingJSON(t *testing.T) {
	known, err := json.Marshal(snapshot.Of(35))
	require.NoError(t, err)
	assert.Equal(t, "35", string(known))

	unknown, err := json.Marshal(snapshot.Unknown())
	require.NoError(t, err)
	assert.Equal(t, "null", string(unknown))

	var r snapshot.Reading
	require.NoError(t, json.Unmarshal([]byte("null"), &r))
	assert.False(t, r.Known)
	require.NoError(t, json.Unmarshal([]byte("28.5"), &r))
	assert.Equal(t, snapshot.Of(28.5), r)
}

func TestSatelliteIDs(t *testing.T) {
	snap := snapshot.New()
	snap.SetReading(snapshot.MetricSNR, "GP 5", snapshot.Of(35))
	snap.SetReading(snapshot.MetricAzimuth, "GL 3", snapshot.Of(120))
	snap.SetReading(snapshot.MetricElevation, "GP 5", snapshot.Unknown())

	assert.Equal(t, []string{"GL 3", "GP 5"}, snap.SatelliteIDs())
}
