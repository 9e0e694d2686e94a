package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terryburton/munin-plugin-gpsd/internal/cache"
	"github.com/terryburton/munin-plugin-gpsd/internal/logger"
	"github.com/terryburton/munin-plugin-gpsd/internal/snapshot"
)

func TestMain(m *testing.M) {
	logger.Init(false, false)
	os.Exit(m.Run())
}

func sampleSnapshot() *snapshot.Snapshot {
	snap := snapshot.New()
	snap.SetScalar(snapshot.FieldMode, 3)
	snap.SetScalar(snapshot.FieldLat, 51.5)
	snap.SetScalar(snapshot.FieldSeen, 2)
	snap.SetReading(snapshot.MetricSNR, "GP 5", snapshot.Of(35))
	snap.SetReading(snapshot.MetricSNR, "GP 12", snapshot.Unknown())
	return snap
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	require.NoError(t, cache.Write(path, sampleSnapshot()))

	got := cache.Read(path)
	require.NotNil(t, got)

	lat, ok := got.Scalar(snapshot.FieldLat)
	require.True(t, ok)
	assert.Equal(t, 51.5, lat)

	snr := got.Satellites[snapshot.MetricSNR]
	assert.Equal(t, snapshot.Of(35), snr["GP 5"])
	assert.False(t, snr["GP 12"].Known, "unknown marker must survive the round trip")
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	assert.Nil(t, cache.Read(path))
}

func TestReadFreshnessBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, cache.Write(path, sampleSnapshot()))

	// 59s old: still served.
	require.NoError(t, os.Chtimes(path, time.Now(), time.Now().Add(-59*time.Second)))
	assert.NotNil(t, cache.Read(path), "entry inside the freshness window must be served")

	// 61s old: treated as absent.
	require.NoError(t, os.Chtimes(path, time.Now(), time.Now().Add(-61*time.Second)))
	assert.Nil(t, cache.Read(path), "entry past the freshness window must be absent")
}

func TestReadCorruptEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("not json{"), 0o644))

	assert.Nil(t, cache.Read(path), "undecodable entry is absent, not fatal")
}

func TestWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "snapshot.json")
	assert.Error(t, cache.Write(path, sampleSnapshot()))
}
