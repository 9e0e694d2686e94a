package gpsd_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terryburton/munin-plugin-gpsd/internal/errors"
	"github.com/terryburton/munin-plugin-gpsd/internal/gpsd"
)

func pipeSession(t *testing.T) (gpsd.Session, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return gpsd.NewFromConn(client), server
}

func TestNextReportDecodesTPV(t *testing.T) {
	sess, server := pipeSession(t)

	go server.Write([]byte(
		`{"class":"VERSION","release":"3.25"}` + "\n" +
			`{"class":"TPV","mode":3,"lat":51.5,"lon":-0.1,"speed":1.2}` + "\n"))

	rep, err := sess.NextReport()
	require.NoError(t, err)

	tpv, ok := rep.(*gpsd.TPV)
	require.True(t, ok, "VERSION must be skipped, TPV returned")
	require.NotNil(t, tpv.Mode)
	assert.Equal(t, 3, *tpv.Mode)
	require.NotNil(t, tpv.Lat)
	assert.Equal(t, 51.5, *tpv.Lat)
	assert.Nil(t, tpv.Alt, "absent field stays nil")
}

func TestNextReportDecodesSKY(t *testing.T) {
	sess, server := pipeSession(t)

	go server.Write([]byte(
		`{"class":"SKY","hdop":1.1,"satellites":[` +
			`{"gnssid":0,"svid":5,"ss":35,"az":120,"el":45,"used":true},` +
			`{"gnssid":6,"svid":3,"ss":28,"used":false}]}` + "\n"))

	rep, err := sess.NextReport()
	require.NoError(t, err)

	sky, ok := rep.(*gpsd.SKY)
	require.True(t, ok)
	require.NotNil(t, sky.Hdop)
	assert.Equal(t, 1.1, *sky.Hdop)
	require.Len(t, sky.Satellites, 2)
	assert.True(t, sky.Satellites[0].Used)
	assert.Equal(t, 5, *sky.Satellites[0].SvID)
	assert.Nil(t, sky.Satellites[1].Az)
}

func TestNextReportSKYWithoutSatelliteList(t *testing.T) {
	sess, server := pipeSession(t)

	go server.Write([]byte(`{"class":"SKY","hdop":1.1}` + "\n"))

	rep, err := sess.NextReport()
	require.NoError(t, err)

	sky, ok := rep.(*gpsd.SKY)
	require.True(t, ok)
	assert.Nil(t, sky.Satellites)
}

func TestNextReportMalformedLineKeepsStreamUsable(t *testing.T) {
	sess, server := pipeSession(t)

	go server.Write([]byte(
		"this is not json\n" +
			`{"class":"TPV","mode":2}` + "\n"))

	_, err := sess.NextReport()
	require.Error(t, err)
	assert.Equal(t, gpsd.ErrMalformedReport, errors.CodeOf(err))

	rep, err := sess.NextReport()
	require.NoError(t, err)
	_, ok := rep.(*gpsd.TPV)
	assert.True(t, ok)
}

func TestNextReportEmptyWindow(t *testing.T) {
	sess, _ := pipeSession(t)

	_, err := sess.NextReport()
	require.Error(t, err)
	assert.Equal(t, gpsd.ErrNoReport, errors.CodeOf(err))
}

func TestNextReportReassemblesPartialLine(t *testing.T) {
	sess, server := pipeSession(t)

	go server.Write([]byte(`{"class":"TPV",`))
	_, err := sess.NextReport()
	require.Error(t, err)
	assert.Equal(t, gpsd.ErrNoReport, errors.CodeOf(err))

	go server.Write([]byte(`"mode":3}` + "\n"))
	rep, err := sess.NextReport()
	require.NoError(t, err)

	tpv, ok := rep.(*gpsd.TPV)
	require.True(t, ok)
	assert.Equal(t, 3, *tpv.Mode)
}

func TestNextReportClosedConnection(t *testing.T) {
	sess, server := pipeSession(t)
	server.Close()

	_, err := sess.NextReport()
	require.Error(t, err)
	assert.Equal(t, gpsd.ErrSessionRead, errors.CodeOf(err))
}
