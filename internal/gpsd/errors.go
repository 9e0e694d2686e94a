package gpsd

import "github.com/terryburton/munin-plugin-gpsd/internal/errors"

const (
	// Session errors
	ErrSessionOpen   = errors.ErrorCode("gpsd_session_open_failed")
	ErrSessionRead   = errors.ErrorCode("gpsd_session_read_failed")
	ErrSessionClosed = errors.ErrorCode("gpsd_session_closed")

	// Stream errors
	ErrNoReport        = errors.ErrorCode("gpsd_no_report")
	ErrMalformedReport = errors.ErrorCode("gpsd_malformed_report")
)
