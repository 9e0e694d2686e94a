package collector

import "github.com/terryburton/munin-plugin-gpsd/internal/errors"

const (
	// Collection errors
	ErrTimeout      = errors.ErrorCode("collector_timeout")
	ErrSessionFault = errors.ErrorCode("collector_session_fault")
)
