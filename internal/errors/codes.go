package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrUnavailable     ErrorCode = "snapshot_unavailable"

	// Configuration errors
	ErrInvalidConfig  ErrorCode = "invalid_configuration"
	ErrMissingConfig  ErrorCode = "missing_configuration"
	ErrBindFlags      ErrorCode = "bind_flags_failed"
	ErrInvalidTimeout ErrorCode = "invalid_timeout"

	// Presentation errors
	ErrUnknownAspect ErrorCode = "unknown_aspect"
	ErrOutputWrite   ErrorCode = "output_write_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:        "Internal error occurred",
	ErrInvalidArgument: "Invalid argument provided",
	ErrUnavailable:     "No snapshot available",
	ErrInvalidConfig:   "Invalid configuration",
	ErrMissingConfig:   "Missing configuration",
	ErrBindFlags:       "Failed to bind flags",
	ErrInvalidTimeout:  "Invalid timeout value",
	ErrUnknownAspect:   "Unknown plugin aspect",
	ErrOutputWrite:     "Failed to write plugin output",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
