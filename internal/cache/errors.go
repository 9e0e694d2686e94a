package cache

import "github.com/terryburton/munin-plugin-gpsd/internal/errors"

const (
	// Storage errors
	ErrRead   = errors.ErrorCode("cache_read_failed")
	ErrDecode = errors.ErrorCode("cache_decode_failed")
	ErrEncode = errors.ErrorCode("cache_encode_failed")
	ErrWrite  = errors.ErrorCode("cache_write_failed")
)
