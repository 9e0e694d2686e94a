package registry

import "github.com/terryburton/munin-plugin-gpsd/internal/errors"

const (
	// Storage errors
	ErrRead   = errors.ErrorCode("registry_read_failed")
	ErrDecode = errors.ErrorCode("registry_decode_failed")
	ErrEncode = errors.ErrorCode("registry_encode_failed")
	ErrWrite  = errors.ErrorCode("registry_write_failed")
	ErrRename = errors.ErrorCode("registry_rename_failed")
)
