// Package registry keeps the durable set of satellite identifiers ever
// observed. It only grows: a satellite that drops below the horizon stays
// registered so its munin field keeps existing, reported as unknown.
package registry

import (
	"encoding/json"
	"os"

	"github.com/terryburton/munin-plugin-gpsd/internal/errors"
	"github.com/terryburton/munin-plugin-gpsd/internal/logger"
	"github.com/terryburton/munin-plugin-gpsd/internal/snapshot"
)

const (
	tempSuffix      = ".tmp"
	defaultFilePerm = 0o644
)

// Read loads the identifier set from path. A missing file is an empty
// registry, not an error. An unreadable or undecodable file IS an error:
// callers must be able to tell "no known satellites yet" apart from
// "registry unreadable", because the latter disables registry maintenance
// for the cycle instead of silently resetting the set.
func Read(path string) (snapshot.IDSet, error) {
	errFactory := errors.New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return snapshot.NewIDSet(), nil
		}
		return nil, errFactory.Wrap(ErrRead, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, errFactory.Wrap(ErrDecode, err)
	}

	return snapshot.NewIDSet(ids...), nil
}

// Write persists the identifier set crash-safely: serialize to a
// temporary sibling, then rename over the target. An interrupted write
// leaves the previous registry intact.
func Write(path string, ids snapshot.IDSet) error {
	errFactory := errors.New()

	data, err := json.MarshalIndent(ids.Sorted(), "", "  ")
	if err != nil {
		return errFactory.Wrap(ErrEncode, err)
	}

	tmp := path + tempSuffix
	if err := os.WriteFile(tmp, data, defaultFilePerm); err != nil {
		return errFactory.Wrap(ErrWrite, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errFactory.Wrap(ErrRename, err)
	}

	logger.Debug().Str("path", path).Int("count", len(ids)).Msg("registry persisted")
	return nil
}
