// Package crates reads Cargo's record of installed crates.
package crates

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/liner/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InstalledReader = (*Reader)(nil)

// recordFile is the shape of .crates.toml. Each key of the v1 table reads
// "<name> <version> (<source>)" and maps to the installed binaries.
type recordFile struct {
	V1 map[string][]string `toml:"v1"`
}

// Reader reads the installed state from a .crates.toml file.
type Reader struct {
	path   string
	logger ports.Logger
}

// NewReader creates a Reader for the record at path.
func NewReader(path string, logger ports.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// Read parses the record into an installed state. A missing record yields an empty state.
func (r *Reader) Read() (domain.InstalledState, error) {
	// #nosec G304 -- path comes from settings
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug("no install record at " + r.path)
		return domain.InstalledState{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInstalledStateReadFailed.Error()), "path", r.path)
	}

	state, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", r.path)
	}
	return state, nil
}

// Parse decodes the contents of a .crates.toml file.
// When a crate is recorded more than once the highest version wins.
func Parse(data []byte) (domain.InstalledState, error) {
	var file recordFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrInstalledStateParseFailed.Error())
	}

	state := make(domain.InstalledState, len(file.V1))
	for key := range file.V1 {
		name, version, err := parseKey(key)
		if err != nil {
			return nil, err
		}
		if current, ok := state[name]; ok && !version.GreaterThan(current) {
			continue
		}
		state[name] = version
	}
	return state, nil
}

// parseKey splits "<name> <version> (<source>)" into its name and version.
func parseKey(key string) (string, *semver.Version, error) {
	fields := strings.Fields(key)
	if len(fields) < 2 {
		return "", nil, zerr.With(zerr.Wrap(domain.ErrInstalledStateParseFailed, "malformed package id"), "id", key)
	}

	version, err := semver.StrictNewVersion(fields[1])
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrInstalledStateParseFailed, err.Error()), "id", key)
		return "", nil, err
	}
	return fields[0], version, nil
}
