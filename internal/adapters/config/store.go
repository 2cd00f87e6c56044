// Package config implements the desired configuration store backed by YAML files.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"go.trai.ch/liner/internal/adapters/fs"
	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/liner/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigStore = (*Store)(nil)

// Store reads and writes liner.yaml files.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new configuration store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Exists reports whether a configuration file is present at path.
func (s *Store) Exists(path string) (bool, error) {
	ok, err := fs.Exists(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	return ok, nil
}

// Load reads and decodes the configuration at path.
func (s *Store) Load(path string) (*domain.DesiredConfig, error) {
	var file File
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg := file.toDomain()
	s.logger.Debug("loaded " + path)
	return cfg, nil
}

// Save encodes cfg to path, replacing the file atomically.
func (s *Store) Save(path string, cfg *domain.DesiredConfig, overwrite bool) error {
	if !overwrite {
		exists, err := s.Exists(path)
		if err != nil {
			return err
		}
		if exists {
			return zerr.With(zerr.Wrap(domain.ErrConfigExists, "refusing to overwrite"), "path", path)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	if err := fs.WriteFileAtomic(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	s.logger.Debug("wrote " + path)
	return nil
}

// Marshal encodes cfg as YAML with packages in lexicographic order.
func Marshal(cfg *domain.DesiredConfig) ([]byte, error) {
	doc, err := encodeNode(cfg)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into a desired configuration.
func Unmarshal(data []byte) (*domain.DesiredConfig, error) {
	var file File
	if err := decodeStrict(data, &file); err != nil {
		return nil, err
	}
	return file.toDomain(), nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	return decodeStrict(configFile, target)
}

// decodeStrict unmarshals YAML rejecting unknown top-level keys. An empty document is allowed.
func decodeStrict[T any](data []byte, target *T) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
