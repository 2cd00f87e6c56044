// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/liner/internal/core/domain"

// ConfigStore persists the desired configuration.
//
//go:generate mockgen -source=config_store.go -destination=mocks/mock_config_store.go -package=mocks
type ConfigStore interface {
	// Exists reports whether a configuration file is present at path.
	Exists(path string) (bool, error)

	// Load reads and decodes the configuration at path.
	Load(path string) (*domain.DesiredConfig, error)

	// Save encodes cfg to path. Unless overwrite is set, an existing file
	// makes Save fail with domain.ErrConfigExists.
	Save(path string, cfg *domain.DesiredConfig, overwrite bool) error
}
