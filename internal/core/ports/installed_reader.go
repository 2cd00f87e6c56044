package ports

import "go.trai.ch/liner/internal/core/domain"

// InstalledReader reads the record of currently installed packages.
//
//go:generate mockgen -source=installed_reader.go -destination=mocks/mock_installed_reader.go -package=mocks
type InstalledReader interface {
	// Read returns a fresh snapshot of the installed packages.
	// A missing record yields an empty state.
	Read() (domain.InstalledState, error)
}
