package ports

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

// Registry queries the package registry.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Versions returns the published, non-yanked versions of the named package.
	// It returns domain.ErrPackageNotFound when the registry does not know the name.
	Versions(ctx context.Context, name string) ([]*semver.Version, error)
}
