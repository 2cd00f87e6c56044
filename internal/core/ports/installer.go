package ports

import (
	"context"

	"go.trai.ch/liner/internal/core/domain"
)

// Installer installs packages at their resolved versions.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// InstallAll installs every entry of set at the version found in targets.
	//
	// Entries are attempted independently; the returned error aggregates
	// every failure. There is no rollback of successful installs.
	InstallAll(ctx context.Context, set domain.InstallSet, targets domain.ResolvedTargets) error
}
