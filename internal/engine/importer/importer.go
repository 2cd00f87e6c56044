// Package importer turns an installed-package record into a desired configuration.
package importer

import (
	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/zerr"
)

// Import builds a configuration declaring every installed package under the given policy.
//
// Each installed version becomes the base of an intent of kind mode. The tool's
// own package is dropped unless keepSelf is set. Both toggles of the result are
// enabled and the registry is never consulted.
func Import(mode domain.IntentKind, keepSelf bool, installed domain.InstalledState) (*domain.DesiredConfig, error) {
	if !mode.Valid() {
		return nil, zerr.With(zerr.Wrap(domain.ErrConflictingImportMode, "import installed packages"), "mode", mode.String())
	}

	cfg := domain.NewDesiredConfig()
	for _, name := range installed.Names() {
		if name == domain.SelfPackageName && !keepSelf {
			continue
		}

		version := installed[name]
		if version == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInstalledStateParseFailed, "missing installed version"), "package", name)
		}

		intent, err := domain.NewIntent(mode, version)
		if err != nil {
			return nil, err
		}
		cfg.Packages[name] = domain.NewPackage(intent)
	}
	return cfg, nil
}
