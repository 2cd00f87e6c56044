// Package app implements the application layer for liner.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/liner/internal/core/ports"
	"go.trai.ch/liner/internal/engine/importer"
	"go.trai.ch/liner/internal/engine/syncer"
	"go.trai.ch/zerr"
)

// TargetResolver selects the target version of every effective package.
type TargetResolver interface {
	Resolve(ctx context.Context, desired *domain.DesiredConfig) (domain.ResolvedTargets, error)
}

// App represents the main application logic.
type App struct {
	store         ports.ConfigStore
	installed     ports.InstalledReader
	resolver      TargetResolver
	installer     ports.Installer
	logger        ports.Logger
	defaultConfig string
}

// New creates a new App instance. defaultConfig is used when an operation
// does not name a configuration path.
func New(
	store ports.ConfigStore,
	installed ports.InstalledReader,
	resolver TargetResolver,
	installer ports.Installer,
	log ports.Logger,
	defaultConfig string,
) *App {
	return &App{
		store:         store,
		installed:     installed,
		resolver:      resolver,
		installer:     installer,
		logger:        log,
		defaultConfig: defaultConfig,
	}
}

// ImportOptions configuration for the Import method.
type ImportOptions struct {
	Mode       domain.IntentKind
	KeepSelf   bool
	Force      bool
	ConfigPath string
}

// SyncOptions configuration for the Sync method.
type SyncOptions struct {
	NoSelf     bool
	OnlySelf   bool
	ConfigPath string
}

func (a *App) configPath(override string) string {
	if override != "" {
		return override
	}
	return a.defaultConfig
}

// Import writes a configuration declaring every installed package.
func (a *App) Import(_ context.Context, opts ImportOptions) error {
	path := a.configPath(opts.ConfigPath)

	exists, err := a.store.Exists(path)
	if err != nil {
		return err
	}
	if exists && !opts.Force {
		return zerr.With(zerr.Wrap(domain.ErrConfigExists, "use --force to overwrite"), "path", path)
	}

	installed, err := a.installed.Read()
	if err != nil {
		return zerr.Wrap(err, "failed to read installed packages")
	}

	cfg, err := importer.Import(opts.Mode, opts.KeepSelf, installed)
	if err != nil {
		return err
	}

	if exists {
		a.logger.Warn("Overwriting existing configuration at " + path)
	}
	if err := a.store.Save(path, cfg, opts.Force); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Imported %d packages into %s", cfg.Len(), path))
	return nil
}

// Sync installs or updates every configured package whose target is ahead of the installed version.
func (a *App) Sync(ctx context.Context, opts SyncOptions) error {
	path := a.configPath(opts.ConfigPath)

	cfg, err := a.store.Load(path)
	if err != nil {
		return err
	}
	cfg = cfg.WithToggles(opts.NoSelf, opts.OnlySelf)

	a.logger.Debug(fmt.Sprintf("Resolving %d packages", cfg.Effective().Len()))
	targets, err := a.resolver.Resolve(ctx, cfg)
	if err != nil {
		return err
	}

	// Read after resolving so the local state is as fresh as possible.
	installed, err := a.installed.Read()
	if err != nil {
		return zerr.Wrap(err, "failed to read installed packages")
	}

	set, decisions, err := syncer.Plan(cfg, targets, installed)
	if err != nil {
		return err
	}
	for _, name := range cfg.Effective().Names() {
		a.logger.Debug(fmt.Sprintf("%s: %s (target %s)", name, decisions[name], targets[name]))
	}

	if len(set) == 0 {
		a.logger.Info("All packages are up to date.")
	} else if err := a.installer.InstallAll(ctx, set, targets); err != nil {
		return err
	}

	a.logger.Info("Done.")
	return nil
}
