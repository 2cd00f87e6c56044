// Package cargo installs packages by driving `cargo install`.
package cargo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/liner/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Installer implements ports.Installer on top of the cargo binary.
type Installer struct {
	cargo  string
	runner Runner
	logger ports.Logger
}

// NewInstaller creates an Installer invoking cargoBin through runner.
func NewInstaller(cargoBin string, runner Runner, logger ports.Logger) *Installer {
	if cargoBin == "" {
		cargoBin = domain.DefaultCargoBinary
	}
	return &Installer{
		cargo:  cargoBin,
		runner: runner,
		logger: logger,
	}
}

// InstallAll installs every package of set in name order.
func (i *Installer) InstallAll(ctx context.Context, set domain.InstallSet, targets domain.ResolvedTargets) error {
	var errs []error
	for _, name := range set.Names() {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		target, ok := targets[name]
		if !ok || target == nil {
			errs = append(errs, zerr.With(zerr.Wrap(domain.ErrMissingResolution, "install package"), "package", name))
			continue
		}

		i.logger.Info(fmt.Sprintf("Installing %s@%s", name, target))
		if err := i.runner.Run(ctx, i.cargo, Args(name, target.String(), set[name].Options)...); err != nil {
			errs = append(errs, zerr.With(err, "package", name))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	err := zerr.Wrap(errors.Join(errs...), domain.ErrInstallFailed.Error())
	return zerr.With(err, "failed", len(errs))
}

// Args builds the cargo arguments installing name at version with opts.
func Args(name, version string, opts domain.InstallOptions) []string {
	args := []string{"install", "--version", version}
	if len(opts.Features) > 0 {
		args = append(args, "--features", strings.Join(opts.Features, ","))
	}
	if opts.AllFeatures {
		args = append(args, "--all-features")
	}
	if opts.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	return append(args, name)
}
