// Package resolver resolves declared packages to concrete target versions.
package resolver

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/liner/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver queries the registry once per declared package and selects each target version.
type Resolver struct {
	registry ports.Registry
	logger   ports.Logger
	jobs     int
}

// New creates a Resolver. A jobs value below one defaults to the number of CPUs.
func New(registry ports.Registry, logger ports.Logger, jobs int) *Resolver {
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}
	return &Resolver{
		registry: registry,
		logger:   logger,
		jobs:     jobs,
	}
}

// Resolve returns the target version of every package in the effective configuration.
//
// Queries run concurrently, bounded by the configured job count, and are
// fully collected before returning. The first failing package cancels the
// remaining queries and fails the whole batch.
func (r *Resolver) Resolve(ctx context.Context, desired *domain.DesiredConfig) (domain.ResolvedTargets, error) {
	effective := desired.Effective()
	targets := make(domain.ResolvedTargets, effective.Len())
	if effective.Len() == 0 {
		return targets, nil
	}

	var mu sync.Mutex
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for _, name := range effective.Names() {
		pkg := effective.Packages[name]
		g.Go(func() error {
			candidates, err := r.registry.Versions(groupCtx, name)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrResolutionFailed.Error()), "package", name)
			}

			target, err := pkg.Intent.Resolve(candidates)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrResolutionFailed.Error()), "package", name)
			}
			r.logger.Debug(fmt.Sprintf("resolved %s %s to %s", name, pkg.Intent, target))

			mu.Lock()
			targets[name] = target
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return targets, nil
}
