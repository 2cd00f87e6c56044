// Package syncer computes the packages that must be installed or updated.
package syncer

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/zerr"
)

// Decision explains why a package was included or left alone.
type Decision string

const (
	// DecisionInstall means the package is not installed.
	DecisionInstall Decision = "install"
	// DecisionUpdate means the installed version is older than the target.
	DecisionUpdate Decision = "update"
	// DecisionUpToDate means the installed version equals the target.
	DecisionUpToDate Decision = "up-to-date"
	// DecisionNewer means the installed version is newer than the target and is kept.
	DecisionNewer Decision = "newer"
)

// Synchronize selects the packages of the effective configuration that need an install.
//
// A package is selected when it is absent from installed or its installed
// version is strictly lower than its resolved target. Installed versions newer
// than the target are never downgraded. Every effective package must have a
// target, otherwise domain.ErrMissingResolution is returned.
func Synchronize(
	desired *domain.DesiredConfig,
	resolved domain.ResolvedTargets,
	installed domain.InstalledState,
) (domain.InstallSet, error) {
	set, _, err := Plan(desired, resolved, installed)
	return set, err
}

// Plan is Synchronize that also reports the decision taken for every effective package.
func Plan(
	desired *domain.DesiredConfig,
	resolved domain.ResolvedTargets,
	installed domain.InstalledState,
) (domain.InstallSet, map[string]Decision, error) {
	effective := desired.Effective()
	set := make(domain.InstallSet)
	decisions := make(map[string]Decision, effective.Len())
	if effective.Len() == 0 {
		return set, decisions, nil
	}

	for _, name := range effective.Names() {
		target, ok := resolved[name]
		if !ok || target == nil {
			return nil, nil, zerr.With(zerr.Wrap(domain.ErrMissingResolution, "synchronize packages"), "package", name)
		}

		decision := decide(installed[name], target)
		decisions[name] = decision
		if decision == DecisionInstall || decision == DecisionUpdate {
			set[name] = effective.Packages[name]
		}
	}
	return set, decisions, nil
}

func decide(current, target *semver.Version) Decision {
	if current == nil {
		return DecisionInstall
	}
	switch current.Compare(target) {
	case -1:
		return DecisionUpdate
	case 0:
		return DecisionUpToDate
	default:
		return DecisionNewer
	}
}
