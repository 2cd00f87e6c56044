package domain

import (
	"maps"
	"slices"

	"github.com/Masterminds/semver/v3"
)

// InstalledState maps package names to the exact version currently installed.
type InstalledState map[string]*semver.Version

// Names returns the installed package names in lexicographic order.
func (s InstalledState) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// ResolvedTargets maps package names to the version selected from the registry.
type ResolvedTargets map[string]*semver.Version

// InstallSet is the subset of declared packages that need installing or updating.
type InstallSet map[string]Package

// Names returns the package names to install in lexicographic order.
func (s InstallSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
