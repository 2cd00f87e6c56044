package domain

import "slices"

// SelfPackageName is the crate name of this tool, updated through the self-update toggle.
const SelfPackageName = "cargo-liner"

// InstallOptions are installer flags carried with a package.
// The synchronization engine passes them through untouched.
type InstallOptions struct {
	// Features lists the crate features to enable.
	Features []string

	// AllFeatures enables every feature of the crate.
	AllFeatures bool

	// NoDefaultFeatures disables the crate's default features.
	NoDefaultFeatures bool
}

// IsZero reports whether no option is set.
func (o InstallOptions) IsZero() bool {
	return len(o.Features) == 0 && !o.AllFeatures && !o.NoDefaultFeatures
}

// Clone returns a deep copy of the options.
func (o InstallOptions) Clone() InstallOptions {
	o.Features = slices.Clone(o.Features)
	return o
}

// Package is a declared package: a version intent plus installer options.
// Its name is the key of the owning map.
type Package struct {
	Intent  VersionIntent
	Options InstallOptions
}

// NewPackage returns a package with the given intent and no options.
func NewPackage(intent VersionIntent) Package {
	return Package{Intent: intent}
}
