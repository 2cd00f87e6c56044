package domain

import (
	"maps"
	"slices"
)

// DesiredConfig is the declared set of packages along with the update toggles.
type DesiredConfig struct {
	// Packages maps case-sensitive package names to their declarations.
	Packages map[string]Package

	// SelfUpdate controls whether the tool updates its own package.
	SelfUpdate bool

	// UpdateOthers controls whether packages other than the tool itself are updated.
	UpdateOthers bool
}

// NewDesiredConfig returns an empty configuration with both toggles enabled.
func NewDesiredConfig() *DesiredConfig {
	return &DesiredConfig{
		Packages:     make(map[string]Package),
		SelfUpdate:   true,
		UpdateOthers: true,
	}
}

// Names returns the declared package names in lexicographic order.
func (c *DesiredConfig) Names() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.Packages))
}

// Len returns the number of declared packages.
func (c *DesiredConfig) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Packages)
}

// WithToggles returns a copy whose toggles are narrowed by the command-line switches.
// Switches can only disable a toggle the configuration enables.
func (c *DesiredConfig) WithToggles(noSelf, onlySelf bool) *DesiredConfig {
	out := c.clone()
	out.SelfUpdate = out.SelfUpdate && !noSelf
	out.UpdateOthers = out.UpdateOthers && !onlySelf
	return out
}

// Effective returns the set of packages that a synchronization pass considers.
// The self package is added as a star intent when self-update is on and it is
// not declared, and removed when self-update is off. Every other package is
// removed when UpdateOthers is off.
func (c *DesiredConfig) Effective() *DesiredConfig {
	out := c.clone()
	if !out.UpdateOthers {
		for name := range out.Packages {
			if name != SelfPackageName {
				delete(out.Packages, name)
			}
		}
	}

	if out.SelfUpdate {
		if _, ok := out.Packages[SelfPackageName]; !ok {
			out.Packages[SelfPackageName] = NewPackage(Star(nil))
		}
	} else {
		delete(out.Packages, SelfPackageName)
	}
	return out
}

func (c *DesiredConfig) clone() *DesiredConfig {
	if c == nil {
		return &DesiredConfig{Packages: make(map[string]Package)}
	}
	out := &DesiredConfig{
		Packages:     make(map[string]Package, len(c.Packages)),
		SelfUpdate:   c.SelfUpdate,
		UpdateOthers: c.UpdateOthers,
	}
	for name, pkg := range c.Packages {
		pkg.Options = pkg.Options.Clone()
		out.Packages[name] = pkg
	}
	return out
}
