// Package domain contains the core domain models and business logic for package synchronization.
package domain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// IntentKind is the version-matching policy of a VersionIntent.
type IntentKind uint8

const (
	// IntentUnknown is the zero value and is never a valid policy.
	IntentUnknown IntentKind = iota
	// IntentExact matches the base version precisely.
	IntentExact
	// IntentCompatible matches the caret window of the base version, floored at it.
	IntentCompatible
	// IntentPatch matches the tilde window of the base version, floored at it.
	IntentPatch
	// IntentStar matches any version.
	IntentStar
)

const (
	caretPrefix = "^"
	tildePrefix = "~"
	exactPrefix = "="
	starIntent  = "*"
)

// String returns the policy name.
func (k IntentKind) String() string {
	switch k {
	case IntentExact:
		return "exact"
	case IntentCompatible:
		return "compatible"
	case IntentPatch:
		return "patch"
	case IntentStar:
		return "star"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the four policies.
func (k IntentKind) Valid() bool {
	return k >= IntentExact && k <= IntentStar
}

// ImportModeFromFlags selects the import policy from mutually exclusive flags.
// Exactly one flag must be set.
func ImportModeFromFlags(exact, compatible, patch, star bool) (IntentKind, error) {
	selected := IntentUnknown
	count := 0
	for kind, set := range map[IntentKind]bool{
		IntentExact:      exact,
		IntentCompatible: compatible,
		IntentPatch:      patch,
		IntentStar:       star,
	} {
		if set {
			selected = kind
			count++
		}
	}
	if count != 1 {
		return IntentUnknown, zerr.With(zerr.Wrap(ErrConflictingImportMode, "select import mode"), "selected", count)
	}
	return selected, nil
}

// VersionIntent is a package's declared version intent: a policy over a base version.
// For IntentStar the base is informational and may be nil.
type VersionIntent struct {
	Kind    IntentKind
	Version *semver.Version
}

// Exact returns an intent matching v precisely.
func Exact(v *semver.Version) VersionIntent {
	return VersionIntent{Kind: IntentExact, Version: v}
}

// Compatible returns a caret intent floored at v.
func Compatible(v *semver.Version) VersionIntent {
	return VersionIntent{Kind: IntentCompatible, Version: v}
}

// Patch returns a tilde intent floored at v.
func Patch(v *semver.Version) VersionIntent {
	return VersionIntent{Kind: IntentPatch, Version: v}
}

// Star returns a wildcard intent. v is kept for information only.
func Star(v *semver.Version) VersionIntent {
	return VersionIntent{Kind: IntentStar, Version: v}
}

// NewIntent builds an intent of the given kind over v.
func NewIntent(kind IntentKind, v *semver.Version) (VersionIntent, error) {
	if !kind.Valid() {
		return VersionIntent{}, zerr.With(zerr.Wrap(ErrConflictingImportMode, "build version intent"), "kind", kind.String())
	}
	return VersionIntent{Kind: kind, Version: v}, nil
}

// ParseVersionIntent parses the canonical string form produced by String.
// A leading "=" is accepted as an explicit exact marker.
func ParseVersionIntent(s string) (VersionIntent, error) {
	raw := strings.TrimSpace(s)
	if raw == starIntent {
		return Star(nil), nil
	}

	kind := IntentExact
	switch {
	case strings.HasPrefix(raw, caretPrefix):
		kind = IntentCompatible
		raw = strings.TrimPrefix(raw, caretPrefix)
	case strings.HasPrefix(raw, tildePrefix):
		kind = IntentPatch
		raw = strings.TrimPrefix(raw, tildePrefix)
	case strings.HasPrefix(raw, exactPrefix):
		raw = strings.TrimPrefix(raw, exactPrefix)
	}

	v, err := semver.StrictNewVersion(strings.TrimSpace(raw))
	if err != nil {
		return VersionIntent{}, zerr.With(zerr.Wrap(ErrInvalidVersionIntent, err.Error()), "intent", s)
	}
	return VersionIntent{Kind: kind, Version: v}, nil
}

// String renders the canonical form: "1.2.3", "^1.2.3", "~1.2.3" or "*".
func (i VersionIntent) String() string {
	switch i.Kind {
	case IntentStar:
		return starIntent
	case IntentExact:
		return i.versionString()
	case IntentCompatible:
		return caretPrefix + i.versionString()
	case IntentPatch:
		return tildePrefix + i.versionString()
	default:
		return ""
	}
}

func (i VersionIntent) versionString() string {
	if i.Version == nil {
		return ""
	}
	return i.Version.String()
}

// MarshalText implements encoding.TextMarshaler.
func (i VersionIntent) MarshalText() ([]byte, error) {
	if !i.Kind.Valid() {
		return nil, zerr.With(zerr.Wrap(ErrInvalidVersionIntent, "marshal version intent"), "kind", i.Kind.String())
	}
	if i.Kind != IntentStar && i.Version == nil {
		return nil, zerr.With(zerr.Wrap(ErrInvalidVersionIntent, "marshal version intent"), "reason", "missing base version")
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *VersionIntent) UnmarshalText(text []byte) error {
	parsed, err := ParseVersionIntent(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Equal reports whether two intents express the same policy.
// Star intents are equal regardless of their informational base.
func (i VersionIntent) Equal(o VersionIntent) bool {
	if i.Kind != o.Kind {
		return false
	}
	if i.Kind == IntentStar {
		return true
	}
	if i.Version == nil || o.Version == nil {
		return i.Version == o.Version
	}
	return i.Version.Equal(o.Version) && i.Version.Metadata() == o.Version.Metadata()
}

// Matches reports whether candidate satisfies the intent.
// Pre-release candidates only match when the base itself is a pre-release,
// except for exact intents which compare precisely.
func (i VersionIntent) Matches(candidate *semver.Version) bool {
	if candidate == nil {
		return false
	}
	switch i.Kind {
	case IntentExact:
		return i.Version != nil && candidate.Equal(i.Version)
	case IntentCompatible, IntentPatch, IntentStar:
		constraint, err := i.constraint()
		if err != nil {
			return false
		}
		return constraint.Check(candidate)
	default:
		return false
	}
}

// constraint translates the intent into a semver range whose lower bound is the base version.
func (i VersionIntent) constraint() (*semver.Constraints, error) {
	var expr string
	switch i.Kind {
	case IntentStar:
		expr = starIntent
	case IntentCompatible:
		expr = caretPrefix + floor(i.Version)
	case IntentPatch:
		// Spelled out because "~0.0.0" matches everything.
		expr = fmt.Sprintf(">=%s, <%d.%d.0", floor(i.Version), major(i.Version), minor(i.Version)+1)
	default:
		return nil, zerr.With(zerr.Wrap(ErrInvalidVersionIntent, "build constraint"), "kind", i.Kind.String())
	}

	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(ErrInvalidVersionIntent, err.Error()), "intent", expr)
	}
	if i.Kind == IntentStar && i.Version != nil && i.Version.Prerelease() != "" {
		c.IncludePrerelease = true
	}
	return c, nil
}

// floor renders v without build metadata, which constraints do not accept.
func floor(v *semver.Version) string {
	if v == nil {
		return "0.0.0"
	}
	s := fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
	if v.Prerelease() != "" {
		s += "-" + v.Prerelease()
	}
	return s
}

func major(v *semver.Version) uint64 {
	if v == nil {
		return 0
	}
	return v.Major()
}

func minor(v *semver.Version) uint64 {
	if v == nil {
		return 0
	}
	return v.Minor()
}

// Resolve selects the highest candidate satisfying the intent.
// It returns ErrNoMatchingVersion when no candidate qualifies.
func (i VersionIntent) Resolve(candidates []*semver.Version) (*semver.Version, error) {
	var best *semver.Version
	for _, candidate := range candidates {
		if !i.Matches(candidate) {
			continue
		}
		if best == nil || candidate.GreaterThan(best) {
			best = candidate
		}
	}
	if best == nil {
		err := zerr.With(zerr.Wrap(ErrNoMatchingVersion, "resolve version intent"), "intent", i.String())
		return nil, zerr.With(err, "candidates", len(candidates))
	}
	return best, nil
}
