package domain

import "go.trai.ch/zerr"

var (
	// ErrNoMatchingVersion is returned when no registry candidate satisfies a version intent.
	ErrNoMatchingVersion = zerr.New("no matching version")

	// ErrPackageNotFound is returned when the registry has no record of a package name.
	ErrPackageNotFound = zerr.New("package not found in registry")

	// ErrConflictingImportMode is returned when zero or several import modes are selected.
	ErrConflictingImportMode = zerr.New("exactly one import mode must be selected")

	// ErrMissingResolution is returned when a declared package has no resolved target version.
	ErrMissingResolution = zerr.New("missing resolved version for declared package")

	// ErrInvalidVersionIntent is returned when a version intent string cannot be parsed.
	ErrInvalidVersionIntent = zerr.New("invalid version intent, expected one of: *, X.Y.Z, ^X.Y.Z, ~X.Y.Z")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the configuration file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrConfigExists is returned when an import would overwrite an existing configuration.
	ErrConfigExists = zerr.New("configuration file already exists, use -f/--force to overwrite")

	// ErrInvalidPackageEntry is returned when a package entry in the configuration has an unsupported shape.
	ErrInvalidPackageEntry = zerr.New("invalid package entry")

	// ErrInstalledStateReadFailed is returned when the installed-state record cannot be read.
	ErrInstalledStateReadFailed = zerr.New("failed to read installed packages record")

	// ErrInstalledStateParseFailed is returned when the installed-state record cannot be parsed.
	ErrInstalledStateParseFailed = zerr.New("failed to parse installed packages record")

	// ErrRegistryRequestFailed is returned when a registry request fails.
	ErrRegistryRequestFailed = zerr.New("failed to query registry")

	// ErrRegistryParseFailed is returned when a registry response cannot be parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse registry response")

	// ErrRegistryCacheFailed is returned when the registry cache cannot be created.
	ErrRegistryCacheFailed = zerr.New("failed to create registry cache directory")

	// ErrResolutionFailed is returned when the registry resolution batch fails.
	ErrResolutionFailed = zerr.New("failed to resolve package versions")

	// ErrInstallFailed is returned when one or more installs fail.
	ErrInstallFailed = zerr.New("failed to install packages")

	// ErrSettingsLoadFailed is returned when the tool settings cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")
)
