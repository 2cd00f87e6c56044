package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the desired configuration file.
	ConfigFileName = "liner.yaml"

	// CratesFileName is the name of Cargo's install record.
	CratesFileName = ".crates.toml"

	// CargoDirName is the default Cargo home directory name under the user's home.
	CargoDirName = ".cargo"

	// CacheDirName is the name of the tool's cache directory under the user cache dir.
	CacheDirName = "liner"

	// IndexDirName is the name of the registry index cache directory.
	IndexDirName = "index"

	// DefaultRegistryURL is the crates.io sparse index.
	DefaultRegistryURL = "https://index.crates.io"

	// DefaultCargoBinary is the Cargo executable looked up on PATH.
	DefaultCargoBinary = "cargo"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultConfigPath returns the configuration path inside cargoHome.
func DefaultConfigPath(cargoHome string) string {
	return filepath.Join(cargoHome, ConfigFileName)
}

// DefaultCratesPath returns the path of Cargo's install record inside cargoHome.
func DefaultCratesPath(cargoHome string) string {
	return filepath.Join(cargoHome, CratesFileName)
}

// DefaultIndexCachePath returns the registry index cache path inside cacheDir.
// It joins cacheDir and index.
func DefaultIndexCachePath(cacheDir string) string {
	return filepath.Join(cacheDir, IndexDirName)
}
