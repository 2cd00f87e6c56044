// Package settings loads the tool's own settings from the environment.
package settings

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "LINER"

const (
	keyConfig      = "config"
	keyCargoHome   = "cargo_home"
	keyRegistryURL = "registry_url"
	keyCacheDir    = "cache_dir"
	keyJobs        = "jobs"
	keyCargo       = "cargo"
)

// Settings holds paths and tunables resolved from the environment.
type Settings struct {
	// ConfigPath is the desired configuration file (LINER_CONFIG).
	ConfigPath string
	// CargoHome is Cargo's home directory (CARGO_HOME).
	CargoHome string
	// RegistryURL is the base URL of the sparse index (LINER_REGISTRY_URL).
	RegistryURL string
	// CacheDir holds the registry index cache (LINER_CACHE_DIR).
	CacheDir string
	// Jobs bounds concurrent registry queries (LINER_JOBS).
	Jobs int
	// Cargo is the cargo executable (LINER_CARGO).
	Cargo string
}

// CratesPath returns the location of Cargo's install record.
func (s *Settings) CratesPath() string {
	return domain.DefaultCratesPath(s.CargoHome)
}

// IndexCachePath returns the location of the registry index cache.
func (s *Settings) IndexCachePath() string {
	return domain.DefaultIndexCachePath(s.CacheDir)
}

// Load resolves the settings from LINER_* variables and CARGO_HOME.
func Load() (*Settings, error) {
	return LoadFrom(viper.New())
}

// LoadFrom resolves the settings using v, which may carry preset values.
func LoadFrom(v *viper.Viper) (*Settings, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(keyCargoHome, "CARGO_HOME"); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	v.SetDefault(keyRegistryURL, domain.DefaultRegistryURL)
	v.SetDefault(keyJobs, runtime.NumCPU())
	v.SetDefault(keyCargo, domain.DefaultCargoBinary)

	cargoHome := v.GetString(keyCargoHome)
	if cargoHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
		}
		cargoHome = filepath.Join(home, domain.CargoDirName)
	}

	configPath := v.GetString(keyConfig)
	if configPath == "" {
		configPath = domain.DefaultConfigPath(cargoHome)
	}

	cacheDir := v.GetString(keyCacheDir)
	if cacheDir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
		}
		cacheDir = filepath.Join(userCache, domain.CacheDirName)
	}

	jobs := v.GetInt(keyJobs)
	if jobs < 1 {
		return nil, zerr.With(zerr.Wrap(domain.ErrSettingsLoadFailed, "jobs must be positive"), "jobs", v.GetString(keyJobs))
	}

	return &Settings{
		ConfigPath:  configPath,
		CargoHome:   cargoHome,
		RegistryURL: strings.TrimRight(v.GetString(keyRegistryURL), "/"),
		CacheDir:    cacheDir,
		Jobs:        jobs,
		Cargo:       v.GetString(keyCargo),
	}, nil
}
