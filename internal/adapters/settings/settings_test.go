package settings_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/liner/internal/adapters/settings"
	"go.trai.ch/liner/internal/core/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LINER_CONFIG", "LINER_REGISTRY_URL", "LINER_CACHE_DIR", "LINER_JOBS", "LINER_CARGO", "CARGO_HOME"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))

	s, err := settings.Load()
	require.NoError(t, err)

	cargoHome := filepath.Join(home, ".cargo")
	assert.Equal(t, cargoHome, s.CargoHome)
	assert.Equal(t, filepath.Join(cargoHome, "liner.yaml"), s.ConfigPath)
	assert.Equal(t, filepath.Join(cargoHome, ".crates.toml"), s.CratesPath())
	assert.Equal(t, domain.DefaultRegistryURL, s.RegistryURL)
	assert.Equal(t, runtime.NumCPU(), s.Jobs)
	assert.Equal(t, "cargo", s.Cargo)
	if runtime.GOOS == "linux" {
		assert.Equal(t, filepath.Join(home, ".cache", "liner", "index"), s.IndexCachePath())
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("CARGO_HOME", filepath.Join(dir, "cargo"))
	t.Setenv("LINER_CONFIG", filepath.Join(dir, "custom.yaml"))
	t.Setenv("LINER_REGISTRY_URL", "http://localhost:8080/index/")
	t.Setenv("LINER_CACHE_DIR", filepath.Join(dir, "cache"))
	t.Setenv("LINER_JOBS", "3")
	t.Setenv("LINER_CARGO", "/opt/bin/cargo")

	s, err := settings.Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cargo"), s.CargoHome)
	assert.Equal(t, filepath.Join(dir, "custom.yaml"), s.ConfigPath)
	assert.Equal(t, "http://localhost:8080/index", s.RegistryURL)
	assert.Equal(t, filepath.Join(dir, "cache", "index"), s.IndexCachePath())
	assert.Equal(t, 3, s.Jobs)
	assert.Equal(t, "/opt/bin/cargo", s.Cargo)
}

func TestLoadFrom_Preset(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	v := viper.New()
	v.Set("cargo_home", dir)
	v.Set("cache_dir", dir)

	s, err := settings.LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "liner.yaml"), s.ConfigPath)
}

func TestLoad_InvalidJobs(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARGO_HOME", t.TempDir())
	t.Setenv("LINER_CACHE_DIR", t.TempDir())
	t.Setenv("LINER_JOBS", "0")

	_, err := settings.Load()
	require.ErrorIs(t, err, domain.ErrSettingsLoadFailed)
}
