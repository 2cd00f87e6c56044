package cargo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/liner/internal/adapters/cargo"
	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/liner/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	fail  map[string]error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	pkg := args[len(args)-1]
	return f.fail[pkg]
}

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		opts domain.InstallOptions
		want []string
	}{
		{
			name: "plain",
			want: []string{"install", "--version", "1.2.3", "bat"},
		},
		{
			name: "features",
			opts: domain.InstallOptions{Features: []string{"a", "b"}},
			want: []string{"install", "--version", "1.2.3", "--features", "a,b", "bat"},
		},
		{
			name: "all flags",
			opts: domain.InstallOptions{AllFeatures: true, NoDefaultFeatures: true},
			want: []string{"install", "--version", "1.2.3", "--all-features", "--no-default-features", "bat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cargo.Args("bat", "1.2.3", tt.opts))
		})
	}
}

func TestInstaller_InstallAll(t *testing.T) {
	runner := &fakeRunner{}
	installer := cargo.NewInstaller("", runner, newLogger(t))

	set := domain.InstallSet{
		"ripgrep": {Intent: domain.Star(nil), Options: domain.InstallOptions{Features: []string{"pcre2"}}},
		"bat":     domain.NewPackage(domain.Star(nil)),
	}
	targets := domain.ResolvedTargets{
		"ripgrep": semver.MustParse("14.1.1"),
		"bat":     semver.MustParse("0.24.0"),
	}

	require.NoError(t, installer.InstallAll(context.Background(), set, targets))
	require.Len(t, runner.calls, 2)
	assert.Equal(t, call{name: "cargo", args: []string{"install", "--version", "0.24.0", "bat"}}, runner.calls[0])
	assert.Equal(t, call{
		name: "cargo",
		args: []string{"install", "--version", "14.1.1", "--features", "pcre2", "ripgrep"},
	}, runner.calls[1])
}

func TestInstaller_InstallAll_ContinuesAfterFailure(t *testing.T) {
	errBoom := errors.New("boom")
	runner := &fakeRunner{fail: map[string]error{"bat": errBoom}}
	installer := cargo.NewInstaller("/opt/cargo", runner, newLogger(t))

	set := domain.InstallSet{
		"bat":     domain.NewPackage(domain.Star(nil)),
		"fd-find": domain.NewPackage(domain.Star(nil)),
		"zoxide":  domain.NewPackage(domain.Star(nil)),
	}
	targets := domain.ResolvedTargets{
		"bat":     semver.MustParse("0.24.0"),
		"fd-find": semver.MustParse("10.0.0"),
	}

	err := installer.InstallAll(context.Background(), set, targets)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInstallFailed.Error())
	require.ErrorIs(t, err, errBoom)
	require.ErrorIs(t, err, domain.ErrMissingResolution)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "/opt/cargo", runner.calls[0].name)
	assert.Equal(t, "fd-find", runner.calls[1].args[len(runner.calls[1].args)-1])
}

func TestInstaller_InstallAll_Cancelled(t *testing.T) {
	runner := &fakeRunner{}
	installer := cargo.NewInstaller("cargo", runner, newLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set := domain.InstallSet{"bat": domain.NewPackage(domain.Star(nil))}
	targets := domain.ResolvedTargets{"bat": semver.MustParse("0.24.0")}

	err := installer.InstallAll(ctx, set, targets)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, runner.calls)
}

func TestInstaller_InstallAll_Empty(t *testing.T) {
	runner := &fakeRunner{}
	installer := cargo.NewInstaller("cargo", runner, newLogger(t))

	require.NoError(t, installer.InstallAll(context.Background(), domain.InstallSet{}, nil))
	assert.Empty(t, runner.calls)
}
