package registry_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/liner/internal/adapters/registry"
	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/liner/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const batIndex = `{"name":"bat","vers":"0.23.0","deps":[],"cksum":"a","features":{},"yanked":false}
{"name":"bat","vers":"0.24.0","deps":[],"cksum":"b","features":{},"yanked":false}
{"name":"bat","vers":"0.25.0","deps":[],"cksum":"c","features":{},"yanked":true}
{"name":"bat","vers":"0.26.0-beta.1","deps":[],"cksum":"d","features":{},"yanked":false}
`

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) *http.Response
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req), nil
}

func newMockClient(handler func(req *http.Request) *http.Response) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func response(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

func newClient(t *testing.T, cacheDir string, handler func(req *http.Request) *http.Response) *registry.Client {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	client, err := registry.NewClientWithHTTPForTest("https://index.example/", cacheDir, log, newMockClient(handler))
	require.NoError(t, err)
	return client
}

func TestIndexPath(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "a", want: "1/a"},
		{name: "xz", want: "2/xz"},
		{name: "bat", want: "3/b/bat"},
		{name: "cargo", want: "ca/rg/cargo"},
		{name: "ripgrep", want: "ri/pg/ripgrep"},
		{name: "Inflector", want: "in/fl/inflector"},
		{name: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, registry.IndexPath(tt.name))
		})
	}
}

func TestClient_Versions(t *testing.T) {
	var gotURL, gotUA string
	client := newClient(t, t.TempDir(), func(req *http.Request) *http.Response {
		gotURL = req.URL.String()
		gotUA = req.Header.Get("User-Agent")
		return response(http.StatusOK, batIndex, nil)
	})

	versions, err := client.Versions(context.Background(), "bat")
	require.NoError(t, err)

	assert.Equal(t, "https://index.example/3/b/bat", gotURL)
	assert.True(t, strings.HasPrefix(gotUA, "liner/"))

	got := make([]string, 0, len(versions))
	for _, v := range versions {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"0.23.0", "0.24.0", "0.26.0-beta.1"}, got)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusNotFound, wantErr: domain.ErrPackageNotFound},
		{status: http.StatusGone, wantErr: domain.ErrPackageNotFound},
		{status: http.StatusUnavailableForLegalReasons, wantErr: domain.ErrPackageNotFound},
		{status: http.StatusInternalServerError, wantErr: domain.ErrRegistryRequestFailed},
		{status: http.StatusForbidden, wantErr: domain.ErrRegistryRequestFailed},
		{status: http.StatusNotModified, wantErr: domain.ErrRegistryRequestFailed},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newClient(t, t.TempDir(), func(*http.Request) *http.Response {
				return response(tt.status, "", nil)
			})

			versions, err := client.Versions(context.Background(), "nope")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, versions)
		})
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestClient_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	client, err := registry.NewClientWithHTTPForTest("https://index.example", t.TempDir(), log, &http.Client{Transport: failingTransport{}})
	require.NoError(t, err)

	_, err = client.Versions(context.Background(), "bat")
	require.ErrorContains(t, err, domain.ErrRegistryRequestFailed.Error())
	assert.ErrorContains(t, err, "connection refused")
}

func TestClient_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: "{not json}\n"},
		{name: "invalid version", body: `{"name":"bat","vers":"one","yanked":false}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, t.TempDir(), func(*http.Request) *http.Response {
				return response(http.StatusOK, tt.body, nil)
			})

			_, err := client.Versions(context.Background(), "bat")
			require.ErrorContains(t, err, domain.ErrRegistryParseFailed.Error())
		})
	}
}

func TestClient_EmptyName(t *testing.T) {
	client := newClient(t, t.TempDir(), func(*http.Request) *http.Response {
		t.Fatal("no request expected")
		return nil
	})

	_, err := client.Versions(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestClient_ConditionalRevalidation(t *testing.T) {
	cacheDir := t.TempDir()
	requests := 0
	client := newClient(t, cacheDir, func(req *http.Request) *http.Response {
		requests++
		if req.Header.Get("If-None-Match") == `"v1"` {
			assert.Equal(t, "Mon, 01 Jan 2024 00:00:00 GMT", req.Header.Get("If-Modified-Since"))
			return response(http.StatusNotModified, "", nil)
		}
		header := http.Header{}
		header.Set("ETag", `"v1"`)
		header.Set("Last-Modified", "Mon, 01 Jan 2024 00:00:00 GMT")
		return response(http.StatusOK, batIndex, header)
	})

	first, err := client.Versions(context.Background(), "bat")
	require.NoError(t, err)
	_, err = os.Stat(client.CachePathForTest("bat"))
	require.NoError(t, err, "cache file should be written")

	second, err := client.Versions(context.Background(), "bat")
	require.NoError(t, err)

	assert.Equal(t, 2, requests, "every lookup revalidates")
	assert.Equal(t, len(first), len(second))
}

func TestClient_ChangedIndexReplacesCache(t *testing.T) {
	cacheDir := t.TempDir()
	body := batIndex
	client := newClient(t, cacheDir, func(*http.Request) *http.Response {
		header := http.Header{}
		header.Set("ETag", `"`+string(rune('a'+len(body)%26))+`"`)
		return response(http.StatusOK, body, header)
	})

	_, err := client.Versions(context.Background(), "bat")
	require.NoError(t, err)

	body = `{"name":"bat","vers":"1.0.0","yanked":false}` + "\n"
	versions, err := client.Versions(context.Background(), "bat")
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "1.0.0", versions[0].String())
}

func TestClient_CorruptCacheIgnored(t *testing.T) {
	cacheDir := t.TempDir()
	client := newClient(t, cacheDir, func(req *http.Request) *http.Response {
		assert.Empty(t, req.Header.Get("If-None-Match"))
		return response(http.StatusOK, batIndex, nil)
	})
	require.NoError(t, os.WriteFile(client.CachePathForTest("bat"), []byte("garbage"), domain.FilePerm))

	versions, err := client.Versions(context.Background(), "bat")
	require.NoError(t, err)
	assert.Len(t, versions, 3)
}

func TestClient_CacheKeyIsCaseInsensitive(t *testing.T) {
	client := newClient(t, t.TempDir(), func(*http.Request) *http.Response {
		return response(http.StatusOK, batIndex, nil)
	})
	assert.Equal(t, client.CachePathForTest("Inflector"), client.CachePathForTest("inflector"))
}
