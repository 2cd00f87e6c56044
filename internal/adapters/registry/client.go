// Package registry implements the Registry port over the crates.io sparse index.
package registry

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	linerfs "go.trai.ch/liner/internal/adapters/fs"
	"go.trai.ch/liner/internal/build"
	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/liner/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 30 * time.Second
	maxIndexFileSize  = 32 << 20
)

var _ ports.Registry = (*Client)(nil)

// indexRecord is one line of a sparse index file. Only the fields used here are decoded.
type indexRecord struct {
	Name   string `json:"name"`
	Vers   string `json:"vers"`
	Yanked bool   `json:"yanked"`
}

// cacheEntry is a cached index file together with its validators.
type cacheEntry struct {
	Name         string    `json:"name"`
	ETag         string    `json:"etag,omitempty"`
	LastModified string    `json:"last_modified,omitempty"`
	Body         []byte    `json:"body"`
	Timestamp    time.Time `json:"timestamp"`
}

// Client queries a sparse registry index, revalidating a local cache with conditional requests.
type Client struct {
	baseURL    string
	cacheDir   string
	httpClient *http.Client
	logger     ports.Logger
}

// NewClient creates a Client for the index at baseURL caching files under cacheDir.
func NewClient(baseURL, cacheDir string, logger ports.Logger) (*Client, error) {
	return newClientWithHTTP(baseURL, cacheDir, logger, &http.Client{Timeout: httpClientTimeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(baseURL, cacheDir string, logger ports.Logger, client *http.Client) (*Client, error) {
	cleanPath := filepath.Clean(cacheDir)
	if err := os.MkdirAll(cleanPath, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryCacheFailed.Error()), "path", cleanPath)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cacheDir:   cleanPath,
		httpClient: client,
		logger:     logger,
	}, nil
}

// IndexPath returns the sparse index path of a package name.
// Names are lower-cased: 1/{n}, 2/{n}, 3/{c}/{n} and {ab}/{cd}/{n}.
func IndexPath(name string) string {
	n := strings.ToLower(name)
	switch len(n) {
	case 0:
		return ""
	case 1:
		return "1/" + n
	case 2:
		return "2/" + n
	case 3:
		return "3/" + n[:1] + "/" + n
	default:
		return n[:2] + "/" + n[2:4] + "/" + n
	}
}

// Versions returns the non-yanked versions of name.
//
// Every call issues a request. When a cached copy exists the request is
// conditional and a 304 response reuses the cached body.
func (c *Client) Versions(ctx context.Context, name string) ([]*semver.Version, error) {
	if name == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "empty package name"), "package", name)
	}

	cachePath := c.cachePath(name)
	cached := c.loadFromCache(cachePath)

	body, err := c.fetch(ctx, name, cached)
	if err != nil {
		return nil, err
	}

	return parseIndex(name, body)
}

// fetch performs the (conditional) request and returns the current index body.
func (c *Client) fetch(ctx context.Context, name string, cached *cacheEntry) ([]byte, error) {
	url := c.baseURL + "/" + IndexPath(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error()), "package", name)
	}
	req.Header.Set("User-Agent", "liner/"+build.Version)
	if cached != nil {
		if cached.ETag != "" {
			req.Header.Set("If-None-Match", cached.ETag)
		}
		if cached.LastModified != "" {
			req.Header.Set("If-Modified-Since", cached.LastModified)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error()), "package", name)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotModified:
		if cached == nil {
			apiErr := zerr.With(zerr.Wrap(domain.ErrRegistryRequestFailed, "unexpected not modified"), "package", name)
			return nil, zerr.With(apiErr, "status_code", resp.StatusCode)
		}
		c.logger.Debug("index cache for " + name + " is current")
		return cached.Body, nil
	case http.StatusNotFound, http.StatusGone, http.StatusUnavailableForLegalReasons:
		notFoundErr := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "query index"), "package", name)
		return nil, zerr.With(notFoundErr, "status_code", resp.StatusCode)
	default:
		apiErr := zerr.With(zerr.Wrap(domain.ErrRegistryRequestFailed, "query index"), "package", name)
		return nil, zerr.With(apiErr, "status_code", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIndexFileSize))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryRequestFailed.Error()), "package", name)
	}

	entry := cacheEntry{
		Name:         name,
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
		Body:         body,
		Timestamp:    time.Now(),
	}
	if entry.ETag != "" || entry.LastModified != "" {
		if err := c.saveToCache(c.cachePath(name), &entry); err != nil {
			// Cache write failures are not fatal.
			c.logger.Debug("could not cache index for " + name + ": " + err.Error())
		}
	}

	return body, nil
}

// parseIndex decodes newline-delimited index records, skipping yanked versions.
func parseIndex(name string, body []byte) ([]*semver.Version, error) {
	var versions []*semver.Version

	scanner := bufio.NewScanner(bytes.NewReader(body))
	scanner.Buffer(make([]byte, 0, 64*1024), maxIndexFileSize)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var record indexRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			parseErr := zerr.With(zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()), "package", name)
			return nil, zerr.With(parseErr, "line", line)
		}
		if record.Yanked {
			continue
		}

		v, err := semver.StrictNewVersion(record.Vers)
		if err != nil {
			parseErr := zerr.With(zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()), "package", name)
			return nil, zerr.With(parseErr, "version", record.Vers)
		}
		versions = append(versions, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()), "package", name)
	}

	return versions, nil
}

// cachePath returns the file path for the cache entry of name.
func (c *Client) cachePath(name string) string {
	return filepath.Join(c.cacheDir, linerfs.HashKey(strings.ToLower(name))+".json")
}

// loadFromCache returns the cached entry at path, or nil when absent or unreadable.
func (c *Client) loadFromCache(path string) *cacheEntry {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug("ignoring unreadable index cache " + path)
		}
		return nil
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Debug("ignoring corrupt index cache " + path)
		return nil
	}
	return &entry
}

// saveToCache stores entry at path.
func (c *Client) saveToCache(path string, entry *cacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return linerfs.WriteFileAtomic(path, data, domain.PrivateFilePerm)
}
