package registry

// NewClientWithHTTPForTest exports newClientWithHTTP for testing purposes.
var NewClientWithHTTPForTest = newClientWithHTTP

// CachePathForTest exports the cache path of name for testing purposes.
func (c *Client) CachePathForTest(name string) string {
	return c.cachePath(name)
}
