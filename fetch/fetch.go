// Package fetch provides the Fetcher implementations the load cache drives:
// an HTTP client for remote asset roots and a directory-rooted reader for
// local use and tests.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/meshverse/assetloader/errors"
)

// HTTP fetches asset bytes over http(s). The zero value is usable and
// shares http.DefaultClient.
type HTTP struct {
	Client *http.Client
}

// Fetch performs a GET and returns the response body. Any non-2xx status
// is a fetch failure carrying the status code.
func (h *HTTP) Fetch(ctx context.Context, url string) ([]byte, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.FetchFailed(url, 0, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.FetchFailed(url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.FetchFailed(url, resp.StatusCode, nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.FetchFailed(url, resp.StatusCode, err)
	}
	return data, nil
}

// Dir serves fetches from a local directory, treating the URL's path as a
// path under Root. It backs offline workflows and tests.
type Dir struct {
	Root string
}

// Fetch reads the file addressed by the URL's path component.
func (d *Dir) Fetch(_ context.Context, url string) ([]byte, error) {
	path := url
	if i := strings.Index(path, "://"); i >= 0 {
		path = path[i+3:]
		if j := strings.IndexByte(path, '/'); j >= 0 {
			path = path[j+1:]
		} else {
			path = ""
		}
	}
	if path == "" {
		return nil, errors.FetchFailed(url, 0, nil)
	}

	full := filepath.Join(d.Root, filepath.FromSlash(path))
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FetchFailed(url, 404, err)
		}
		return nil, errors.FetchFailed(url, 0, err)
	}
	return data, nil
}
