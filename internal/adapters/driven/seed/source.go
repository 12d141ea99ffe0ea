package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/custodia-labs/cotiza/internal/core/domain"
	"github.com/custodia-labs/cotiza/internal/core/ports/driven"
)

// maxSeedSize bounds how much of a seed document is read.
const maxSeedSize = 4 << 20

// NewSource returns an HTTPSource for http(s) URLs and a FileSource otherwise.
func NewSource(location string) (driven.SeedSource, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: empty seed location", domain.ErrInvalidInput)
	}

	if u, err := url.Parse(location); err == nil {
		switch u.Scheme {
		case "http", "https":
			return NewHTTPSource(location, nil), nil
		case "file":
			return NewFileSource(u.Path), nil
		}
	}
	return NewFileSource(location), nil
}

// HTTPSource fetches the seed document over HTTP.
type HTTPSource struct {
	url    string
	client *http.Client
}

// Ensure HTTPSource implements the interface.
var _ driven.SeedSource = (*HTTPSource)(nil)

// NewHTTPSource creates a source for rawURL. A nil client uses
// http.DefaultClient; cancellation comes from the Fetch context.
func NewHTTPSource(rawURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: rawURL, client: client}
}

// Fetch performs a single GET. There is no retry.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", domain.ErrSeedUnavailable, s.url, resp.Status)
	}

	return readSeed(resp.Body, s.url)
}

// Location returns the URL.
func (s *HTTPSource) Location() string {
	return s.url
}

// FileSource reads the seed document from disk.
type FileSource struct {
	path string
}

// Ensure FileSource implements the interface.
var _ driven.SeedSource = (*FileSource)(nil)

// NewFileSource creates a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", domain.ErrSeedUnavailable, s.path)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSeedUnavailable, err)
	}
	defer f.Close()

	return readSeed(f, s.path)
}

// readSeed reads at most maxSeedSize bytes. A longer document is an
// error rather than a truncated body.
func readSeed(r io.Reader, location string) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxSeedSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrSeedUnavailable, location, err)
	}
	if len(body) > maxSeedSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", domain.ErrSeedUnavailable, location, maxSeedSize)
	}
	return body, nil
}

// Location returns the file path.
func (s *FileSource) Location() string {
	return s.path
}
