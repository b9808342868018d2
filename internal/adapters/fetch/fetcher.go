// Package fetch downloads BuildTools.jar.
package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/btl/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultJarURL always serves the newest successful BuildTools build.
	DefaultJarURL = "https://hub.spigotmc.org/jenkins/job/BuildTools/lastSuccessfulBuild/artifact/target/BuildTools.jar"

	httpClientTimeout = 5 * time.Minute
)

// JarFetcher implements ports.JarFetcher over HTTP.
type JarFetcher struct {
	url        string
	httpClient *http.Client
	logger     ports.Logger
}

// Option configures a JarFetcher.
type Option func(*JarFetcher)

// WithURL overrides the download location.
func WithURL(url string) Option {
	return func(f *JarFetcher) { f.url = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *JarFetcher) { f.httpClient = c }
}

// NewJarFetcher creates a JarFetcher downloading DefaultJarURL.
func NewJarFetcher(logger ports.Logger, opts ...Option) *JarFetcher {
	f := &JarFetcher{
		url:        DefaultJarURL,
		httpClient: &http.Client{Timeout: httpClientTimeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the jar to dest. The file appears at dest only once the
// download completed, so an interrupted fetch never leaves a truncated jar.
func (f *JarFetcher) Fetch(ctx context.Context, dest string) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrJarFetchFailed, zerr.With(err, "dir", dir))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return errors.Join(domain.ErrJarFetchFailed, err)
	}

	f.logger.Info("downloading " + f.url)
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return errors.Join(domain.ErrJarFetchFailed, zerr.With(err, "url", f.url))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.New("unexpected response"), "status_code", resp.StatusCode)
		return errors.Join(domain.ErrJarFetchFailed, zerr.With(statusErr, "url", f.url))
	}

	tmp, err := os.CreateTemp(dir, ".BuildTools-*.jar.part")
	if err != nil {
		return errors.Join(domain.ErrJarFetchFailed, zerr.With(err, "dir", dir))
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Join(domain.ErrJarFetchFailed, zerr.With(err, "url", f.url))
	}
	if n == 0 {
		return errors.Join(domain.ErrJarFetchFailed, zerr.With(zerr.New("empty download"), "url", f.url))
	}

	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return errors.Join(domain.ErrJarFetchFailed, zerr.With(err, "path", dest))
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return errors.Join(domain.ErrJarFetchFailed, zerr.With(err, "path", dest))
	}

	f.logger.Info("saved BuildTools.jar to " + dest)
	return nil
}
