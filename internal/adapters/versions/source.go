// Package versions discovers the Minecraft revisions BuildTools can build.
package versions

import (
	"context"
	"errors"
	"io"
	"net/http"
	"regexp"
	"sort"
	"time"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultIndexURL lists one <version>.json file per buildable revision.
	DefaultIndexURL = "https://hub.spigotmc.org/versions/"

	httpClientTimeout = 30 * time.Second
	maxIndexSize      = 8 << 20
)

// LatestRev is the revision BuildTools resolves to the newest release itself.
const LatestRev = "latest"

// versionPattern matches the revision part of index entries such as "1.20.4.json".
// Bare numbers like "4123.json" are build numbers and are skipped.
var versionPattern = regexp.MustCompile(`\b(\d+\.\d+(?:\.\d+)?)\.json\b`)

// Source implements ports.VersionSource over the Spigot versions index.
type Source struct {
	url        string
	httpClient *http.Client
}

// Option configures a Source.
type Option func(*Source)

// WithURL overrides the index location.
func WithURL(url string) Option {
	return func(s *Source) { s.url = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) { s.httpClient = c }
}

// NewSource creates a Source reading DefaultIndexURL.
func NewSource(opts ...Option) *Source {
	s := &Source{
		url:        DefaultIndexURL,
		httpClient: &http.Client{Timeout: httpClientTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Versions returns the buildable revisions, newest first, without duplicates.
func (s *Source) Versions(ctx context.Context) ([]string, error) {
	body, err := s.fetchIndex(ctx)
	if err != nil {
		return nil, err
	}
	return Scan(body), nil
}

// Check reports whether a newer revision than rev is available.
// The "latest" revision, and an unset one, are never outdated.
func (s *Source) Check(ctx context.Context, rev string) (domain.VersionCheck, error) {
	available, err := s.Versions(ctx)
	if err != nil {
		return domain.VersionCheck{}, err
	}
	if len(available) == 0 {
		return domain.VersionCheck{}, errors.Join(domain.ErrVersionFetchFailed, zerr.With(zerr.New("versions index lists no revisions"), "url", s.url))
	}

	check := domain.VersionCheck{Current: rev, Latest: available[0]}
	if rev == "" || rev == LatestRev {
		return check, nil
	}

	current, err := goversion.NewVersion(rev)
	if err != nil {
		return domain.VersionCheck{}, zerr.With(zerr.Wrap(err, "revision is not a release version"), "rev", rev)
	}
	latest, err := goversion.NewVersion(available[0])
	if err != nil {
		return domain.VersionCheck{}, zerr.Wrap(err, "malformed revision in versions index")
	}
	check.Outdated = current.LessThan(latest)
	return check, nil
}

func (s *Source) fetchIndex(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, errors.Join(domain.ErrVersionFetchFailed, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(domain.ErrVersionFetchFailed, zerr.With(err, "url", s.url))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.New("unexpected response"), "status_code", resp.StatusCode)
		return nil, errors.Join(domain.ErrVersionFetchFailed, zerr.With(statusErr, "url", s.url))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIndexSize))
	if err != nil {
		return nil, errors.Join(domain.ErrVersionFetchFailed, zerr.With(err, "url", s.url))
	}
	return body, nil
}

// Scan extracts revisions from an index page, deduplicated and sorted newest first.
func Scan(page []byte) []string {
	seen := make(map[string]struct{})
	var parsed goversion.Collection

	for _, m := range versionPattern.FindAllSubmatch(page, -1) {
		raw := string(m[1])
		if _, ok := seen[raw]; ok {
			continue
		}
		seen[raw] = struct{}{}

		v, err := goversion.NewVersion(raw)
		if err != nil {
			continue
		}
		parsed = append(parsed, v)
	}

	sort.Sort(sort.Reverse(parsed))

	out := make([]string, len(parsed))
	for i, v := range parsed {
		out[i] = v.Original()
	}
	return out
}
