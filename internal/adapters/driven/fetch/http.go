package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
	"github.com/riklabs/rigveda-cli/internal/logger"
)

// Resource paths relative to the corpus base URL. The layout mirrors
// the published data directory.
const (
	partitionPathFmt = "rigveda_mandalas/rigveda_mandala_%02d.json"
	legacyPath       = "verses.json"
	audioPath        = "rig-veda-audio.json"
	geographyPath    = "regions.json"
	deitiesPath      = "deities.json"
)

const (
	defaultTimeout = 30 * time.Second

	// Outbound request budget; ten partition fetches fit in one burst.
	defaultRateLimit = rate.Limit(20)
	defaultRateBurst = 12

	maxResponseBytes = 64 << 20
)

// Ensure HTTPFetcher implements the interface.
var _ driven.CorpusFetcher = (*HTTPFetcher)(nil)

// HTTPFetcher retrieves corpus resources from an HTTP base URL.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(f *HTTPFetcher) { f.client = client }
}

// WithRateLimit overrides the outbound request rate.
func WithRateLimit(limit rate.Limit, burst int) HTTPOption {
	return func(f *HTTPFetcher) { f.limiter = rate.NewLimiter(limit, burst) }
}

// NewHTTPFetcher creates a fetcher rooted at the given base URL.
func NewHTTPFetcher(baseURL string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: rate.NewLimiter(defaultRateLimit, defaultRateBurst),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchBook retrieves one mandala partition.
func (f *HTTPFetcher) FetchBook(ctx context.Context, mandala int) ([]domain.Verse, error) {
	path := fmt.Sprintf(partitionPathFmt, mandala)
	data, err := f.get(ctx, path)
	if err != nil {
		return nil, err
	}

	verses, err := decodeVerses(data)
	if err != nil {
		return nil, fmt.Errorf("partition %d: %w", mandala, err)
	}
	logger.Debug("Fetched mandala %d: %d verses", mandala, len(verses))
	return verses, nil
}

// FetchLegacy retrieves the single-file corpus resource.
func (f *HTTPFetcher) FetchLegacy(ctx context.Context) ([]domain.Verse, error) {
	data, err := f.get(ctx, legacyPath)
	if err != nil {
		return nil, err
	}

	verses, err := decodeVerses(data)
	if err != nil {
		return nil, fmt.Errorf("legacy corpus: %w", err)
	}
	logger.Debug("Fetched legacy corpus: %d verses", len(verses))
	return verses, nil
}

// FetchAudioIndex retrieves the recitation URL map.
func (f *HTTPFetcher) FetchAudioIndex(ctx context.Context) (domain.AudioIndex, error) {
	data, err := f.get(ctx, audioPath)
	if err != nil {
		return nil, err
	}
	return decodeAudioIndex(data)
}

// FetchGeography retrieves the geographic reference entries.
func (f *HTTPFetcher) FetchGeography(ctx context.Context) ([]domain.GeographyEntry, error) {
	data, err := f.get(ctx, geographyPath)
	if err != nil {
		return nil, err
	}
	return decodeGeography(data)
}

// FetchDeities retrieves the deity reference entries.
func (f *HTTPFetcher) FetchDeities(ctx context.Context) ([]domain.DeityEntry, error) {
	data, err := f.get(ctx, deitiesPath)
	if err != nil {
		return nil, err
	}
	return decodeDeities(data)
}

// get performs one rate-limited GET and returns the response body.
func (f *HTTPFetcher) get(ctx context.Context, path string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	url := f.baseURL + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("fetch %s: %w", path, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
