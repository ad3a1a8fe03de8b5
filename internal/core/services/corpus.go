package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
	"github.com/riklabs/rigveda-cli/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// Cache keys. Book loads use keyBook(n).
const keyAll = "all"

func keyBook(mandala int) string {
	return "mandala:" + strconv.Itoa(mandala)
}

// Default cache and retry policy. Mirrors the upstream data's change
// rate: the corpus is static, so an hour of freshness is conservative.
const (
	DefaultFreshFor   = time.Hour
	DefaultEvictAfter = 24 * time.Hour
	DefaultMaxRetries = 2

	retryBaseDelay = time.Second
	retryMaxDelay  = 30 * time.Second
)

// cacheEntry is one cached load result.
type cacheEntry struct {
	verses    []domain.Verse
	fetchedAt time.Time
}

// CorpusService loads the verse corpus through a CorpusFetcher and owns
// the caller-level caching policy: results are cached per key with a
// freshness window and an eviction window, concurrent loads for the same
// key are collapsed to one fetch, and transient failures are retried
// with exponential backoff.
type CorpusService struct {
	fetcher driven.CorpusFetcher

	freshFor   time.Duration
	evictAfter time.Duration
	maxRetries int
	retryBase  time.Duration

	mu    sync.RWMutex
	cache map[string]cacheEntry

	audioOnce sync.Once
	audioIdx  domain.AudioIndex

	group singleflight.Group

	now func() time.Time
}

// CorpusOption configures a CorpusService.
type CorpusOption func(*CorpusService)

// WithCacheWindows overrides the freshness and eviction windows.
func WithCacheWindows(fresh, evict time.Duration) CorpusOption {
	return func(s *CorpusService) {
		s.freshFor = fresh
		s.evictAfter = evict
	}
}

// WithMaxRetries overrides the retry budget for upstream fetches.
func WithMaxRetries(n int) CorpusOption {
	return func(s *CorpusService) {
		s.maxRetries = n
	}
}

// WithClock overrides the time source. Useful for testing cache expiry.
func WithClock(now func() time.Time) CorpusOption {
	return func(s *CorpusService) {
		s.now = now
	}
}

// NewCorpusService creates a corpus service over the given fetcher.
func NewCorpusService(fetcher driven.CorpusFetcher, opts ...CorpusOption) *CorpusService {
	s := &CorpusService{
		fetcher:    fetcher,
		freshFor:   DefaultFreshFor,
		evictAfter: DefaultEvictAfter,
		maxRetries: DefaultMaxRetries,
		retryBase:  retryBaseDelay,
		cache:      make(map[string]cacheEntry),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadAll returns the full corpus: every partition fetched concurrently,
// failed partitions skipped, the legacy single-file resource tried when
// the merge is empty, duplicates removed, natural order restored.
func (s *CorpusService) LoadAll(ctx context.Context) ([]domain.Verse, error) {
	return s.load(ctx, keyAll, s.fetchAll)
}

// LoadBook returns the verses of one mandala.
func (s *CorpusService) LoadBook(ctx context.Context, mandala int) ([]domain.Verse, error) {
	if mandala < 1 || mandala > domain.MandalaCount {
		return nil, fmt.Errorf("%w: mandala %d out of range 1..%d",
			domain.ErrInvalidInput, mandala, domain.MandalaCount)
	}
	return s.load(ctx, keyBook(mandala), func(ctx context.Context) ([]domain.Verse, error) {
		return s.fetchBook(ctx, mandala)
	})
}

// load serves a cached entry when fresh, otherwise fetches through
// singleflight so at most one fetch per key is in flight. On fetch
// failure a stale entry inside the eviction window is served instead.
func (s *CorpusService) load(ctx context.Context, key string, fetch func(context.Context) ([]domain.Verse, error)) ([]domain.Verse, error) {
	if verses, ok := s.cached(key, s.freshFor); ok {
		logger.Debug("Cache hit for %s", key)
		return verses, nil
	}

	result, err, shared := s.group.Do(key, func() (any, error) {
		verses, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.store(key, verses)
		return verses, nil
	})
	if shared {
		logger.Debug("Shared in-flight load for %s", key)
	}
	if err != nil {
		// A stale entry still inside the eviction window beats an error.
		if verses, ok := s.cached(key, s.evictAfter); ok {
			logger.Warn("Load for %s failed, serving stale cache: %v", key, err)
			return verses, nil
		}
		return []domain.Verse{}, err
	}
	return result.([]domain.Verse), nil
}

// cached returns the entry for key if it is younger than maxAge.
func (s *CorpusService) cached(key string, maxAge time.Duration) ([]domain.Verse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[key]
	if !ok || s.now().Sub(entry.fetchedAt) >= maxAge {
		return nil, false
	}
	return entry.verses, true
}

func (s *CorpusService) store(key string, verses []domain.Verse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{verses: verses, fetchedAt: s.now()}
}

// Invalidate drops all cached data so the next load refetches.
func (s *CorpusService) Invalidate() {
	s.mu.Lock()
	s.cache = make(map[string]cacheEntry)
	s.mu.Unlock()
	logger.Info("Corpus cache invalidated")
}

// fetchAll fans out one fetch per mandala, merges whatever succeeded,
// and falls back to the legacy resource when the merge is empty.
func (s *CorpusService) fetchAll(ctx context.Context) ([]domain.Verse, error) {
	logger.Section("Corpus Load")

	type partition struct {
		mandala int
		verses  []domain.Verse
		err     error
	}

	results := make([]partition, domain.MandalaCount)
	var wg sync.WaitGroup
	for m := 1; m <= domain.MandalaCount; m++ {
		wg.Add(1)
		go func(m int) {
			defer wg.Done()
			verses, err := s.withRetry(ctx, func(ctx context.Context) ([]domain.Verse, error) {
				return s.fetcher.FetchBook(ctx, m)
			})
			results[m-1] = partition{mandala: m, verses: verses, err: err}
		}(m)
	}
	wg.Wait()

	var merged []domain.Verse
	failed := 0
	for _, p := range results {
		if p.err != nil {
			// One bad partition must not break the whole load.
			logger.Warn("Mandala %d failed: %v", p.mandala, p.err)
			failed++
			continue
		}
		logger.Debug("Mandala %d: %d verses", p.mandala, len(p.verses))
		merged = append(merged, p.verses...)
	}

	if len(merged) == 0 {
		logger.Warn("All %d partitions empty or failed, trying legacy resource", domain.MandalaCount)
		legacy, err := s.withRetry(ctx, s.fetcher.FetchLegacy)
		if err != nil {
			logger.Warn("Legacy resource failed: %v", err)
			return nil, fmt.Errorf("%w: %d partitions and legacy fallback failed",
				domain.ErrCorpusUnavailable, failed)
		}
		merged = legacy
	}

	merged = domain.DedupeVerses(merged)
	domain.SortVerses(merged)
	logger.Info("Corpus loaded: %d verses (%d partitions failed)", len(merged), failed)
	return merged, nil
}

func (s *CorpusService) fetchBook(ctx context.Context, mandala int) ([]domain.Verse, error) {
	verses, err := s.withRetry(ctx, func(ctx context.Context) ([]domain.Verse, error) {
		return s.fetcher.FetchBook(ctx, mandala)
	})
	if err != nil {
		return nil, fmt.Errorf("load mandala %d: %w", mandala, err)
	}
	verses = domain.DedupeVerses(verses)
	domain.SortVerses(verses)
	return verses, nil
}

// withRetry runs fn with bounded exponential backoff: min(1s·2^n, 30s).
func (s *CorpusService) withRetry(ctx context.Context, fn func(context.Context) ([]domain.Verse, error)) ([]domain.Verse, error) {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := s.retryBase << (attempt - 1)
			if delay > retryMaxDelay {
				delay = retryMaxDelay
			}
			logger.Debug("Retry %d after %s", attempt, delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		verses, err := fn(ctx)
		if err == nil {
			return verses, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Verse resolves a verse by ID or "mandala.sukta.verse" reference.
// A reference only needs its owning book; an opaque ID needs the full
// corpus.
func (s *CorpusService) Verse(ctx context.Context, idOrRef string) (*domain.Verse, error) {
	if ref, err := domain.ParseRef(idOrRef); err == nil {
		verses, err := s.LoadBook(ctx, ref.Mandala)
		if err != nil {
			return nil, err
		}
		for i := range verses {
			if verses[i].Ref() == ref {
				return &verses[i], nil
			}
		}
		return nil, fmt.Errorf("verse %s: %w", idOrRef, domain.ErrNotFound)
	}

	verses, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range verses {
		if verses[i].ID == idOrRef {
			return &verses[i], nil
		}
	}
	return nil, fmt.Errorf("verse %q: %w", idOrRef, domain.ErrNotFound)
}

// AudioURL returns the recitation URL for (mandala, sukta). The audio
// index is fetched once per process; a fetch failure degrades to "no
// audio" rather than an error, since absence is the normal condition.
func (s *CorpusService) AudioURL(ctx context.Context, mandala, sukta int) (string, bool, error) {
	s.audioOnce.Do(func() {
		idx, err := s.fetcher.FetchAudioIndex(ctx)
		if err != nil {
			logger.Warn("Audio index unavailable: %v", err)
			idx = domain.AudioIndex{}
		}
		s.audioIdx = idx
	})
	url, ok := s.audioIdx.Lookup(mandala, sukta)
	return url, ok, nil
}

// Geography returns the geographic reference entries.
func (s *CorpusService) Geography(ctx context.Context) ([]domain.GeographyEntry, error) {
	entries, err := s.fetcher.FetchGeography(ctx)
	if err != nil {
		return nil, fmt.Errorf("load geography: %w", err)
	}
	return entries, nil
}

// Deities returns the deity reference entries.
func (s *CorpusService) Deities(ctx context.Context) ([]domain.DeityEntry, error) {
	entries, err := s.fetcher.FetchDeities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load deities: %w", err)
	}
	return entries, nil
}

// Stats aggregates the loaded corpus.
func (s *CorpusService) Stats(ctx context.Context) (domain.CorpusStats, error) {
	verses, err := s.LoadAll(ctx)
	if err != nil {
		return domain.CorpusStats{}, err
	}
	return domain.ComputeStats(verses), nil
}

// Daily returns the featured verse for a date, chosen deterministically
// so every invocation on the same day features the same verse.
func (s *CorpusService) Daily(ctx context.Context, date time.Time) (*domain.Verse, error) {
	verses, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return nil, domain.ErrNotFound
	}

	h := fnv.New32a()
	h.Write([]byte(date.Format("2006-01-02")))
	idx := int(h.Sum32() % uint32(len(verses)))
	return &verses[idx], nil
}
