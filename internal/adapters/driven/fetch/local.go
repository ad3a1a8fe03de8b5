package fetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
)

// Ensure LocalFetcher implements the interface.
var _ driven.CorpusFetcher = (*LocalFetcher)(nil)

// LocalFetcher reads corpus resources from a local data directory laid
// out the same way as the published one. Used with --data-dir for
// offline browsing.
type LocalFetcher struct {
	dir string
}

// NewLocalFetcher creates a fetcher rooted at the given directory.
func NewLocalFetcher(dir string) *LocalFetcher {
	return &LocalFetcher{dir: dir}
}

// Dir returns the data directory root.
func (f *LocalFetcher) Dir() string {
	return f.dir
}

// FetchBook reads one mandala partition file.
func (f *LocalFetcher) FetchBook(_ context.Context, mandala int) ([]domain.Verse, error) {
	data, err := f.read(fmt.Sprintf(partitionPathFmt, mandala))
	if err != nil {
		return nil, err
	}

	verses, err := decodeVerses(data)
	if err != nil {
		return nil, fmt.Errorf("partition %d: %w", mandala, err)
	}
	return verses, nil
}

// FetchLegacy reads the single-file corpus resource.
func (f *LocalFetcher) FetchLegacy(context.Context) ([]domain.Verse, error) {
	data, err := f.read(legacyPath)
	if err != nil {
		return nil, err
	}

	verses, err := decodeVerses(data)
	if err != nil {
		return nil, fmt.Errorf("legacy corpus: %w", err)
	}
	return verses, nil
}

// FetchAudioIndex reads the recitation URL map.
func (f *LocalFetcher) FetchAudioIndex(context.Context) (domain.AudioIndex, error) {
	data, err := f.read(audioPath)
	if err != nil {
		return nil, err
	}
	return decodeAudioIndex(data)
}

// FetchGeography reads the geographic reference entries.
func (f *LocalFetcher) FetchGeography(context.Context) ([]domain.GeographyEntry, error) {
	data, err := f.read(geographyPath)
	if err != nil {
		return nil, err
	}
	return decodeGeography(data)
}

// FetchDeities reads the deity reference entries.
func (f *LocalFetcher) FetchDeities(context.Context) ([]domain.DeityEntry, error) {
	data, err := f.read(deitiesPath)
	if err != nil {
		return nil, err
	}
	return decodeDeities(data)
}

func (f *LocalFetcher) read(rel string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, filepath.FromSlash(rel)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", rel, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	return data, nil
}
