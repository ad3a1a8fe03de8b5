// Command rigveda is a terminal companion for the Rigveda: search,
// browse, bookmark, and read the corpus from the command line or the
// interactive TUI.
package main

import (
	"fmt"
	"os"

	"github.com/riklabs/rigveda-cli/internal/adapters/driven/config/file"
	"github.com/riklabs/rigveda-cli/internal/adapters/driven/fetch"
	"github.com/riklabs/rigveda-cli/internal/adapters/driven/index/bleve"
	"github.com/riklabs/rigveda-cli/internal/adapters/driven/storage/memory"
	"github.com/riklabs/rigveda-cli/internal/adapters/driven/storage/sqlite"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/cli"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
	"github.com/riklabs/rigveda-cli/internal/core/services"
	"github.com/riklabs/rigveda-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// defaultBaseURL is the published corpus data directory.
const defaultBaseURL = "https://rigveda-data.riklabs.dev/data"

func main() {
	cli.SetInitializer(initServices)

	if err := cli.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initServices builds the driven adapters and core services and wires
// them into the command tree. Storage failures degrade to in-memory
// stores rather than refusing to start.
func initServices(baseURL, dataDir string) error {
	configStore, err := file.NewConfigStore("")
	var cfg driven.ConfigStore = configStore
	if err != nil {
		logger.Warn("config store unavailable, settings will not persist: %v", err)
		cfg = memory.NewConfigStore()
	}

	var (
		historyStore  driven.HistoryStore
		bookmarkStore driven.BookmarkStore
	)
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("sqlite store unavailable, history and bookmarks will not persist: %v", err)
		historyStore = memory.NewHistoryStore()
		bookmarkStore = memory.NewBookmarkStore()
	} else {
		historyStore = store.HistoryStore()
		bookmarkStore = store.BookmarkStore()
	}

	var fetcher driven.CorpusFetcher
	if dataDir != "" {
		fetcher = fetch.NewLocalFetcher(dataDir)
	} else {
		fetcher = fetch.NewHTTPFetcher(resolveBaseURL(baseURL, cfg))
	}

	corpusService := services.NewCorpusService(fetcher)
	historyService := services.NewHistoryService(historyStore, services.DefaultHistoryLimit)
	searchService := services.NewSearchService(corpusService, bleve.New(), historyService)

	if dataDir != "" {
		// Invalidate cached snapshots when the local corpus changes.
		// The watcher lives for the process; best effort only.
		if _, err := fetch.NewWatcher(dataDir, corpusService.Invalidate); err != nil {
			logger.Warn("corpus watcher unavailable: %v", err)
		}
	}

	cli.Wire(cli.Services{
		Corpus:    corpusService,
		Search:    searchService,
		History:   historyService,
		Bookmarks: services.NewBookmarkService(bookmarkStore),
		Settings:  services.NewSettingsService(cfg),
	})

	return nil
}

// resolveBaseURL picks the corpus base: the flag, then the persisted
// config, then the default.
func resolveBaseURL(flagValue string, cfg driven.ConfigStore) string {
	if flagValue != "" {
		return flagValue
	}
	if s := cfg.GetString("base_url"); s != "" {
		return s
	}
	return defaultBaseURL
}
