// Package cli implements the cobra command tree. Commands talk to the
// core exclusively through the driving ports; wiring happens in main
// (or in tests, which inject mocks via Wire).
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
	"github.com/riklabs/rigveda-cli/internal/logger"
)

// version is set by Execute.
var version = "dev"

// Global flags.
var (
	flagVerbose bool
	flagBaseURL string
	flagDataDir string
)

// Services used by the commands. Wired once at startup.
var (
	corpusService   driving.CorpusService
	searchService   driving.SearchService
	historyService  driving.HistoryService
	bookmarkService driving.BookmarkService
	settingsService driving.SettingsService
)

// Services bundles the driving ports the command tree depends on.
type Services struct {
	Corpus    driving.CorpusService
	Search    driving.SearchService
	History   driving.HistoryService
	Bookmarks driving.BookmarkService
	Settings  driving.SettingsService
}

// Wire injects the services the commands call.
func Wire(s Services) {
	corpusService = s.Corpus
	searchService = s.Search
	historyService = s.History
	bookmarkService = s.Bookmarks
	settingsService = s.Settings
}

// initServices builds the real services on first use. main assigns it;
// tests leave it nil and Wire mocks instead.
var initServices func(baseURL, dataDir string) error

// SetInitializer registers the service builder run before any command.
func SetInitializer(fn func(baseURL, dataDir string) error) {
	initServices = fn
}

var rootCmd = &cobra.Command{
	Use:   "rigveda",
	Short: "Browse and search the Rigveda from your terminal",
	Long: `A fast terminal companion for the Rigveda: search across Sanskrit,
transliteration, and English translations; browse by mandala, deity,
rishi, meter, or theme; bookmark verses and listen to recitations.

The corpus is fetched from the published data directory and cached
locally. Use --data-dir to browse an offline copy instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		if corpusService == nil && initServices != nil {
			return initServices(flagBaseURL, flagDataDir)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation on a terminal opens the TUI.
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "corpus base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "local corpus data directory (offline mode)")
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
