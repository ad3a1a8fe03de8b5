package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

var (
	searchLimit  int
	searchOffset int
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the corpus",
	Long: `Performs a ranked fuzzy search across Sanskrit text, transliteration,
English translations, deity names, rishi names, and themes.

The query is recorded in search history (see 'rigveda history').`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "skip the first N results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Limit:  searchLimit,
		Offset: searchOffset,
	}

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	// History failures never fail the search itself.
	if historyService != nil {
		if err := historyService.Record(cmd.Context(), query); err != nil {
			cmd.PrintErrf("Warning: could not record history: %v\n", err)
		}
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d):\n\n", len(results))
	for i := range results {
		v := &results[i].Verse
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, verseHeading(v), results[i].Score)
		if line := verseSnippet(v); line != "" {
			cmd.Printf("      %s\n", line)
		}
		cmd.Println()
	}

	return nil
}

// verseHeading is the one-line identification of a verse: reference
// plus deity and meter when known.
func verseHeading(v *domain.Verse) string {
	heading := v.Ref().String()
	if d := v.Metadata.Deity.Primary; d != "" {
		heading += " · " + d
	}
	if m := v.Metadata.Meter; m != "" {
		heading += " · " + m
	}
	return heading
}

// verseSnippet picks the best single display line for result lists:
// the preferred translation when available, otherwise transliteration,
// otherwise the Sanskrit original.
func verseSnippet(v *domain.Verse) string {
	if tr, ok := v.TranslationBy(preferredTranslator()); ok {
		return tr.Text
	}
	if v.Text.IAST != "" {
		return v.Text.IAST
	}
	return v.Text.Sanskrit
}

// preferredTranslator reads the user's translation preference, falling
// back to the default when settings are unavailable.
func preferredTranslator() string {
	if settingsService == nil {
		return domain.DefaultReadingSettings().Translation
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.DefaultReadingSettings().Translation
	}
	return settings.Translation
}
