package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

var (
	browseMandala int
	browseSukta   int
	browseDeity   string
	browseRishi   string
	browseMeter   string
	browseTheme   string
	browseQuery   string
	browseJSON    bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse verses with filters",
	Long: `Lists verses matching a combination of filters. All given filters
must match. When --query is set the other filters narrow its search
results; a query that matches nothing falls back to filtering the
full collection.

Examples:
  rigveda browse --mandala 1
  rigveda browse --deity Agni --meter Gayatri
  rigveda browse --mandala 10 --query creation`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().IntVarP(&browseMandala, "mandala", "m", 0, "mandala number (1-10)")
	browseCmd.Flags().IntVarP(&browseSukta, "sukta", "s", 0, "sukta (hymn) number within the mandala")
	browseCmd.Flags().StringVar(&browseDeity, "deity", "", "primary deity name")
	browseCmd.Flags().StringVar(&browseRishi, "rishi", "", "rishi (sage) name")
	browseCmd.Flags().StringVar(&browseMeter, "meter", "", "vedic meter")
	browseCmd.Flags().StringVar(&browseTheme, "theme", "", "theme tag")
	browseCmd.Flags().StringVarP(&browseQuery, "query", "q", "", "free-text query combined with the filters")
	browseCmd.Flags().BoolVar(&browseJSON, "json", false, "output verses as JSON")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	spec := domain.FilterSpec{
		Mandala: browseMandala,
		Sukta:   browseSukta,
		Deity:   browseDeity,
		Rishi:   browseRishi,
		Meter:   browseMeter,
		Theme:   browseTheme,
		Query:   browseQuery,
	}

	verses, err := searchService.Browse(cmd.Context(), spec)
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}

	if browseJSON {
		data, err := json.MarshalIndent(verses, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal verses: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(verses) == 0 {
		cmd.Println("No verses match.")
		return nil
	}

	cmd.Printf("Verses (%d):\n\n", len(verses))
	for i := range verses {
		v := &verses[i]
		cmd.Printf("  %s\n", verseHeading(v))
		if line := verseSnippet(v); line != "" {
			cmd.Printf("  %s\n", line)
		}
		cmd.Println()
	}

	return nil
}
