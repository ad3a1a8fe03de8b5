package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [verse]",
	Short: "Show a single verse",
	Long: `Displays one verse in full: Sanskrit, transliteration, translations,
and metadata. The verse may be given as an ID (rv.1.1.1) or a
mandala.sukta.verse reference (1.1.1).

Which scripts are shown follows the reading settings (see
'rigveda settings').`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the verse as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	verse, err := corpusService.Verse(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	if showJSON {
		data, err := json.MarshalIndent(verse, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal verse: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printVerse(cmd, verse)
	return nil
}

func printVerse(cmd *cobra.Command, v *domain.Verse) {
	settings := domain.DefaultReadingSettings()
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			settings = s
		}
	}

	cmd.Printf("%s\n", verseHeading(v))
	if r := v.Metadata.Rishi.Name; r != "" {
		cmd.Printf("Rishi: %s\n", r)
	}
	cmd.Println()

	if settings.Script != domain.ScriptIAST && v.Text.Sanskrit != "" {
		cmd.Printf("  %s\n", v.Text.Sanskrit)
	}
	if settings.Script != domain.ScriptDevanagari && v.Text.IAST != "" {
		cmd.Printf("  %s\n", v.Text.IAST)
	}
	cmd.Println()

	if tr, ok := v.TranslationBy(settings.Translation); ok {
		cmd.Printf("  %s\n", tr.Text)
		if tr.Translator != "" {
			cmd.Printf("  (%s)\n", tr.Translator)
		}
		cmd.Println()
	}

	if len(v.Themes) > 0 {
		cmd.Printf("Themes: %v\n", v.Themes)
	}

	if bookmarkService != nil {
		if marked, err := bookmarkService.IsBookmarked(cmd.Context(), v.ID); err == nil && marked {
			cmd.Println("Bookmarked.")
		}
	}
}
