package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	dailyDate string
	dailyJSON bool
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the verse of the day",
	Long: `Picks a featured verse for today. The pick is deterministic: the
same date always yields the same verse.`,
	RunE: runDaily,
}

func init() {
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "pick for a specific date (YYYY-MM-DD)")
	dailyCmd.Flags().BoolVar(&dailyJSON, "json", false, "output the verse as JSON")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	date := time.Now()
	if dailyDate != "" {
		parsed, err := time.Parse("2006-01-02", dailyDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dailyDate)
		}
		date = parsed
	}

	verse, err := corpusService.Daily(cmd.Context(), date)
	if err != nil {
		return fmt.Errorf("picking daily verse: %w", err)
	}

	if dailyJSON {
		data, err := json.MarshalIndent(verse, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal verse: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Verse of the day (%s)\n\n", date.Format("2006-01-02"))
	printVerse(cmd, verse)
	return nil
}
