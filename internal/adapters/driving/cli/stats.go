package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	statsJSON bool
	statsTop  int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	Long: `Aggregates the loaded corpus: verse counts per mandala and the most
frequent deities, rishis, and meters.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	statsCmd.Flags().IntVar(&statsTop, "top", 5, "how many entries to show per category")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	stats, err := corpusService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("computing statistics: %w", err)
	}

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal statistics: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Total verses: %d\n\n", stats.TotalVerses)

	cmd.Println("By mandala:")
	mandalas := make([]int, 0, len(stats.ByMandala))
	for m := range stats.ByMandala {
		mandalas = append(mandalas, m)
	}
	sort.Ints(mandalas)
	for _, m := range mandalas {
		cmd.Printf("  %2d: %d\n", m, stats.ByMandala[m])
	}
	cmd.Println()

	printTopCounts(cmd, "Top deities", stats.ByDeity, statsTop)
	printTopCounts(cmd, "Top rishis", stats.ByRishi, statsTop)
	printTopCounts(cmd, "Top meters", stats.ByMeter, statsTop)

	return nil
}

// printTopCounts lists the top entries in a count map, largest first
// with names breaking ties.
func printTopCounts(cmd *cobra.Command, title string, counts map[string]int, top int) {
	if len(counts) == 0 {
		return
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	if top > len(entries) {
		top = len(entries)
	}

	cmd.Printf("%s:\n", title)
	for _, e := range entries[:top] {
		cmd.Printf("  %s: %d\n", e.name, e.count)
	}
	cmd.Println()
}
