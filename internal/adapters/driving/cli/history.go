package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search queries",
	Long: `Lists recent search queries, most recent first. The history keeps the
last ten distinct queries; repeating a query moves it to the front.`,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the search history",
	RunE:  runHistoryClear,
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove [query]",
	Short: "Remove one query from the history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRemove,
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	entries, err := historyService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No search history.")
		return nil
	}

	for i, entry := range entries {
		cmd.Printf("  %d. %s\n", i+1, entry)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	cmd.Println("Search history cleared.")
	return nil
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("removing history entry: %w", err)
	}
	cmd.Printf("Removed %q from history.\n", args[0])
	return nil
}
