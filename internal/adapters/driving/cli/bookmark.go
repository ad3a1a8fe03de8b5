package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage bookmarked verses",
	Long: `Save verses for later reading. Verses may be given as IDs (rv.1.1.1)
or mandala.sukta.verse references (1.1.1).`,
	RunE: runBookmarkList,
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked verses, newest first",
	RunE:  runBookmarkList,
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add [verse]",
	Short: "Bookmark a verse",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkAdd,
}

var bookmarkRemoveCmd = &cobra.Command{
	Use:   "remove [verse]",
	Short: "Remove a verse's bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkRemove,
}

var bookmarkToggleCmd = &cobra.Command{
	Use:   "toggle [verse]",
	Short: "Toggle a verse's bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkToggle,
}

func init() {
	bookmarkCmd.AddCommand(bookmarkListCmd)
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkRemoveCmd)
	bookmarkCmd.AddCommand(bookmarkToggleCmd)
	rootCmd.AddCommand(bookmarkCmd)
}

// resolveVerseID accepts an ID or reference and returns the canonical
// verse ID, verifying the verse exists when the corpus is reachable.
func resolveVerseID(cmd *cobra.Command, arg string) (string, error) {
	if corpusService == nil {
		return arg, nil
	}
	verse, err := corpusService.Verse(cmd.Context(), arg)
	if err != nil {
		return "", err
	}
	return verse.ID, nil
}

func runBookmarkList(cmd *cobra.Command, _ []string) error {
	if bookmarkService == nil {
		return errors.New("bookmark service not configured")
	}

	bookmarks, err := bookmarkService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing bookmarks: %w", err)
	}

	if len(bookmarks) == 0 {
		cmd.Println("No bookmarks.")
		return nil
	}

	for _, b := range bookmarks {
		cmd.Printf("  %s  (saved %s)\n", b.VerseID, b.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runBookmarkAdd(cmd *cobra.Command, args []string) error {
	if bookmarkService == nil {
		return errors.New("bookmark service not configured")
	}

	id, err := resolveVerseID(cmd, args[0])
	if err != nil {
		return err
	}
	if err := bookmarkService.Add(cmd.Context(), id); err != nil {
		return fmt.Errorf("adding bookmark: %w", err)
	}
	cmd.Printf("Bookmarked %s.\n", id)
	return nil
}

func runBookmarkRemove(cmd *cobra.Command, args []string) error {
	if bookmarkService == nil {
		return errors.New("bookmark service not configured")
	}

	id, err := resolveVerseID(cmd, args[0])
	if err != nil {
		return err
	}
	if err := bookmarkService.Remove(cmd.Context(), id); err != nil {
		return fmt.Errorf("removing bookmark: %w", err)
	}
	cmd.Printf("Removed bookmark for %s.\n", id)
	return nil
}

func runBookmarkToggle(cmd *cobra.Command, args []string) error {
	if bookmarkService == nil {
		return errors.New("bookmark service not configured")
	}

	id, err := resolveVerseID(cmd, args[0])
	if err != nil {
		return err
	}
	bookmarked, err := bookmarkService.Toggle(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("toggling bookmark: %w", err)
	}
	if bookmarked {
		cmd.Printf("Bookmarked %s.\n", id)
	} else {
		cmd.Printf("Removed bookmark for %s.\n", id)
	}
	return nil
}
