package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var audioCmd = &cobra.Command{
	Use:   "audio [mandala] [sukta]",
	Short: "Show the recitation URL for a hymn",
	Long: `Prints the recitation audio URL for a hymn, when a recording exists.
Not every hymn has audio; absence is reported, not treated as an
error.`,
	Args: cobra.ExactArgs(2),
	RunE: runAudio,
}

func init() {
	rootCmd.AddCommand(audioCmd)
}

func runAudio(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	mandala, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid mandala %q", args[0])
	}
	sukta, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid sukta %q", args[1])
	}

	url, ok, err := corpusService.AudioURL(cmd.Context(), mandala, sukta)
	if err != nil {
		return fmt.Errorf("looking up audio: %w", err)
	}
	if !ok {
		cmd.Printf("No recording for %d.%d.\n", mandala, sukta)
		return nil
	}

	cmd.Println(url)
	return nil
}
