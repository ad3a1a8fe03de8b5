package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsJSON bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show reading preferences",
	Long: `Displays the current reading preferences: script, preferred
translator, layout, and audio playback options.

Use "settings set <key> <value>" to change a preference.`,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single preference",
	Long: `Updates one preference by key. Recognised keys:

  script        devanagari | iast | both
  translation   preferred translator name
  font_size     display font size in points
  line_spacing  line spacing multiplier
  reading_mode  scroll | card | parallel
  audio_auto_play  true | false
  audio_speed   playback rate multiplier
  audio_volume  playback volume (0..1)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default preferences",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.Flags().BoolVar(&settingsJSON, "json", false, "output settings as JSON")
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	if settingsJSON {
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("script:          %s (%s)\n", settings.Script, settings.Script.Description())
	cmd.Printf("translation:     %s\n", settings.Translation)
	cmd.Printf("font_size:       %d\n", settings.FontSize)
	cmd.Printf("line_spacing:    %.2f\n", settings.LineSpacing)
	cmd.Printf("reading_mode:    %s\n", settings.Mode)
	cmd.Printf("audio_auto_play: %t\n", settings.AudioAutoPlay)
	cmd.Printf("audio_speed:     %.2f\n", settings.AudioSpeed)
	cmd.Printf("audio_volume:    %.2f\n", settings.AudioVolume)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("updating %s: %w", key, err)
	}

	cmd.Printf("Set %s to %s.\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Save(settingsService.GetDefaults()); err != nil {
		return fmt.Errorf("resetting settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}
