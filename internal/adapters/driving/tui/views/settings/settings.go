// Package settings provides the reading preferences view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/messages"
	"github.com/riklabs/rigveda-cli/internal/adapters/driving/tui/styles"
	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
)

// Field identifies one editable preference row.
type Field int

const (
	FieldScript Field = iota
	FieldTranslation
	FieldFontSize
	FieldLineSpacing
	FieldMode
	FieldAutoPlay
	FieldSpeed
	FieldVolume

	fieldCount
)

var scriptCycle = []domain.Script{
	domain.ScriptDevanagari,
	domain.ScriptIAST,
	domain.ScriptBoth,
}

var modeCycle = []domain.ReadingMode{
	domain.ReadingModeScroll,
	domain.ReadingModeCard,
	domain.ReadingModeParallel,
}

var translatorCycle = []string{
	domain.TranslatorGriffith,
	domain.TranslatorJamisonBrereton,
	domain.TranslatorWilson,
}

// View is the reading preferences view. Left/right cycle the selected
// field's value; changes persist on save.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings domain.ReadingSettings
	selected Field
	dirty    bool
	saved    bool
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		settings:        domain.DefaultReadingSettings(),
		width:           80,
		height:          24,
	}
}

// Init loads the persisted settings.
func (v *View) Init() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Settings: domain.DefaultReadingSettings()}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.settings = msg.Settings
		v.err = nil
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.dirty = false
		v.saved = true
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < fieldCount-1 {
			v.selected++
		}
	case "left", "h":
		v.adjust(-1)
	case "right", "l":
		v.adjust(1)
	case "enter", "s":
		return v, v.save()
	}

	return v, nil
}

// adjust cycles or steps the selected field's value.
func (v *View) adjust(dir int) {
	v.saved = false
	v.dirty = true

	switch v.selected {
	case FieldScript:
		v.settings.Script = cycle(scriptCycle, v.settings.Script, dir)
	case FieldTranslation:
		v.settings.Translation = cycle(translatorCycle, v.settings.Translation, dir)
	case FieldFontSize:
		v.settings.FontSize += dir
		if v.settings.FontSize < 8 {
			v.settings.FontSize = 8
		}
	case FieldLineSpacing:
		v.settings.LineSpacing += 0.1 * float64(dir)
		if v.settings.LineSpacing < 1 {
			v.settings.LineSpacing = 1
		}
	case FieldMode:
		v.settings.Mode = cycle(modeCycle, v.settings.Mode, dir)
	case FieldAutoPlay:
		v.settings.AudioAutoPlay = !v.settings.AudioAutoPlay
	case FieldSpeed:
		v.settings.AudioSpeed += 0.25 * float64(dir)
		if v.settings.AudioSpeed < 0.25 {
			v.settings.AudioSpeed = 0.25
		}
	case FieldVolume:
		v.settings.AudioVolume += 0.1 * float64(dir)
		if v.settings.AudioVolume < 0 {
			v.settings.AudioVolume = 0
		}
		if v.settings.AudioVolume > 1 {
			v.settings.AudioVolume = 1
		}
	}
}

// cycle steps through a value list, wrapping at both ends.
func cycle[T comparable](values []T, current T, dir int) T {
	idx := 0
	for i, val := range values {
		if val == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(values)) % len(values)
	return values[idx]
}

// save persists the current settings.
func (v *View) save() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{}
		}
		return messages.SettingsSaved{Err: v.settingsService.Save(v.settings)}
	}
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	rows := []struct {
		field Field
		label string
		value string
	}{
		{FieldScript, "Script", string(v.settings.Script)},
		{FieldTranslation, "Translation", v.settings.Translation},
		{FieldFontSize, "Font size", fmt.Sprintf("%d", v.settings.FontSize)},
		{FieldLineSpacing, "Line spacing", fmt.Sprintf("%.1f", v.settings.LineSpacing)},
		{FieldMode, "Reading mode", string(v.settings.Mode)},
		{FieldAutoPlay, "Audio autoplay", fmt.Sprintf("%t", v.settings.AudioAutoPlay)},
		{FieldSpeed, "Audio speed", fmt.Sprintf("%.2f", v.settings.AudioSpeed)},
		{FieldVolume, "Audio volume", fmt.Sprintf("%.1f", v.settings.AudioVolume)},
	}

	for _, row := range rows {
		cursor := "  "
		line := fmt.Sprintf("%-16s %s", row.label, row.value)
		if row.field == v.selected {
			cursor = "> "
			b.WriteString(cursor + v.styles.Selected.Render(line))
		} else {
			b.WriteString(cursor + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case v.saved:
		b.WriteString(v.styles.Success.Render("Saved"))
	case v.dirty:
		b.WriteString(v.styles.Warning.Render("Unsaved changes"))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[h/l] Change  [j/k] Navigate  [Enter] Save  [esc] Menu"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Settings returns the current in-memory settings.
func (v *View) Settings() domain.ReadingSettings {
	return v.settings
}

// Selected returns the selected field.
func (v *View) Selected() Field {
	return v.selected
}

// Dirty reports whether there are unsaved changes.
func (v *View) Dirty() bool {
	return v.dirty
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears transient state; settings reload on Init.
func (v *View) Reset() {
	v.selected = FieldScript
	v.dirty = false
	v.saved = false
	v.err = nil
}
