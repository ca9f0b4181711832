package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/qr-creator/internal/config"
	"github.com/ytget/qr-creator/internal/model"
)

// SettingsDialog edits the session's rendering settings
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onChanged    func()

	// UI components
	levelSelect  *widget.Select
	boxSizeEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog. onChanged runs after a save.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onChanged func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onChanged:    onChanged,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	levelOptions := []string{}
	for _, level := range sd.settings.GetLevelOptions() {
		levelOptions = append(levelOptions, string(level))
	}
	sd.levelSelect = widget.NewSelect(levelOptions, nil)

	sd.boxSizeEntry = widget.NewEntry()
	sd.boxSizeEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinBoxSize, config.MaxBoxSize))
	sd.boxSizeEntry.Validator = validateBoxSize

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyErrorCorrection)+":"),
		sd.levelSelect,

		widget.NewLabel(sd.localization.GetText(KeyBoxSize)+":"),
		sd.boxSizeEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.levelSelect.SetSelected(string(sd.settings.GetLevel()))
	sd.boxSizeEntry.SetText(strconv.Itoa(sd.settings.GetBoxSize()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.levelSelect.Selected != "" {
		sd.settings.SetLevel(model.ErrorCorrection(sd.levelSelect.Selected))
	}

	if text := strings.TrimSpace(sd.boxSizeEntry.Text); text != "" {
		size, err := strconv.Atoi(text)
		if err != nil {
			dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeyInvalidBoxSize), sd.window)
			return
		}
		sd.settings.SetBoxSize(size)
	}

	if sd.onChanged != nil {
		sd.onChanged()
	}
}

// validateBoxSize validates the box size entry
func validateBoxSize(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	size, err := strconv.Atoi(input)
	if err != nil {
		return fmt.Errorf("not a number: %q", input)
	}
	if size < config.MinBoxSize || size > config.MaxBoxSize {
		return fmt.Errorf("must be between %d and %d", config.MinBoxSize, config.MaxBoxSize)
	}
	return nil
}
