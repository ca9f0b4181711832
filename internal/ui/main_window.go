package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/qr-creator/internal/config"
	"github.com/ytget/qr-creator/internal/logger"
	"github.com/ytget/qr-creator/internal/model"
	"github.com/ytget/qr-creator/internal/process"
	"github.com/ytget/qr-creator/internal/qrcode"
)

// MainWindow represents the main UI structure
type MainWindow struct {
	window       fyne.Window
	processor    process.Processor
	settings     *config.Settings
	localization *Localization

	dataEntry      *widget.Entry
	generateBtn    *widget.Button
	preview        *LivePreview
	fileBrowse     *FileBrowse
	statusLabel    *widget.Label
	settingsDialog *SettingsDialog
}

// NewMainWindow creates and initializes the main UI. initialData prefills the entry.
func NewMainWindow(window fyne.Window, processor process.Processor, savePath *config.SavePath, settings *config.Settings, initialData string) *MainWindow {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	mw := &MainWindow{
		window:       window,
		processor:    processor,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	processor.SetReporter(&statusReporter{mw: mw})

	mw.setupUI(savePath)
	mw.dataEntry.SetText(initialData)
	return mw
}

// setupUI creates and arranges all UI components
func (mw *MainWindow) setupUI(savePath *config.SavePath) {
	mw.createMenu()

	mw.preview = NewLivePreview(mw.localization.GetText(KeyNothingToPreview))

	mw.dataEntry = widget.NewEntry()
	mw.dataEntry.SetPlaceHolder(mw.localization.GetText(KeyDataPlaceholder))
	// Enter in the entry and the button share one handler
	mw.dataEntry.OnSubmitted = func(string) {
		mw.Submit()
	}

	mw.generateBtn = widget.NewButton(mw.localization.GetText(KeyGenerate), mw.Submit)
	mw.generateBtn.Importance = widget.HighImportance

	mw.fileBrowse = NewFileBrowse(mw.window, savePath, mw.localization)

	mw.statusLabel = widget.NewLabel(mw.localization.GetText(KeyStatusReady))
	mw.statusLabel.Truncation = fyne.TextTruncateEllipsis

	mw.settingsDialog = NewSettingsDialog(mw.settings, mw.localization, mw.window, mw.onSettingsChanged)

	settingsBtn := widget.NewButton(IconSettings, mw.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	actionRow := container.NewBorder(nil, nil, nil, settingsBtn, mw.generateBtn)

	content := container.NewVBox(
		mw.preview.Container(),
		mw.dataEntry,
		mw.fileBrowse.Container(),
		actionRow,
		mw.statusLabel,
	)

	mw.window.SetContent(container.NewPadded(content))
	mw.window.Canvas().Focus(mw.dataEntry)
}

// createMenu creates the application menu
func (mw *MainWindow) createMenu() {
	settingsItem := fyne.NewMenuItem(mw.localization.GetText(KeySettings), mw.onShowSettings)

	languageMenu := fyne.NewMenu(mw.localization.GetText(KeyLanguage))
	for code, name := range mw.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			mw.onLanguageChange(langCode)
		})
		langItem.Checked = mw.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mw.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(mw.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// Submit generates QR codes for the entry text, saves them, shows the last
// one in the preview and clears the entry
func (mw *MainWindow) Submit() {
	input := mw.dataEntry.Text
	savePath := mw.fileBrowse.SavePath()

	result, err := mw.processor.Submit(input, savePath)
	if err != nil {
		logger.L().Error("submit failed", zap.String(logger.KeyPath, savePath), zap.Error(err))
		mw.statusLabel.SetText(mw.localization.GetText(KeyErrorGenerating))
		dialog.ShowError(err, mw.window)
		return
	}
	if result == nil {
		return // ignore empty inputs
	}

	if result.Last != nil {
		img, err := qrcode.DecodePNG(result.Last)
		if err != nil {
			logger.L().Warn("preview unavailable", zap.Error(err))
		} else {
			mw.preview.SetImage(img)
		}
	}
	mw.dataEntry.SetText("")
}

// Preview returns the live preview
func (mw *MainWindow) Preview() *LivePreview {
	return mw.preview
}

// FileBrowse returns the save-location panel
func (mw *MainWindow) FileBrowse() *FileBrowse {
	return mw.fileBrowse
}

// onShowSettings shows the settings dialog
func (mw *MainWindow) onShowSettings() {
	mw.settingsDialog.Show()
}

// onSettingsChanged rebuilds the encoder with the new settings
func (mw *MainWindow) onSettingsChanged() {
	mw.processor.SetEncoder(qrcode.NewGenerator(mw.settings.GetLevel(), mw.settings.GetBoxSize()))
	logger.L().Info("settings changed",
		zap.String("level", string(mw.settings.GetLevel())),
		zap.Int("box_size", mw.settings.GetBoxSize()),
	)
	mw.statusLabel.SetText(mw.localization.GetText(KeySettingsSaved))
}

// onLanguageChange handles language change
func (mw *MainWindow) onLanguageChange(langCode string) {
	mw.localization.SetLanguage(langCode)
	mw.settings.SetLanguage(langCode)
	mw.refreshUITexts()
	mw.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (mw *MainWindow) refreshUITexts() {
	mw.window.SetTitle(mw.localization.GetText(KeyAppTitle))
	mw.dataEntry.SetPlaceHolder(mw.localization.GetText(KeyDataPlaceholder))
	mw.generateBtn.SetText(mw.localization.GetText(KeyGenerate))
	mw.preview.SetPlaceholder(mw.localization.GetText(KeyNothingToPreview))
	mw.fileBrowse.RefreshTexts()
	// Settings dialog captures texts on creation
	mw.settingsDialog = NewSettingsDialog(mw.settings, mw.localization, mw.window, mw.onSettingsChanged)
}

// statusReporter mirrors run progress in the status label
type statusReporter struct {
	mw *MainWindow
}

func (r *statusReporter) NoData() {}

func (r *statusReporter) Start(int) {}

func (r *statusReporter) Item(text string) {
	logger.L().Debug("generating", zap.String(logger.KeyItem, text))
}

func (r *statusReporter) Done(result *model.Result) {
	count := 0
	for _, item := range result.Items {
		if item.Status.IsSuccess() {
			count++
		}
	}
	key := KeyStatusSaved
	if r.mw.processor.DryRun() {
		key = KeyStatusDryRun
	}
	r.mw.statusLabel.SetText(fmt.Sprintf(r.mw.localization.GetText(key), count))
}
