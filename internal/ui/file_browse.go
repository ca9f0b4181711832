package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/qr-creator/internal/config"
	"github.com/ytget/qr-creator/internal/logger"
	"github.com/ytget/qr-creator/internal/platform"
)

// FileBrowse holds the save-location controls: chooser button, subfolder
// toggle, resolved path display and a button revealing the folder
type FileBrowse struct {
	window       fyne.Window
	savePath     *config.SavePath
	localization *Localization

	browseBtn     *widget.Button
	subfolder     *widget.Check
	openFolderBtn *widget.Button
	pathDisplay   *widget.Label
	container     *fyne.Container
}

// NewFileBrowse creates the save-location panel
func NewFileBrowse(window fyne.Window, savePath *config.SavePath, localization *Localization) *FileBrowse {
	fb := &FileBrowse{
		window:       window,
		savePath:     savePath,
		localization: localization,
	}

	// Long paths are elided by the label itself when the window is narrow
	fb.pathDisplay = widget.NewLabel("")
	fb.pathDisplay.TextStyle = fyne.TextStyle{Bold: true}
	fb.pathDisplay.Truncation = fyne.TextTruncateEllipsis

	fb.browseBtn = widget.NewButton(localization.GetText(KeyChangeLocation), fb.onBrowse)
	fb.subfolder = widget.NewCheck(localization.GetText(KeyCreateSubfolder), fb.onSubfolderToggled)
	// Assigned directly so construction does not go through the toggle handler
	fb.subfolder.Checked = savePath.UseSubfolder()

	fb.openFolderBtn = widget.NewButton(fb.openFolderText(), fb.onOpenFolder)
	fb.openFolderBtn.Importance = widget.LowImportance

	controls := container.NewGridWithColumns(2, fb.browseBtn, fb.subfolder)
	pathRow := container.NewBorder(nil, nil, nil, fb.openFolderBtn, fb.pathDisplay)
	fb.container = container.NewVBox(controls, pathRow)

	fb.updateDisplay()
	return fb
}

// Container returns the panel canvas object
func (fb *FileBrowse) Container() fyne.CanvasObject {
	return fb.container
}

// SavePath returns the currently resolved save directory
func (fb *FileBrowse) SavePath() string {
	return fb.savePath.Resolve()
}

// PathText returns the text shown in the path display
func (fb *FileBrowse) PathText() string {
	return fb.pathDisplay.Text
}

// SetBase applies a directory picked in the chooser
func (fb *FileBrowse) SetBase(path string) {
	fb.savePath.SetBase(path)
	logger.L().Debug("save location changed", zap.String(logger.KeyPath, fb.savePath.Resolve()))
	fb.updateDisplay()
}

// RefreshTexts updates labels after a language change
func (fb *FileBrowse) RefreshTexts() {
	fb.browseBtn.SetText(fb.localization.GetText(KeyChangeLocation))
	fb.subfolder.Text = fb.localization.GetText(KeyCreateSubfolder)
	fb.subfolder.Refresh()
	fb.openFolderBtn.SetText(fb.openFolderText())
}

// openFolderText returns the label of the open-folder button
func (fb *FileBrowse) openFolderText() string {
	return IconFolder + " " + fb.localization.GetText(KeyOpenFolder)
}

// onBrowse opens the folder chooser
func (fb *FileBrowse) onBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			logger.L().Warn("folder dialog failed", zap.Error(err))
			return
		}
		if uri == nil {
			return
		}
		fb.SetBase(uri.Path())
	}, fb.window)
}

// onSubfolderToggled handles the subfolder checkbox
func (fb *FileBrowse) onSubfolderToggled(checked bool) {
	fb.savePath.SetUseSubfolder(checked)
	fb.updateDisplay()
}

// onOpenFolder reveals the save directory in the system file manager
func (fb *FileBrowse) onOpenFolder() {
	dir := fb.savePath.Resolve()
	if err := platform.OpenFolder(dir); err != nil {
		logger.L().Warn("failed to open folder", zap.String(logger.KeyPath, dir), zap.Error(err))
		dialog.ShowInformation(fb.localization.GetText(KeyErrorOpeningFolder), err.Error(), fb.window)
	}
}

// updateDisplay shows the resolved save path
func (fb *FileBrowse) updateDisplay() {
	fb.pathDisplay.SetText(fb.savePath.Resolve())
}
