package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/qr-creator/internal/config"
)

func TestFileBrowse_SetBaseAndToggle(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	defer window.Close()

	first, _ := filepath.EvalSymlinks(t.TempDir())
	second, _ := filepath.EvalSymlinks(t.TempDir())
	savePath := config.NewSavePath(first, "")
	fb := NewFileBrowse(window, savePath, NewLocalization())

	if fb.PathText() != first {
		t.Errorf("Expected path %s, got %s", first, fb.PathText())
	}

	fb.SetBase(second)
	if fb.PathText() != second || fb.SavePath() != second {
		t.Errorf("Expected path %s after SetBase, got %s", second, fb.PathText())
	}

	test.Tap(fb.subfolder)
	expected := filepath.Join(second, config.DefaultSubfolderName)
	if fb.PathText() != expected {
		t.Errorf("Expected path %s with subfolder, got %s", expected, fb.PathText())
	}

	test.Tap(fb.subfolder)
	if fb.PathText() != second {
		t.Errorf("Expected path %s after unchecking, got %s", second, fb.PathText())
	}
}

func TestValidateBoxSize(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"10", false},
		{" 4 ", false},
		{"0", true},
		{"51", true},
		{"abc", true},
	}

	for _, test := range tests {
		err := validateBoxSize(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("validateBoxSize(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
		}
	}
}

func TestFileBrowse_SubfolderPreEnabled(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	defer window.Close()

	base, _ := filepath.EvalSymlinks(t.TempDir())
	savePath := config.NewSavePath(base, "")
	savePath.SetUseSubfolder(true)

	fb := NewFileBrowse(window, savePath, NewLocalization())

	if !fb.subfolder.Checked {
		t.Error("Checkbox should reflect the enabled subfolder")
	}
	expected := filepath.Join(base, config.DefaultSubfolderName)
	if fb.PathText() != expected {
		t.Errorf("Expected path %s, got %s", expected, fb.PathText())
	}

	test.Tap(fb.subfolder)
	if fb.PathText() != base || savePath.UseSubfolder() {
		t.Errorf("Unchecking should drop the subfolder, got %s", fb.PathText())
	}
}

func TestFileBrowse_OpenFolderText(t *testing.T) {
	app := test.NewApp()
	window := app.NewWindow("test")
	defer window.Close()

	localization := NewLocalization()
	localization.SetLanguage("en")
	fb := NewFileBrowse(window, config.NewSavePath(t.TempDir(), ""), localization)

	if fb.openFolderBtn.Text != IconFolder+" Open folder" {
		t.Errorf("Unexpected open folder text: %q", fb.openFolderBtn.Text)
	}

	localization.SetLanguage("pt")
	fb.RefreshTexts()
	if fb.openFolderBtn.Text != IconFolder+" Abrir pasta" {
		t.Errorf("Expected Portuguese open folder text, got %q", fb.openFolderBtn.Text)
	}
}
