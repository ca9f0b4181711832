package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestCompactTheme_Sizes(t *testing.T) {
	th := NewCompactTheme()

	if th.Size(theme.SizeNamePadding) >= theme.DefaultTheme().Size(theme.SizeNamePadding) {
		t.Error("Compact padding should be smaller than the default")
	}
	if th.Size(theme.SizeNameScrollBar) != theme.DefaultTheme().Size(theme.SizeNameScrollBar) {
		t.Error("Sizes without override should match the default theme")
	}
	if th.Font(fyne.TextStyle{Bold: true}) == nil {
		t.Error("Expected a bold font resource")
	}
	if th.Color(theme.ColorNamePrimary, theme.VariantLight) == nil {
		t.Error("Expected a primary color")
	}
}
