package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LivePreview shows either a placeholder message over a blank square or the
// last generated QR image
type LivePreview struct {
	background  *canvas.Rectangle
	image       *canvas.Image
	placeholder *widget.Label
	container   *fyne.Container
}

// NewLivePreview creates an empty preview showing placeholder text
func NewLivePreview(placeholder string) *LivePreview {
	p := &LivePreview{
		background:  canvas.NewRectangle(PreviewBackground),
		image:       canvas.NewImageFromImage(nil),
		placeholder: widget.NewLabel(placeholder),
	}
	p.background.SetMinSize(fyne.NewSize(PreviewSize, PreviewSize))
	p.image.FillMode = canvas.ImageFillContain
	p.image.ScaleMode = canvas.ImageScalePixels
	p.image.SetMinSize(fyne.NewSize(PreviewSize, PreviewSize))
	p.placeholder.Alignment = fyne.TextAlignCenter

	p.container = container.NewStack(p.background, p.image, container.NewCenter(p.placeholder))
	p.Clear()
	return p
}

// Container returns the preview canvas object
func (p *LivePreview) Container() fyne.CanvasObject {
	return p.container
}

// SetImage shows img and hides the placeholder
func (p *LivePreview) SetImage(img image.Image) {
	if img == nil {
		p.Clear()
		return
	}
	p.image.Image = img
	p.image.Show()
	p.image.Refresh()
	p.placeholder.Hide()
}

// Clear removes the image and shows the placeholder again
func (p *LivePreview) Clear() {
	p.image.Image = nil
	p.image.Hide()
	p.placeholder.Show()
}

// HasImage reports whether an image is shown
func (p *LivePreview) HasImage() bool {
	return p.image.Image != nil
}

// Image returns the shown image, nil when empty
func (p *LivePreview) Image() image.Image {
	return p.image.Image
}

// SetPlaceholder updates the placeholder text
func (p *LivePreview) SetPlaceholder(text string) {
	p.placeholder.SetText(text)
}
