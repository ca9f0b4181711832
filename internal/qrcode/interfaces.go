package qrcode

import (
	"github.com/ytget/qr-creator/internal/model"
)

// Encoder defines the interface for the QR generation step.
type Encoder interface {
	Generate(text string, mode model.ImageMode) (*model.QRImage, error)
}

// ImageWriter defines the interface for the save step.
type ImageWriter interface {
	// Save writes <dir>/<name>.png and returns the written path
	Save(img *model.QRImage, name, dir string) (string, error)
}
