package qrcode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ytget/qr-creator/internal/model"
)

// File constants
const (
	PNGExtension       = ".png"
	DefaultPermissions = 0644
)

// FileWriter writes rendered images as PNG files
type FileWriter struct{}

// NewFileWriter creates a new PNG file writer
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// Save writes <dir>/<name>.png, overwriting any existing file with that name
func (w *FileWriter) Save(img *model.QRImage, name, dir string) (string, error) {
	if img == nil || len(img.PNG) == 0 {
		return "", fmt.Errorf("%w: no image data for %q", ErrIO, name)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: not a directory: %s", ErrIO, dir)
	}

	path := filepath.Join(dir, FileName(name))
	if err := os.WriteFile(path, img.PNG, DefaultPermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	return path, nil
}

// FileName returns the file name used for an item
func FileName(name string) string {
	return name + PNGExtension
}
