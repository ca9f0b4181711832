package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/skip2/go-qrcode"

	"github.com/ytget/qr-creator/internal/model"
)

// Rendering defaults
const (
	DefaultBoxSize = 10
	MinBoxSize     = 1
	MaxBoxSize     = 50
	DefaultLevel   = model.ErrorCorrectionHighest
)

// Generator renders QR codes with a fixed error-correction level and box size
type Generator struct {
	level   model.ErrorCorrection
	boxSize int
}

// NewGenerator creates a new generator. Invalid values fall back to defaults.
func NewGenerator(level model.ErrorCorrection, boxSize int) *Generator {
	if _, err := recoveryLevel(level); err != nil {
		level = DefaultLevel
	}
	if boxSize < MinBoxSize || boxSize > MaxBoxSize {
		boxSize = DefaultBoxSize
	}
	return &Generator{level: level, boxSize: boxSize}
}

// Level returns the configured error-correction level
func (g *Generator) Level() model.ErrorCorrection {
	return g.level
}

// BoxSize returns the configured module size in pixels
func (g *Generator) BoxSize() int {
	return g.boxSize
}

// Generate encodes text and renders it. The symbol version is chosen by the
// encoder to fit the payload.
func (g *Generator) Generate(text string, mode model.ImageMode) (*model.QRImage, error) {
	level, err := recoveryLevel(g.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	code, err := qrcode.New(text, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrEncoding, text, err)
	}

	// Negative size makes every module exactly boxSize pixels wide
	img := code.Image(-g.boxSize)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: png encode: %v", ErrEncoding, err)
	}

	result := &model.QRImage{
		Request: model.EncodeRequest{Text: text},
		Level:   g.level,
		BoxSize: g.boxSize,
		Mode:    mode,
		PNG:     buf.Bytes(),
	}
	if mode == model.ImageModeDisplay {
		result.Image = img
	}
	return result, nil
}

// DecodePNG returns the bitmap of a rendered image, decoding the PNG bytes
// when the image was generated in raw mode
func DecodePNG(img *model.QRImage) (image.Image, error) {
	if img.Image != nil {
		return img.Image, nil
	}
	decoded, err := png.Decode(bytes.NewReader(img.PNG))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return decoded, nil
}

// recoveryLevel maps the model level onto the encoder's recovery level
func recoveryLevel(level model.ErrorCorrection) (qrcode.RecoveryLevel, error) {
	switch level {
	case model.ErrorCorrectionLow:
		return qrcode.Low, nil
	case model.ErrorCorrectionMedium:
		return qrcode.Medium, nil
	case model.ErrorCorrectionHigh:
		return qrcode.High, nil
	case model.ErrorCorrectionHighest:
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("unsupported error correction level: %q", level)
	}
}
