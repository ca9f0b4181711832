package model

import (
	"fmt"
	"image"
	"strings"
)

// ImageMode selects what the generation step renders
type ImageMode int

const (
	// ImageModeRaw renders only the PNG bytes written to disk
	ImageModeRaw ImageMode = iota
	// ImageModeDisplay also keeps a decoded bitmap for the preview widget
	ImageModeDisplay
)

// String returns the string representation of ImageMode
func (m ImageMode) String() string {
	switch m {
	case ImageModeRaw:
		return "raw"
	case ImageModeDisplay:
		return "display"
	default:
		return "unknown"
	}
}

// ErrorCorrection is the QR error-correction policy
type ErrorCorrection string

const (
	ErrorCorrectionLow     ErrorCorrection = "low"     // ~7% recovery
	ErrorCorrectionMedium  ErrorCorrection = "medium"  // ~15% recovery
	ErrorCorrectionHigh    ErrorCorrection = "high"    // ~25% recovery
	ErrorCorrectionHighest ErrorCorrection = "highest" // ~30% recovery
)

// ErrorCorrectionOptions returns all levels from weakest to strongest
func ErrorCorrectionOptions() []ErrorCorrection {
	return []ErrorCorrection{
		ErrorCorrectionLow,
		ErrorCorrectionMedium,
		ErrorCorrectionHigh,
		ErrorCorrectionHighest,
	}
}

// ParseErrorCorrection parses a level name (case-insensitive)
func ParseErrorCorrection(s string) (ErrorCorrection, error) {
	level := ErrorCorrection(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ErrorCorrectionOptions() {
		if level == known {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown error correction level: %q", s)
}

// EncodeRequest is a single payload to encode
type EncodeRequest struct {
	Text string
}

// QRImage is a rendered QR code. PNG is always set; Image only in ImageModeDisplay.
type QRImage struct {
	Request EncodeRequest
	Level   ErrorCorrection
	BoxSize int
	Mode    ImageMode
	PNG     []byte
	Image   image.Image
}

// ItemResult records what happened to one item of a run
type ItemResult struct {
	Text   string
	Status ItemStatus
	Path   string // written file, empty unless saved
	Err    error
}

// Result summarizes a single batch or submit run
type Result struct {
	RunID string
	Dir   string
	Items []*ItemResult
	Last  *QRImage // last generated image, used by the preview
}

// SavedCount returns the number of files written
func (r *Result) SavedCount() int {
	n := 0
	for _, item := range r.Items {
		if item.Status == ItemStatusSaved {
			n++
		}
	}
	return n
}
