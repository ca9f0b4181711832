package config

import (
	"fmt"

	"github.com/ytget/qr-creator/internal/model"
	"github.com/ytget/qr-creator/internal/qrcode"
)

// Default values
const (
	DefaultOutputDir     = "."
	DefaultSubfolderName = "QR Codes"
	DefaultBoxSize       = qrcode.DefaultBoxSize
	DefaultLevel         = qrcode.DefaultLevel
	DefaultLanguage      = "system"

	MinBoxSize = qrcode.MinBoxSize
	MaxBoxSize = qrcode.MaxBoxSize
)

// Options holds the settings of a single invocation, built from CLI flags
type Options struct {
	Data          string
	Batch         bool
	DryRun        bool
	OutputDir     string
	CreateOutput  bool
	Level         model.ErrorCorrection
	BoxSize       int
	SubfolderName string
}

// DefaultOptions returns options with default values
func DefaultOptions() *Options {
	return &Options{
		OutputDir:     DefaultOutputDir,
		Level:         DefaultLevel,
		BoxSize:       DefaultBoxSize,
		SubfolderName: DefaultSubfolderName,
	}
}

// SetLevel parses and sets the error-correction level
func (o *Options) SetLevel(name string) error {
	level, err := model.ParseErrorCorrection(name)
	if err != nil {
		return err
	}
	o.Level = level
	return nil
}

// Validate checks option values and fills empty ones with defaults
func (o *Options) Validate() error {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.SubfolderName == "" {
		o.SubfolderName = DefaultSubfolderName
	}
	if o.Level == "" {
		o.Level = DefaultLevel
	}
	if _, err := model.ParseErrorCorrection(string(o.Level)); err != nil {
		return err
	}
	if o.BoxSize < MinBoxSize || o.BoxSize > MaxBoxSize {
		return fmt.Errorf("box size must be between %d and %d, got %d", MinBoxSize, MaxBoxSize, o.BoxSize)
	}
	return nil
}

// Settings holds session-only preferences changed from the settings dialog
type Settings struct {
	level    model.ErrorCorrection
	boxSize  int
	language string
}

// NewSettings creates session settings seeded from the invocation options
func NewSettings(opts *Options) *Settings {
	s := &Settings{
		level:    DefaultLevel,
		boxSize:  DefaultBoxSize,
		language: DefaultLanguage,
	}
	if opts != nil {
		s.SetLevel(opts.Level)
		s.SetBoxSize(opts.BoxSize)
	}
	return s
}

// GetLevel returns the error-correction level
func (s *Settings) GetLevel() model.ErrorCorrection {
	return s.level
}

// SetLevel sets the error-correction level; unknown levels are ignored
func (s *Settings) SetLevel(level model.ErrorCorrection) {
	if _, err := model.ParseErrorCorrection(string(level)); err == nil {
		s.level = level
	}
}

// GetBoxSize returns the module size in pixels
func (s *Settings) GetBoxSize() int {
	return s.boxSize
}

// SetBoxSize sets the module size in pixels, clamped to the allowed range
func (s *Settings) SetBoxSize(size int) {
	if size < MinBoxSize {
		size = MinBoxSize
	}
	if size > MaxBoxSize {
		size = MaxBoxSize
	}
	s.boxSize = size
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.language
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.language = lang
}

// GetLevelOptions returns available error-correction levels
func (s *Settings) GetLevelOptions() []model.ErrorCorrection {
	return model.ErrorCorrectionOptions()
}
