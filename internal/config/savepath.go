package config

import (
	"path/filepath"

	"github.com/ytget/qr-creator/internal/platform"
)

// SavePath tracks the base save directory and the "create subfolder" toggle.
// Nothing is persisted across runs.
type SavePath struct {
	base          string
	subfolderName string
	useSubfolder  bool
}

// NewSavePath creates a save-path manager rooted at base
func NewSavePath(base, subfolderName string) *SavePath {
	if subfolderName == "" {
		subfolderName = DefaultSubfolderName
	}
	sp := &SavePath{subfolderName: subfolderName}
	sp.SetBase(base)
	if sp.base == "" {
		// Only reachable when the working dir is unknown
		sp.base = string(filepath.Separator)
	}
	return sp
}

// Resolve returns the directory images are saved to. It is recomputed on
// every call and never fails; the directory may not exist yet.
func (sp *SavePath) Resolve() string {
	if sp.useSubfolder {
		return filepath.Join(sp.base, sp.subfolderName)
	}
	return sp.base
}

// Base returns the normalized base directory
func (sp *SavePath) Base() string {
	return sp.base
}

// SetBase sets a new base directory, normalizing it immediately.
// An empty path (cancelled chooser) keeps the current base.
func (sp *SavePath) SetBase(path string) {
	if path == "" && sp.base != "" {
		return
	}
	expanded, err := platform.ExpandPath(path)
	if err != nil {
		return
	}
	sp.base = expanded
}

// SubfolderName returns the fixed subfolder name
func (sp *SavePath) SubfolderName() string {
	return sp.subfolderName
}

// UseSubfolder returns whether the subfolder is appended to the base
func (sp *SavePath) UseSubfolder() bool {
	return sp.useSubfolder
}

// SetUseSubfolder toggles the subfolder without touching the base
func (sp *SavePath) SetUseSubfolder(use bool) {
	sp.useSubfolder = use
}
