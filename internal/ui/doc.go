package ui

// Package ui contains the Fyne-based desktop user interface: the main window
// with live preview, data entry and save-location controls, wired to the
// processing service. All UI strings are localized via Localization.
