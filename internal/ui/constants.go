package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window
const (
	AppID        = "com.ytget.qr-creator"
	WindowWidth  = 340
	WindowHeight = 520
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Preview sizing
const (
	PreviewSize float32 = 290
)

// PreviewBackground is the translucent square shown when nothing is previewed
var PreviewBackground = color.NRGBA{R: 0, G: 0, B: 0, A: 32}

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 260
)
