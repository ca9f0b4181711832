package model

// Package model defines domain data structures used across the app: encode
// requests, rendered QR images, per-item results and status enums. Values are
// created once by the processing pipeline and not mutated afterwards.
