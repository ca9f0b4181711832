package qrcode

// Package qrcode wraps github.com/skip2/go-qrcode: it encodes text payloads
// into QR symbols, rasterizes them to PNG (and optionally a bitmap for
// preview) and writes the PNG files to disk.
