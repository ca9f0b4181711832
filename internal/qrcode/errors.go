package qrcode

import "errors"

var (
	// ErrEncoding is returned when the encoder rejects a payload
	ErrEncoding = errors.New("qr encoding failed")

	// ErrIO is returned when a PNG file cannot be written
	ErrIO = errors.New("qr image write failed")
)
