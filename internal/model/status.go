package model

// ItemStatus represents the status of a single item in a run
type ItemStatus string

const (
	// ItemStatusPending means the item was split from the input but not processed yet
	ItemStatusPending ItemStatus = "Pending"

	// ItemStatusGenerated means the QR image was rendered but not written
	ItemStatusGenerated ItemStatus = "Generated"

	// ItemStatusSaved means the PNG file was written to disk
	ItemStatusSaved ItemStatus = "Saved"

	// ItemStatusSkipped means the image was rendered but writing was skipped (dry-run)
	ItemStatusSkipped ItemStatus = "Skipped"

	// ItemStatusError means generation or saving failed
	ItemStatusError ItemStatus = "Error"
)

// String returns the string representation of ItemStatus
func (s ItemStatus) String() string {
	return string(s)
}

// IsFinished returns true if the item reached a terminal state (saved, skipped, or error)
func (s ItemStatus) IsFinished() bool {
	return s == ItemStatusSaved || s == ItemStatusSkipped || s == ItemStatusError
}

// IsSuccess returns true if the item finished without error
func (s ItemStatus) IsSuccess() bool {
	return s == ItemStatusSaved || s == ItemStatusSkipped
}
