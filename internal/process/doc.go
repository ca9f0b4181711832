package process

// Package process implements the item pipeline shared by batch and
// interactive mode: split the comma-separated input, generate one QR image per
// item and save it under the output directory, honoring dry-run.
