package platform

// Package platform contains OS/platform integration glue: path expansion,
// directory creation and revealing the save folder in the system file manager.
