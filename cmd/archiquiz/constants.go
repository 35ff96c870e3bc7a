package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 1000
)

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}
