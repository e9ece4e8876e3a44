package models

// Common constants used across the application
const (
	// MissingValue is shown in place of a field the configuration does not provide
	MissingValue = "n/a"
)
