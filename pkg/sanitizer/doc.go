// Package sanitizer normalizes user input before it is validated or stored.
//
// Helpers are plain func(string) string values that can be chained with
// Apply or stored as pipelines with Compose:
//
//	username := sanitizer.Compose(sanitizer.NFC, sanitizer.RemoveControlChars, sanitizer.Trim)
//	clean := username("  jane_doe\x00 ") // "jane_doe"
//
// Optional lifts a pipeline to pointer fields, turning values that end up
// empty into nil. Nothing here rejects input: that is the job of
// pkg/validation.
package sanitizer
