// Package formatter serializes arrival boards for delivery.
//
// This package is organized into:
// - json.go: JSON serialization for programmatic consumers
// - text.go: plain-text rendering for terminals
package formatter
