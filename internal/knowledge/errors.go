// ABOUTME: Sentinel errors for the knowledge store
// ABOUTME: Matched by callers with errors.Is
package knowledge

import "errors"

var (
	// ErrEmbeddingFailed is returned when an embedding call fails, times
	// out, or produces a vector of the wrong dimensionality. Callers never
	// receive a placeholder vector in its place.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrExportFailed is returned when the export destination cannot be
	// written. The destination file is never left half-written.
	ErrExportFailed = errors.New("export failed")

	// ErrStoreClosed is returned when using a store after Close
	ErrStoreClosed = errors.New("knowledge store is closed")
)
