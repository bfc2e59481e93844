// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript assembles page-marked plain text from an opened PDF.
// The PDF library sits behind the Document interface; this package owns only
// the transcript format itself.
package transcript

import (
	"fmt"
	"strings"
)

// Document is the narrow view of an opened PDF needed for transcription.
// Pages are addressed by their 1-based position in the document.
type Document interface {
	// NumPages returns the number of pages in the document.
	NumPages() int
	// PageText returns the plain text of page n (1-based). An empty string
	// with a nil error means the page has no text layer.
	PageText(n int) (string, error)
	// Close releases the underlying document resource.
	Close() error
}

// EmptyPageBody is emitted in place of a page body when the page has no
// extractable text, so every page keeps its marker.
const EmptyPageBody = "(empty page)"

// markerPrefix is the stable prefix counted by CountPages.
const markerPrefix = "--- PAGE"

// Marker returns the boundary line for page n.
func Marker(n int) string {
	return fmt.Sprintf("--- PAGE %d ---", n)
}

// Build walks every page of doc in order and returns the transcript: for each
// page a marker segment followed by a body segment, all segments joined by a
// blank line. Page bodies are trimmed of leading and trailing whitespace;
// pages with nothing left after trimming become EmptyPageBody.
//
// A page-level extraction error aborts the whole build. No partial
// transcript is returned and no page is skipped.
func Build(doc Document) (string, error) {
	n := doc.NumPages()
	segments := make([]string, 0, 2*n)

	for i := 1; i <= n; i++ {
		segments = append(segments, Marker(i))

		text, err := doc.PageText(i)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", i, err)
		}

		if body := strings.TrimSpace(text); body != "" {
			segments = append(segments, body)
		} else {
			segments = append(segments, EmptyPageBody)
		}
	}

	return strings.Join(segments, "\n\n"), nil
}

// CountPages returns the number of page markers in a transcript.
func CountPages(transcript string) int {
	return strings.Count(transcript, markerPrefix)
}
