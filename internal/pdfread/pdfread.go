// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfread implements the transcript.Document interface on top of
// github.com/ledongthuc/pdf.
package pdfread

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

// eofMarker terminates a well-formed PDF body.
var eofMarker = []byte("%%EOF")

// eofWindow bounds how far back from the end of the file the marker is
// searched for.
const eofWindow = 1 << 20

// garbageTolerance is the number of trailing non-newline bytes after %%EOF
// that are still treated as benign.
const garbageTolerance = 10

// Document is an opened PDF file. It satisfies transcript.Document and must
// be closed exactly once.
type Document struct {
	f *os.File
	r *pdf.Reader
}

// Open opens the PDF at path. PDFs fetched from the web often carry appended
// HTML or other junk after the final %%EOF marker; the reader is given a
// size clamped to the marker so the parser never sees it.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	r, err := pdf.NewReader(f, clampSize(f, st.Size()))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return &Document{f: f, r: r}, nil
}

// NumPages returns the page count of the document.
func (d *Document) NumPages() int {
	return d.r.NumPage()
}

// PageText returns the plain text of page n (1-based). A null page object
// (no content) yields an empty string and no error.
func (d *Document) PageText(n int) (string, error) {
	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.f.Close()
}

// clampSize returns the effective size of the PDF data in ra: the end of the
// last %%EOF marker plus any trailing newlines, when more than a handful of
// junk bytes follow it. Files without a marker are returned unclamped and
// left to the parser.
func clampSize(ra io.ReaderAt, size int64) int64 {
	window := size
	if window > eofWindow {
		window = eofWindow
	}
	if window == 0 {
		return size
	}

	buf := make([]byte, window)
	off := size - window
	if _, err := ra.ReadAt(buf, off); err != nil && err != io.EOF {
		return size
	}

	i := bytes.LastIndex(buf, eofMarker)
	if i < 0 {
		return size
	}

	end := i + len(eofMarker)
	for end < len(buf) && (buf[end] == '\n' || buf[end] == '\r') {
		end++
	}

	if len(buf)-end > garbageTolerance {
		return off + int64(end)
	}
	return size
}
