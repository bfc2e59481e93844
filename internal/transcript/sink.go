// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Write delivers a finished transcript. With a non-empty outPath the
// transcript is written there as UTF-8, replacing any existing file, and a
// one-line confirmation with the page count goes to stdout. With an empty
// outPath the transcript goes to stdout directly; byte sequences that are
// not valid UTF-8 are substituted with U+FFFD rather than failing.
func Write(transcript, outPath string, stdout io.Writer) error {
	if outPath == "" {
		_, err := io.WriteString(stdout, strings.ToValidUTF8(transcript, "�")+"\n")
		return err
	}

	if err := os.WriteFile(outPath, []byte(transcript), 0o644); err != nil {
		return fmt.Errorf("writing transcript to %s: %w", outPath, err)
	}

	_, err := fmt.Fprintf(stdout, "Written to %s (%d pages)\n", outPath, CountPages(transcript))
	return err
}
