// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fixtures_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfmark/internal/fixtures"
	"github.com/pdiddy/pdfmark/internal/pdfread"
	"github.com/pdiddy/pdfmark/internal/transcript"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	m, err := fixtures.Generate(dir, &out)
	require.NoError(t, err)

	for _, name := range []string{"sample_lease.pdf", "sample_amendment.pdf"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}

	require.Len(t, m.Fixtures, 2)
	assert.Equal(t, "sample_lease.pdf", m.Fixtures[0].File)
	assert.Equal(t, 3, m.Fixtures[0].Pages)
	assert.Equal(t, "sample_amendment.pdf", m.Fixtures[1].File)
	assert.Equal(t, 1, m.Fixtures[1].Pages)

	progress := out.String()
	assert.Contains(t, progress, "Creating PDF fixtures:")
	assert.Contains(t, progress, "sample_lease.pdf (3 pages)")
	assert.Contains(t, progress, "sample_amendment.pdf (1 page)")
	assert.Contains(t, progress, "Done!")
}

// The lease must land on exactly 3 pages and the amendment on exactly 1:
// page breaks are explicit in the builders, so body text overflowing onto an
// extra page is a layout regression.
func TestGenerate_ExactPageCounts(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	_, err := fixtures.Generate(dir, &out)
	require.NoError(t, err)

	for _, tt := range []struct {
		file  string
		pages int
	}{
		{file: "sample_lease.pdf", pages: 3},
		{file: "sample_amendment.pdf", pages: 1},
	} {
		n, err := api.PageCountFile(filepath.Join(dir, tt.file))
		require.NoError(t, err)
		assert.Equal(t, tt.pages, n, "%s page count", tt.file)
	}
}

func TestGenerate_WritesManifest(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	_, err := fixtures.Generate(dir, &out)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "manifest.yaml"))
	require.NoError(t, err)

	var m fixtures.Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	require.Len(t, m.Fixtures, 2)
	assert.NotEmpty(t, m.GeneratedAt)
	for _, e := range m.Fixtures {
		assert.Positive(t, e.Bytes)
	}
}

// The amendment round trip: generate, extract, and check the transcript
// against the known literal content.
func TestGenerate_AmendmentRoundTrip(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	_, err := fixtures.Generate(dir, &out)
	require.NoError(t, err)

	doc, err := pdfread.Open(filepath.Join(dir, "sample_amendment.pdf"))
	require.NoError(t, err)
	defer doc.Close()

	text, err := transcript.Build(doc)
	require.NoError(t, err)

	assert.Equal(t, 1, transcript.CountPages(text))
	assert.Contains(t, text, "--- PAGE 1 ---")
	assert.Contains(t, text, "AMENDMENT NO. 1")
}
