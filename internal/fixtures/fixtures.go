// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fixtures generates the synthetic lease-agreement PDFs used as test
// inputs for page-marked extraction: a 3-page operating lease and a 1-page
// amendment, both with fixed literal content.
package fixtures

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.yaml.in/yaml/v3"
)

// manifestFile lists the generated documents next to them in the output dir.
const manifestFile = "manifest.yaml"

// Entry describes one generated fixture in the manifest.
type Entry struct {
	File  string `yaml:"file"`
	Pages int    `yaml:"pages"`
	Bytes int64  `yaml:"bytes"`
}

// Manifest records one generation run.
type Manifest struct {
	GeneratedAt string  `yaml:"generated_at"`
	Fixtures    []Entry `yaml:"fixtures"`
}

// fixture pairs an output filename with its builder and expected page count.
type fixture struct {
	name  string
	pages int
	build func(path string) error
}

// Generate writes both fixture PDFs into dir, verifies each with pdfcpu,
// writes the manifest, and prints progress to w.
func Generate(dir string, w io.Writer) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating fixtures directory %s: %w", dir, err)
	}

	fmt.Fprintln(w, "Creating PDF fixtures:")

	m := &Manifest{GeneratedAt: time.Now().UTC().Format(time.RFC3339)}
	for _, fx := range []fixture{
		{name: "sample_lease.pdf", pages: 3, build: buildLease},
		{name: "sample_amendment.pdf", pages: 1, build: buildAmendment},
	} {
		path := filepath.Join(dir, fx.name)

		if err := fx.build(path); err != nil {
			return nil, fmt.Errorf("building %s: %w", fx.name, err)
		}
		if err := verify(path, fx.pages); err != nil {
			return nil, err
		}

		st, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		m.Fixtures = append(m.Fixtures, Entry{File: fx.name, Pages: fx.pages, Bytes: st.Size()})

		fmt.Fprintf(w, "  %s (%d %s)\n", fx.name, fx.pages, pluralPages(fx.pages))
	}

	if err := writeManifest(dir, m); err != nil {
		return nil, err
	}

	fmt.Fprintln(w, "\nDone!")
	return m, nil
}

// buildLease writes the 3-page operating lease agreement. Auto page break
// stays off: the page structure is the three explicit AddPage calls, and the
// line heights keep each body above the page edge.
func buildLease(path string) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	// Page 1: title and parties
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 15, leaseTitle, "", 1, "C", false, 0, "")
	doc.Ln(10)
	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(0, 6, leaseParties, "", "L", false)

	// Page 2: key terms
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, leaseArticle1Title, "", 1, "L", false, 0, "")
	doc.Ln(5)
	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(0, 6, leaseKeyTerms, "", "L", false)

	// Page 3: return conditions
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 10, leaseArticle2Title, "", 1, "L", false, 0, "")
	doc.Ln(5)
	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(0, 6, leaseReturnConditions, "", "L", false)

	return doc.OutputFileAndClose(path)
}

// buildAmendment writes the 1-page amendment. The amendment body is the
// densest fixture, so it uses a smaller face and a tighter leading than the
// lease; auto page break stays off as in buildLease.
func buildAmendment(path string) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, amendmentTitle, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 8, amendmentSubtitle, "", 1, "C", false, 0, "")
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 5, amendmentBody, "", "L", false)

	return doc.OutputFileAndClose(path)
}

// verify checks that the generated file is a valid PDF with the expected
// page count.
func verify(path string, wantPages int) error {
	if err := api.ValidateFile(path, nil); err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	n, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("counting pages in %s: %w", path, err)
	}
	if n != wantPages {
		return fmt.Errorf("%s: generated %d pages, want %d", path, n, wantPages)
	}
	return nil
}

func writeManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	path := filepath.Join(dir, manifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func pluralPages(n int) string {
	if n == 1 {
		return "page"
	}
	return "pages"
}
