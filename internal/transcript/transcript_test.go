// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocument implements Document over canned page text for testing.
type fakeDocument struct {
	pages  []string
	errs   map[int]error
	closed int
}

func (f *fakeDocument) NumPages() int { return len(f.pages) }

func (f *fakeDocument) PageText(n int) (string, error) {
	if err, ok := f.errs[n]; ok {
		return "", err
	}
	return f.pages[n-1], nil
}

func (f *fakeDocument) Close() error {
	f.closed++
	return nil
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{
			name:  "single page",
			pages: []string{"Hello"},
			want:  "--- PAGE 1 ---\n\nHello",
		},
		{
			name:  "pages in document order",
			pages: []string{"first", "second", "third"},
			want: "--- PAGE 1 ---\n\nfirst\n\n" +
				"--- PAGE 2 ---\n\nsecond\n\n" +
				"--- PAGE 3 ---\n\nthird",
		},
		{
			name:  "trims leading and trailing whitespace only",
			pages: []string{"  Hello World  \n"},
			want:  "--- PAGE 1 ---\n\nHello World",
		},
		{
			name:  "internal whitespace preserved",
			pages: []string{"line one\n\nline two\n"},
			want:  "--- PAGE 1 ---\n\nline one\n\nline two",
		},
		{
			name:  "empty page placeholder",
			pages: []string{""},
			want:  "--- PAGE 1 ---\n\n(empty page)",
		},
		{
			name:  "whitespace-only page placeholder",
			pages: []string{"  \n\t  "},
			want:  "--- PAGE 1 ---\n\n(empty page)",
		},
		{
			name:  "empty page between text pages keeps its marker",
			pages: []string{"before", "", "after"},
			want: "--- PAGE 1 ---\n\nbefore\n\n" +
				"--- PAGE 2 ---\n\n(empty page)\n\n" +
				"--- PAGE 3 ---\n\nafter",
		},
		{
			name:  "zero pages",
			pages: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(&fakeDocument{pages: tt.pages})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_MarkerCountMatchesPages(t *testing.T) {
	doc := &fakeDocument{pages: []string{"a", "", "c", "d"}}
	got, err := Build(doc)
	require.NoError(t, err)
	assert.Equal(t, 4, CountPages(got))
}

func TestBuild_PageErrorAbortsWhole(t *testing.T) {
	doc := &fakeDocument{
		pages: []string{"first", "second", "third"},
		errs:  map[int]error{2: errors.New("damaged content stream")},
	}

	got, err := Build(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 2")
	assert.Contains(t, err.Error(), "damaged content stream")
	assert.Empty(t, got, "no partial transcript on failure")
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "--- PAGE 1 ---", Marker(1))
	assert.Equal(t, "--- PAGE 12 ---", Marker(12))
}

func TestCountPages(t *testing.T) {
	assert.Equal(t, 0, CountPages(""))
	assert.Equal(t, 0, CountPages("no markers here"))
	assert.Equal(t, 2, CountPages("--- PAGE 1 ---\n\nx\n\n--- PAGE 2 ---\n\ny"))
}
