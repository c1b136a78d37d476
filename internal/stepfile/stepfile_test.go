package stepfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkout = `
title: Checkout
selected: 1
steps:
  - Cart
  - label: Shipping
    notes: |
      ## Where should we send it?
  - Payment
`

func TestParseMixedSteps(t *testing.T) {
	doc, err := Parse([]byte(checkout))
	require.NoError(t, err)

	assert.Equal(t, "Checkout", doc.Title)
	assert.Equal(t, 1, doc.Selected)
	assert.Equal(t, []string{"Cart", "Shipping", "Payment"}, doc.Labels())

	notes := doc.Notes()
	assert.Empty(t, notes[0])
	assert.Contains(t, notes[1], "Where should we send it?")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "no steps", in: "title: x\n"},
		{name: "empty list", in: "steps: []\n"},
		{name: "empty label", in: "steps:\n  - label: \"\"\n"},
		{name: "blank scalar", in: "steps:\n  - \"  \"\n"},
		{name: "sequence step", in: "steps:\n  - [a, b]\n"},
		{name: "bad yaml", in: "steps: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestDocumentStateClampsSelection(t *testing.T) {
	doc, err := Parse([]byte("selected: 12\nsteps: [a, b, c]\n"))
	require.NoError(t, err)

	st, err := doc.State()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Selected())
	assert.Equal(t, 3, st.Len())
}

func TestFromLabels(t *testing.T) {
	doc := FromLabels([]string{"one", "two"})
	assert.Equal(t, []string{"one", "two"}, doc.Labels())
	assert.Equal(t, []string{"", ""}, doc.Notes())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(checkout), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Steps, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
