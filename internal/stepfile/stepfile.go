// Package stepfile reads step definitions from YAML documents and watches
// them for changes.
package stepfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Dallionking/stepper-tabs/internal/stepper"
)

// Step is one entry of a step file. In YAML it is either a plain string
// (the label) or a mapping with label and notes.
type Step struct {
	Label string `yaml:"label"`
	Notes string `yaml:"notes,omitempty"` // markdown
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Label = node.Value
		s.Notes = ""
		return nil
	case yaml.MappingNode:
		type plain Step
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*s = Step(p)
		return nil
	default:
		return fmt.Errorf("line %d: step must be a string or a mapping", node.Line)
	}
}

// Document is a parsed step file.
type Document struct {
	Title    string `yaml:"title,omitempty"`
	Selected int    `yaml:"selected,omitempty"`
	Steps    []Step `yaml:"steps"`
}

// Load reads and parses the step file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading step file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a step file and checks that every step has a label.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Steps) == 0 {
		return nil, errors.New("no steps defined")
	}
	for i, s := range doc.Steps {
		if strings.TrimSpace(s.Label) == "" {
			return nil, fmt.Errorf("step %d: label is empty", i+1)
		}
	}
	return &doc, nil
}

// FromLabels builds a Document from bare labels.
func FromLabels(labels []string) *Document {
	doc := &Document{Steps: make([]Step, len(labels))}
	for i, l := range labels {
		doc.Steps[i] = Step{Label: l}
	}
	return doc
}

// Labels returns the step labels in order.
func (d *Document) Labels() []string {
	out := make([]string, len(d.Steps))
	for i, s := range d.Steps {
		out[i] = s.Label
	}
	return out
}

// Notes returns the markdown notes of every step, in order.
func (d *Document) Notes() []string {
	out := make([]string, len(d.Steps))
	for i, s := range d.Steps {
		out[i] = s.Notes
	}
	return out
}

// State builds a stepper state from the document with the document's
// selection applied (clamped).
func (d *Document) State() (*stepper.State, error) {
	st, err := stepper.New(d.Labels())
	if err != nil {
		return nil, err
	}
	st.SetSelected(d.Selected)
	return st, nil
}
