// Package snapshot loads element snapshot documents: YAML or JSON files, optionally
// compressed, holding the element population to audit and the device-wide settings.
package snapshot

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/a11ykit/internal/compression"
	"github.com/jmylchreest/a11ykit/internal/element"
	"github.com/jmylchreest/a11ykit/internal/security"
)

// Extensions are the accepted document extensions, before any compression suffix.
var Extensions = []string{".yaml", ".yml", ".json"}

// ErrInvalidDocument is returned when a document parses but fails validation.
var ErrInvalidDocument = errors.New("invalid snapshot document")

// Document is a captured element population.
type Document struct {
	Name     string                  `yaml:"name,omitempty" json:"name,omitempty"`
	Global   *element.GlobalSettings `yaml:"global,omitempty" json:"global,omitempty"`
	Elements []element.Snapshot      `yaml:"elements" json:"elements" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates a snapshot document from path.
func Load(path string) (*Document, error) {
	if err := security.ValidateInputPath(path, Extensions); err != nil {
		return nil, fmt.Errorf("invalid snapshot file: %w", err)
	}

	data, err := compression.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a snapshot document. JSON documents are accepted as YAML.
// Elements without an ID get a random one.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	seen := make(map[uuid.UUID]bool, len(doc.Elements))
	for i := range doc.Elements {
		id := doc.Elements[i].ID
		if id == uuid.Nil {
			doc.Elements[i].ID = uuid.New()
			continue
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate element id %s", ErrInvalidDocument, id)
		}
		seen[id] = true
	}
	return &doc, nil
}

// Marshal encodes a document as YAML.
func Marshal(doc *Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}
