package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pageza/geladeira/backend/internal/models"
)

type fileFormat struct {
	Templates []models.RecipeTemplate `yaml:"templates"`
}

// LoadFile reads a YAML catalog. Templates keep the order they have in the file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Decode parses a YAML catalog document
func Decode(r io.Reader) (*Catalog, error) {
	var f fileFormat
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(f.Templates) == 0 {
		return nil, fmt.Errorf("%w: catalog has no templates", ErrInvalidTemplate)
	}
	return New(f.Templates...)
}
