package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when loading a file with an extension that
// is neither YAML nor HCL.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

//go:embed content.yaml
var defaultContent []byte

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return parseYAML(defaultContent)
}

// Load loads a catalog from a YAML or HCL file. If path is empty the built-in
// catalog is returned.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var cat *Catalog
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		cat, err = parseYAML(src)
	case ".hcl":
		cat, err = parseHCL(path, src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return cat, nil
}

func parseYAML(src []byte) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}
