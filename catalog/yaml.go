package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// file is the on-disk layout:
//
//	diameters:
//	  - name: DN100
//	    diameter: 0.1
type file struct {
	Diameters []Entry `yaml:"diameters"`
}

// LoadYAML reads a catalog document from r.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("LoadYAML: failed to parse YAML: %w", err)
	}

	c, err := New(f.Diameters...)
	if err != nil {
		return nil, fmt.Errorf("LoadYAML: %w", err)
	}

	return c, nil
}
