package specparse

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RawManifest lists the model definitions to generate.
type RawManifest struct {
	Description string             `yaml:"description"`
	Models      []RawManifestEntry `yaml:"models"`
}

// RawManifestEntry maps a model definition file to its Go output.
type RawManifestEntry struct {
	File   string `yaml:"file"`   // definition file, relative to the manifest
	Output string `yaml:"output"` // output directory, relative to the manifest
}

// ParseManifest parses a manifest from YAML bytes.
func ParseManifest(data []byte) (*RawManifest, error) {
	var m RawManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	for i, e := range m.Models {
		if e.File == "" || e.Output == "" {
			return nil, fmt.Errorf("manifest entry %d: file and output are required", i)
		}
	}
	return &m, nil
}

// LoadManifest loads a manifest and resolves its relative paths against the
// manifest's directory.
func LoadManifest(path string) (*RawManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for i := range m.Models {
		if !filepath.IsAbs(m.Models[i].File) {
			m.Models[i].File = filepath.Join(base, m.Models[i].File)
		}
		if !filepath.IsAbs(m.Models[i].Output) {
			m.Models[i].Output = filepath.Join(base, m.Models[i].Output)
		}
	}
	return m, nil
}
