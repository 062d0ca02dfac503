package config

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed game.yaml
var defaultYAML []byte

// Loader loads game tuning from a YAML document using fs.FS.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a config loader rooted at a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a config loader from an fs.FS.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads and parses the named YAML document.
func (l *Loader) Load(name string) (*Config, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes a tuning document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Default returns the embedded tuning document. The embedded document is
// known-good; a parse failure here is a build defect.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded game.yaml invalid: %v", err))
	}
	return cfg
}
