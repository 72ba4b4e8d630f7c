package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-latch/latch/pkg/cell"
	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config represents the optional latch.yaml configuration.
type Config struct {
	Widgets []string     `yaml:"widgets"`
	Markup  MarkupConfig `yaml:"markup"`
	Engine  EngineConfig `yaml:"engine"`
}

// MarkupConfig contains marker attribute settings.
type MarkupConfig struct {
	Marker string `yaml:"marker,omitempty"`
	Params string `yaml:"params,omitempty"`
}

// EngineConfig contains engine settings.
type EngineConfig struct {
	Version string `yaml:"version,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	Widgets       []string
	MarkerAttr    string
	ParamsAttr    string
	EngineVersion string
}

// LoadOptional reads latch.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "latch.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read latch.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse latch.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads latch.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	marker := strings.TrimSpace(cfg.Markup.Marker)
	if marker == "" {
		marker = cell.DefaultMarkerAttr
	}
	params := strings.TrimSpace(cfg.Markup.Params)
	if params == "" {
		params = cell.DefaultParamsAttr
	}
	for _, attr := range []string{marker, params} {
		if err := validateAttr(attr); err != nil {
			return nil, err
		}
	}
	if marker == params {
		return nil, fmt.Errorf("markup.marker and markup.params must differ (both %q)", marker)
	}

	engineVersion := strings.TrimSpace(cfg.Engine.Version)
	if engineVersion == "" {
		engineVersion = "latest"
	}

	var widgets []string
	for _, w := range cfg.Widgets {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		widgets = append(widgets, w)
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		Widgets:       widgets,
		MarkerAttr:    marker,
		ParamsAttr:    params,
		EngineVersion: engineVersion,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// validateAttr checks that a configured attribute is a well-formed data
// attribute name: a "data-" prefix followed by lowercase letters, digits
// and hyphens.
func validateAttr(attr string) error {
	const prefix = "data-"
	if !strings.HasPrefix(attr, prefix) {
		return fmt.Errorf("attribute %q must start with %q", attr, prefix)
	}
	if len(attr) == len(prefix) {
		return fmt.Errorf("attribute %q has no name after %q", attr, prefix)
	}
	for _, r := range attr[len(prefix):] {
		if !(r == '-' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return fmt.Errorf("attribute %q contains invalid character %q", attr, r)
		}
	}
	return nil
}
