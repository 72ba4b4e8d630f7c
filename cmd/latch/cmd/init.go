package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-latch/latch/cmd/latch/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Create a latch.yaml manifest in the project root",
		Long: `Create a starter latch.yaml in the project root (the directory holding
go.mod).

The manifest is optional; without one the engine uses the default marker
attributes and "latch check" accepts any widget type. Once widgets are
listed in the manifest, the check command validates markup against them.`,
		Usage: "latch init [--force]",
		Run:   runInit,
	})
}

const manifestTemplate = `# Widget types the project registers. "latch check" reports markers
# with types not listed here; leave empty to accept any type.
widgets: []

markup:
  # Attribute naming the widget type on a marker element.
  marker: data-cell
  # Attribute carrying the JSON params for new instances.
  params: data-cell-params

engine:
  # Minimum engine version the project requires.
  version: latest
`

func runInit(args []string) error {
	force := false
	for _, arg := range args {
		switch arg {
		case "--force":
			force = true
		default:
			return fmt.Errorf("unknown argument %q\n\nUsage: latch init [--force]", arg)
		}
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	return writeManifest(root, force)
}

// writeManifest writes the starter manifest, refusing to overwrite an
// existing one unless force is set.
func writeManifest(root string, force bool) error {
	path := filepath.Join(root, "latch.yaml")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(manifestTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
