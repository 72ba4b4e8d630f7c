package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-latch/latch/cmd/latch/internal/config"
	"github.com/go-latch/latch/cmd/latch/internal/lint"
	"golang.org/x/mod/semver"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate widget markup against the project manifest",
		Long: `Check markup files for widget mistakes before they surface at runtime.

The check parses every .html file under the given paths (the project root
when no paths are given) and reports:

  error    marker with an empty or unknown widget type
  error    marker missing its params attribute
  error    params attribute that does not decode as JSON
  warning  marker nested inside another marker

Unknown widget types are only reported when latch.yaml lists the project's
widgets; without a list any type name is accepted.

Flags:
  --strict   Treat warnings as failures`,
		Usage: "latch check [paths...] [--strict]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	strict := false
	var paths []string
	for _, arg := range args {
		switch {
		case arg == "--strict":
			strict = true
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag %q\n\nUsage: latch check [paths...] [--strict]", arg)
		default:
			paths = append(paths, arg)
		}
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	if err := checkEngineVersion(cfg.EngineVersion); err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = []string{root}
	}

	files, err := collectMarkupFiles(paths)
	if err != nil {
		return err
	}

	opts := lint.Options{
		MarkerAttr: cfg.MarkerAttr,
		ParamsAttr: cfg.ParamsAttr,
		Widgets:    cfg.Widgets,
	}

	var findings []lint.Finding
	for _, file := range files {
		found, err := lint.CheckFile(file, opts)
		if err != nil {
			return err
		}
		findings = append(findings, found...)
	}

	for _, f := range findings {
		fmt.Printf("%s: %s: %s\n", f.Path, f.Severity, f.Message)
	}

	errs, warns := lint.Count(findings)
	fmt.Printf("checked %d files: %d errors, %d warnings\n", len(files), errs, warns)

	if errs > 0 || (strict && warns > 0) {
		return fmt.Errorf("markup check failed")
	}
	return nil
}

// checkEngineVersion enforces the minimum engine version pinned in
// latch.yaml. "latest" and an empty value accept any CLI.
func checkEngineVersion(required string) error {
	if required == "" || required == "latest" {
		return nil
	}

	req := "v" + strings.TrimPrefix(required, "v")
	if !semver.IsValid(req) {
		return fmt.Errorf("engine.version %q in latch.yaml is not a valid semantic version", required)
	}

	cur := "v" + strings.TrimPrefix(Version, "v")
	if semver.Compare(cur, req) < 0 {
		return fmt.Errorf("project requires engine %s or newer, this CLI is %s", required, Version)
	}
	return nil
}

// collectMarkupFiles expands paths into a sorted, de-duplicated list of
// markup files. Files are taken as-is; directories are walked, skipping
// hidden subdirectories.
func collectMarkupFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}
			switch filepath.Ext(path) {
			case ".html", ".htm":
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}
