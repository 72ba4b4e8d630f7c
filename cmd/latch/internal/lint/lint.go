// Package lint checks widget markup for mistakes the reconciler would
// surface at runtime: unknown widget types, missing or malformed params
// attributes, and markers nested inside other markers.
package lint

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-latch/latch/pkg/cell"
	"github.com/go-latch/latch/pkg/dom"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single problem located in a markup file.
type Finding struct {
	Path     string
	Widget   string
	Severity Severity
	Message  string
}

// Options configures a check pass. Zero-value attribute fields fall back
// to the reconciler defaults. An empty Widgets list disables the
// unknown-type check, since nothing is known to compare against.
type Options struct {
	MarkerAttr string
	ParamsAttr string
	Widgets    []string
}

// CheckFile parses the file at path and checks its markers.
func CheckFile(path string, opts Options) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return Check(doc, path, opts), nil
}

// Check inspects every marker element in doc and reports findings in
// document order.
func Check(doc *dom.Document, path string, opts Options) []Finding {
	marker := opts.MarkerAttr
	if marker == "" {
		marker = cell.DefaultMarkerAttr
	}
	params := opts.ParamsAttr
	if params == "" {
		params = cell.DefaultParamsAttr
	}

	known := make(map[string]bool, len(opts.Widgets))
	for _, w := range opts.Widgets {
		known[w] = true
	}

	var findings []Finding
	report := func(widget string, severity Severity, format string, args ...any) {
		findings = append(findings, Finding{
			Path:     path,
			Widget:   widget,
			Severity: severity,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	for _, el := range doc.ElementsWithAttr(marker) {
		name, _ := el.Attr(marker)
		name = strings.TrimSpace(name)
		if name == "" {
			report("", SeverityError, "marker %s has an empty widget type", marker)
			continue
		}

		if len(known) > 0 && !known[name] {
			report(name, SeverityError, "unknown widget type %q (not listed in latch.yaml)", name)
		}

		raw, ok := el.Attr(params)
		if !ok {
			report(name, SeverityError, "marker for %q is missing the %s attribute", name, params)
		} else if _, err := cell.DefaultCodec.Decode([]byte(raw)); err != nil {
			report(name, SeverityError, "params for %q do not decode: %v", name, err)
		}

		if nested := el.DescendantsWithAttr(marker); len(nested) > 0 {
			inner, _ := nested[0].Attr(marker)
			report(name, SeverityWarning, "marker for %q contains a nested marker for %q", name, inner)
		}
	}

	return findings
}

// Count tallies findings by severity.
func Count(findings []Finding) (errors, warnings int) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
