// Package celltest provides a harness for testing widgets against in-memory
// documents without a host page.
package celltest

import (
	"testing"

	"github.com/go-latch/latch/pkg/cell"
	"github.com/go-latch/latch/pkg/dom"
	"github.com/go-latch/latch/pkg/errors"
)

// Harness wires a registry, a document and a reconciler together, and
// captures reported errors instead of logging them.
type Harness struct {
	registry *cell.Registry
	rec      *cell.Reconciler
	reports  []*errors.LatchError
	panics   []*errors.PanicError
}

// New creates a harness over an empty document and installs it as the global
// error handler. Call Cleanup when done, or use NewWithT instead.
func New() *Harness {
	h := &Harness{registry: cell.NewRegistry()}
	doc, _ := dom.ParseString("")
	h.rec = cell.New(h.registry, doc)
	errors.SetHandler(h)
	return h
}

// NewWithT creates a harness that restores the error handler via t.Cleanup.
// This is the recommended constructor for tests.
func NewWithT(t *testing.T) *Harness {
	h := New()
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the default global error handler. Must be called if not
// using NewWithT.
func (h *Harness) Cleanup() {
	errors.SetHandler(nil)
}

// Register binds a widget type in the harness registry.
func (h *Harness) Register(name string, ctor cell.Constructor) {
	h.registry.Register(name, ctor)
}

// Registry returns the harness registry.
func (h *Harness) Registry() *cell.Registry {
	return h.registry
}

// Reconciler returns the underlying reconciler.
func (h *Harness) Reconciler() *cell.Reconciler {
	return h.rec
}

// Document returns the document under reconciliation.
func (h *Harness) Document() *dom.Document {
	return h.rec.Document()
}

// SetHTML replaces the document with freshly parsed markup. Instances bound
// to the previous document are destroyed on the next Pump.
func (h *Harness) SetHTML(src string) error {
	doc, err := dom.ParseString(src)
	if err != nil {
		return err
	}
	h.rec.SetDocument(doc)
	return nil
}

// AppendHTML appends fragment to the document body and returns handles for
// its top-level elements.
func (h *Harness) AppendHTML(fragment string) ([]*dom.Element, error) {
	doc := h.rec.Document()
	return doc.AppendFragment(doc.Body(), fragment)
}

// Pump runs one reconciliation pass.
func (h *Harness) Pump() error {
	return h.rec.Reload()
}

// MustPump runs one reconciliation pass and fails the test on error.
func (h *Harness) MustPump(t *testing.T) {
	t.Helper()
	if err := h.rec.Reload(); err != nil {
		t.Fatalf("reconciliation pass failed: %v", err)
	}
}

// Instances returns the live instances in document order.
func (h *Harness) Instances() []cell.Widget {
	return h.rec.Instances()
}

// ByName returns the live instances of the named widget type, in document order.
func (h *Harness) ByName(name string) []cell.Widget {
	var out []cell.Widget
	for _, w := range h.rec.Instances() {
		if w.Name() == name {
			out = append(out, w)
		}
	}
	return out
}

// Reports returns the errors reported since the last ResetReports.
func (h *Harness) Reports() []*errors.LatchError {
	return h.reports
}

// Panics returns the panics reported since the last ResetReports.
func (h *Harness) Panics() []*errors.PanicError {
	return h.panics
}

// ResetReports drops all captured reports.
func (h *Harness) ResetReports() {
	h.reports = nil
	h.panics = nil
}

// HandleError implements errors.Handler.
func (h *Harness) HandleError(err *errors.LatchError) {
	h.reports = append(h.reports, err)
}

// HandlePanic implements errors.Handler.
func (h *Harness) HandlePanic(p *errors.PanicError) {
	h.panics = append(h.panics, p)
}
