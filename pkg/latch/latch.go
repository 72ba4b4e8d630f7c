// Package latch is the front door for hosts: it registers a widget set and
// latches it onto a parsed document in one call. Hosts that need a shared
// registry across documents, custom marker attributes, or staged
// initialization use pkg/cell directly.
package latch

import (
	"github.com/go-latch/latch/pkg/cell"
	"github.com/go-latch/latch/pkg/dom"
)

// App is a document with a widget set latched onto it.
type App struct {
	registry   *cell.Registry
	reconciler *cell.Reconciler
}

// Attach registers the given widgets and runs the initial reconciliation
// pass against doc. On error no instances are live.
func Attach(doc *dom.Document, widgets ...cell.Descriptor) (*App, error) {
	return AttachWithOptions(doc, cell.Options{}, widgets...)
}

// AttachWithOptions is Attach with reconciler options.
func AttachWithOptions(doc *dom.Document, opts cell.Options, widgets ...cell.Descriptor) (*App, error) {
	reg := cell.NewRegistry()
	reg.RegisterAll(widgets...)

	app := &App{
		registry:   reg,
		reconciler: cell.NewWithOptions(reg, doc, opts),
	}
	if err := app.reconciler.Initialize(); err != nil {
		return nil, err
	}
	return app, nil
}

// AttachHTML parses src as a full document and attaches to the result.
func AttachHTML(src string, widgets ...cell.Descriptor) (*App, error) {
	doc, err := dom.ParseString(src)
	if err != nil {
		return nil, err
	}
	return Attach(doc, widgets...)
}

// Refresh runs one reconciliation pass, picking up document changes made
// since the last pass.
func (a *App) Refresh() error {
	return a.reconciler.Reload()
}

// Document returns the managed document.
func (a *App) Document() *dom.Document {
	return a.reconciler.Document()
}

// Registry returns the app's widget registry.
func (a *App) Registry() *cell.Registry {
	return a.registry
}

// Reconciler returns the underlying reconciler.
func (a *App) Reconciler() *cell.Reconciler {
	return a.reconciler
}

// Instances returns the live widget instances in document order.
func (a *App) Instances() []cell.Widget {
	return a.reconciler.Instances()
}
