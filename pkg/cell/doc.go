// Package cell synchronizes stateful widget instances with marker elements in
// server-rendered markup.
//
// Each element carrying the marker attribute names a widget type; the
// reconciler keeps exactly one live widget instance bound to each such
// element. Elements that disappear from the document have their widgets
// destroyed; elements that survive a markup refresh keep their existing
// instance and receive a reload notification instead of being rebuilt.
//
// # Core Types
//
// Registry maps widget type names to constructors. It is populated once at
// process start; registration is first-write-wins and duplicate names are a
// silent no-op.
//
// Reconciler runs reconciliation passes over a dom.Document and owns the live
// set, the ordered collection of currently bound instances.
//
// Widget is the capability contract every instance implements. Base provides
// the default implementation to embed.
//
// # Declaring Widgets
//
// A widget is a struct embedding Base, constructed from a Context:
//
//	type Tabs struct {
//	    cell.Base
//	    active int
//	}
//
//	func NewTabs(ctx cell.Context) (cell.Widget, error) {
//	    t := &Tabs{Base: cell.NewBase(ctx)}
//	    if n, ok := ctx.Params.Int("active"); ok {
//	        t.active = n
//	    }
//	    return t, nil
//	}
//
// Register it under the type name used in markup, then reconcile:
//
//	reg := cell.NewRegistry()
//	reg.Register("Tabs", NewTabs)
//
//	rec := cell.New(reg, doc)
//	if err := rec.Initialize(); err != nil {
//	    // handle
//	}
//
// Markup declares instances with the marker and params attributes:
//
//	<div data-cell="Tabs" data-cell-params='{"active": 2}'>...</div>
//
// # Reconciliation Passes
//
// Reload scans the document for marker elements in document order, resolves
// each type name, reuses the instance already bound to an element (matching
// by element identity, never by attribute content), constructs instances for
// new elements, destroys instances whose elements left the document, and
// swaps in the new live set. A pass that fails on resolution or params
// decoding commits nothing: the previous live set stays authoritative and no
// hooks run.
//
// Passes are synchronous and must not overlap. Calling Reload from within a
// widget hook returns errors.ErrReentrantReload.
package cell
