package cell

import (
	"github.com/go-latch/latch/pkg/dom"
)

// Widget is the capability contract of a live widget instance. Concrete
// widgets embed Base, which provides default implementations for the whole
// interface.
type Widget interface {
	// Element returns the document element the instance is bound to.
	// Nil once the instance has been destroyed.
	Element() *dom.Element

	// Name returns the widget type name the instance was registered under.
	Name() string

	// Reload is invoked by the reconciler when the instance's element
	// survived a markup refresh. The instance is carried forward unchanged;
	// Reload only notifies it so it can re-read attributes or re-render.
	Reload() error

	// Destroy is invoked by the reconciler when the instance's element left
	// the document, exactly once per instance. Overrides must call
	// Base.Destroy to release the element reference.
	Destroy() error
}

// Context carries everything a constructor receives: the element the new
// instance will be bound to, the registered type name, and the params decoded
// from the element's params attribute.
type Context struct {
	Element *dom.Element
	Name    string
	Params  Params
}

// Constructor builds a widget instance for an element. Returning an error
// aborts the reconciliation pass; the previous live set stays authoritative.
type Constructor func(ctx Context) (Widget, error)

// Base provides the default widget implementation. Embed it in your widget
// struct and build it with NewBase:
//
//	type UserMenu struct {
//	    cell.Base
//	}
//
//	func NewUserMenu(ctx cell.Context) (cell.Widget, error) {
//	    return &UserMenu{Base: cell.NewBase(ctx)}, nil
//	}
//
// Base.Reload is a no-op; override it to react to markup refreshes.
// Base.Destroy releases the element reference; overrides must call
// b.Base.Destroy() after their own cleanup.
type Base struct {
	element   *dom.Element
	name      string
	params    Params
	destroyed bool
}

// NewBase builds the embedded base for a widget from its constructor context.
func NewBase(ctx Context) Base {
	return Base{
		element: ctx.Element,
		name:    ctx.Name,
		params:  ctx.Params,
	}
}

// Element returns the bound document element, or nil after Destroy.
func (b *Base) Element() *dom.Element {
	return b.element
}

// Name returns the registered widget type name.
func (b *Base) Name() string {
	return b.name
}

// Params returns the configuration decoded at construction.
func (b *Base) Params() Params {
	return b.params
}

// Destroyed reports whether the instance has been destroyed.
func (b *Base) Destroyed() bool {
	return b.destroyed
}

// Reload is a no-op default implementation.
// Override this method to respond to markup refreshes.
func (b *Base) Reload() error {
	return nil
}

// Destroy releases the element reference so the document can reclaim the
// node, and marks the instance destroyed. Override this method if you need
// custom teardown, but always call b.Base.Destroy() in your override.
func (b *Base) Destroy() error {
	if b.destroyed {
		return nil
	}
	b.destroyed = true
	b.element = nil
	return nil
}

// Scoped resolves a selector fragment to a class token namespaced under the
// widget's type name, so widgets of different types never collide:
//
//	b.Scoped("content") // "Tabs__content" for a widget named Tabs
func (b *Base) Scoped(fragment string) string {
	return b.name + "__" + fragment
}

// Find returns the first descendant of the widget's element carrying the
// scoped class for fragment, or nil.
func (b *Base) Find(fragment string) *dom.Element {
	if b.element == nil {
		return nil
	}
	return b.element.FirstDescendantWithClass(b.Scoped(fragment))
}

// FindAll returns every descendant of the widget's element carrying the
// scoped class for fragment, in document order.
func (b *Base) FindAll(fragment string) []*dom.Element {
	if b.element == nil {
		return nil
	}
	return b.element.DescendantsWithClass(b.Scoped(fragment))
}

var _ Widget = (*Base)(nil)
