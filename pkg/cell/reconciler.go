package cell

import (
	"fmt"

	"github.com/go-latch/latch/pkg/dom"
	"github.com/go-latch/latch/pkg/errors"
)

// Default attribute names for widget markers.
const (
	DefaultMarkerAttr = "data-cell"
	DefaultParamsAttr = "data-cell-params"
)

// Options configures a Reconciler. Zero fields fall back to the package
// defaults.
type Options struct {
	// MarkerAttr marks an element as a widget mount point and holds the
	// widget type name. Defaults to DefaultMarkerAttr.
	MarkerAttr string

	// ParamsAttr holds the widget's configuration. Defaults to
	// DefaultParamsAttr.
	ParamsAttr string

	// Codec decodes the params attribute. Defaults to DefaultCodec.
	Codec ParamsCodec
}

// Reconciler keeps the set of live widget instances in sync with the marker
// elements present in a document. Identity is the element: as long as an
// element stays in the document, its instance survives every pass, and when
// the element leaves, the instance is destroyed exactly once.
//
// A Reconciler is single-threaded and non-re-entrant: calling Reload from
// inside a widget hook returns errors.ErrReentrantReload.
type Reconciler struct {
	registry *Registry
	doc      *dom.Document

	markerAttr string
	paramsAttr string
	codec      ParamsCodec

	live   map[*dom.Element]Widget
	order  []*dom.Element
	active bool
}

// New returns a reconciler over doc using the default attributes and codec.
func New(registry *Registry, doc *dom.Document) *Reconciler {
	return NewWithOptions(registry, doc, Options{})
}

// NewWithOptions returns a reconciler with explicit options.
func NewWithOptions(registry *Registry, doc *dom.Document, opts Options) *Reconciler {
	if opts.MarkerAttr == "" {
		opts.MarkerAttr = DefaultMarkerAttr
	}
	if opts.ParamsAttr == "" {
		opts.ParamsAttr = DefaultParamsAttr
	}
	if opts.Codec == nil {
		opts.Codec = DefaultCodec
	}
	return &Reconciler{
		registry:   registry,
		doc:        doc,
		markerAttr: opts.MarkerAttr,
		paramsAttr: opts.ParamsAttr,
		codec:      opts.Codec,
		live:       make(map[*dom.Element]Widget),
	}
}

// Initialize runs the first reconciliation pass. It is a Reload with no
// pre-existing instances, so every marker element gets a fresh instance.
func (r *Reconciler) Initialize() error {
	return r.Reload()
}

// Reload brings the live set in line with the document's marker elements.
// Elements that already have an instance keep it and receive a Reload call,
// elements without one get a new instance constructed from their params
// attribute, and instances whose element left the document are destroyed.
//
// Widget resolution and params decoding happen for every marker element
// before any instance is touched, so an unknown widget type or a bad params
// attribute aborts the pass with the previous live set fully intact. Errors
// from widget hooks also abort the pass, but side effects of hooks that
// already ran are not rolled back.
func (r *Reconciler) Reload() error {
	if r.active {
		return errors.ErrReentrantReload
	}
	r.active = true
	defer func() { r.active = false }()

	plan, err := r.plan()
	if err != nil {
		return err
	}
	return r.commit(plan)
}

// plannedCell is one marker element's slot in the upcoming live set, either
// a carried-forward instance or the ingredients for a new one.
type plannedCell struct {
	el     *dom.Element
	widget Widget
	name   string
	ctor   Constructor
	params Params
}

// plan scans the document and resolves every marker element without side
// effects. Any failure here leaves the live set untouched.
func (r *Reconciler) plan() ([]plannedCell, error) {
	elems := r.doc.ElementsWithAttr(r.markerAttr)
	plan := make([]plannedCell, 0, len(elems))
	for _, el := range elems {
		name, _ := el.Attr(r.markerAttr)
		ctor, ok := r.registry.Resolve(name)
		if !ok {
			return nil, fail("cell.resolve", errors.KindResolve, name, &errors.UnknownWidgetError{
				Name:   name,
				Marker: fmt.Sprintf("<%s %s=%q>", el.Tag(), r.markerAttr, name),
			})
		}
		if w, exists := r.live[el]; exists {
			plan = append(plan, plannedCell{el: el, widget: w, name: w.Name()})
			continue
		}
		raw, ok := el.Attr(r.paramsAttr)
		if !ok {
			return nil, fail("cell.params", errors.KindParams, name, &errors.ParamsError{
				Name: name,
				Attr: r.paramsAttr,
				Err:  errors.ErrMissingParams,
			})
		}
		params, err := decodeParams(r.codec, []byte(raw))
		if err != nil {
			return nil, fail("cell.params", errors.KindParams, name, &errors.ParamsError{
				Name: name,
				Attr: r.paramsAttr,
				Err:  err,
			})
		}
		plan = append(plan, plannedCell{el: el, name: name, ctor: ctor, params: params})
	}
	return plan, nil
}

// commit walks the plan in document order, reloading survivors and
// constructing new instances, then destroys orphans and swaps the live set.
func (r *Reconciler) commit(plan []plannedCell) error {
	nextLive := make(map[*dom.Element]Widget, len(plan))
	nextOrder := make([]*dom.Element, 0, len(plan))
	var created []Widget

	for _, pc := range plan {
		w := pc.widget
		if w != nil {
			if err := w.Reload(); err != nil {
				discard(created)
				return fail("cell.reload", errors.KindHook, pc.name, err)
			}
		} else {
			var err error
			w, err = pc.ctor(Context{Element: pc.el, Name: pc.name, Params: pc.params})
			if err != nil {
				discard(created)
				return fail("cell.construct", errors.KindHook, pc.name, err)
			}
			if w == nil {
				discard(created)
				return fail("cell.construct", errors.KindHook, pc.name,
					fmt.Errorf("constructor returned nil widget"))
			}
			created = append(created, w)
		}
		nextLive[pc.el] = w
		nextOrder = append(nextOrder, pc.el)
	}

	// Orphans are destroyed even when one of them fails, so no instance is
	// ever destroyed twice. The first failure is returned after the swap.
	var firstErr error
	for _, el := range r.order {
		if _, survives := nextLive[el]; survives {
			continue
		}
		w := r.live[el]
		if err := w.Destroy(); err != nil {
			err = fail("cell.destroy", errors.KindHook, w.Name(), err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	r.live = nextLive
	r.order = nextOrder
	return firstErr
}

// discard destroys instances constructed during a pass that aborted before
// the live set swap.
func discard(created []Widget) {
	for _, w := range created {
		name := w.Name()
		if err := w.Destroy(); err != nil {
			fail("cell.discard", errors.KindHook, name, err)
		}
	}
}

func fail(op string, kind errors.ErrorKind, widget string, err error) error {
	lerr := &errors.LatchError{Op: op, Kind: kind, Widget: widget, Err: err}
	errors.Report(lerr)
	return lerr
}

// Instances returns the live instances in document order as of the last
// completed pass.
func (r *Reconciler) Instances() []Widget {
	out := make([]Widget, 0, len(r.order))
	for _, el := range r.order {
		out = append(out, r.live[el])
	}
	return out
}

// Len returns the number of live instances.
func (r *Reconciler) Len() int {
	return len(r.live)
}

// Lookup returns the live instance bound to el.
func (r *Reconciler) Lookup(el *dom.Element) (Widget, bool) {
	w, ok := r.live[el]
	return w, ok
}

// Document returns the document the reconciler manages.
func (r *Reconciler) Document() *dom.Document {
	return r.doc
}

// SetDocument replaces the managed document. Instances bound to elements of
// the previous document are destroyed on the next pass, since those elements
// can no longer appear in a scan.
func (r *Reconciler) SetDocument(doc *dom.Document) {
	r.doc = doc
}
