package latch_test

import (
	"errors"
	"testing"

	"github.com/go-latch/latch/pkg/cell"
	"github.com/go-latch/latch/pkg/dom"
	latcherrors "github.com/go-latch/latch/pkg/errors"
	"github.com/go-latch/latch/pkg/latch"
)

type probe struct {
	cell.Base
	reloads int
}

func newProbe(ctx cell.Context) (cell.Widget, error) {
	return &probe{Base: cell.NewBase(ctx)}, nil
}

func (p *probe) Reload() error {
	p.reloads++
	return nil
}

// discardHandler keeps reported pass failures out of the test log.
type discardHandler struct{}

func (discardHandler) HandleError(*latcherrors.LatchError) {}
func (discardHandler) HandlePanic(*latcherrors.PanicError) {}

func mustParse(t *testing.T, src string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(src)
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	return doc
}

func TestAttach_RunsInitialPass(t *testing.T) {
	doc := mustParse(t, `<body>
		<div data-cell="Probe" data-cell-params='{}'></div>
		<div data-cell="Probe" data-cell-params='{}'></div>
	</body>`)

	app, err := latch.Attach(doc, cell.Descriptor{Name: "Probe", New: newProbe})
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if got := len(app.Instances()); got != 2 {
		t.Errorf("expected 2 instances, got %d", got)
	}
	if app.Document() != doc {
		t.Error("expected app to manage the attached document")
	}
}

func TestAttachHTML(t *testing.T) {
	app, err := latch.AttachHTML(
		`<div data-cell="Probe" data-cell-params='{"label": "hi"}'></div>`,
		cell.Descriptor{Name: "Probe", New: newProbe},
	)
	if err != nil {
		t.Fatalf("AttachHTML failed: %v", err)
	}

	instances := app.Instances()
	if len(instances) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(instances))
	}
	p := instances[0].(*probe)
	if label, ok := p.Params().String("label"); !ok || label != "hi" {
		t.Errorf("expected label param hi, got %q (ok=%v)", label, ok)
	}
}

func TestAttach_ConstructorFailureSurfaces(t *testing.T) {
	latcherrors.SetHandler(discardHandler{})
	defer latcherrors.SetHandler(nil)

	ctorErr := errors.New("construct failed")
	failing := func(ctx cell.Context) (cell.Widget, error) {
		return nil, ctorErr
	}
	doc := mustParse(t, `<div data-cell="Bad" data-cell-params='{}'></div>`)

	app, err := latch.Attach(doc, cell.Descriptor{Name: "Bad", New: failing})
	if !errors.Is(err, ctorErr) {
		t.Fatalf("expected constructor error, got %v", err)
	}
	if app != nil {
		t.Error("expected nil app on failure")
	}
}

func TestRefresh_PicksUpDocumentChanges(t *testing.T) {
	doc := mustParse(t, `<body>
		<div data-cell="Probe" data-cell-params='{}'></div>
	</body>`)

	app, err := latch.Attach(doc, cell.Descriptor{Name: "Probe", New: newProbe})
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	first := app.Instances()[0].(*probe)

	if _, err := doc.AppendFragment(doc.Body(), `<div data-cell="Probe" data-cell-params='{}'></div>`); err != nil {
		t.Fatalf("AppendFragment failed: %v", err)
	}
	if err := app.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if got := len(app.Instances()); got != 2 {
		t.Errorf("expected 2 instances after refresh, got %d", got)
	}
	if first.reloads != 1 {
		t.Errorf("expected surviving instance reloaded once, got %d", first.reloads)
	}
}

func TestAttachWithOptions_CustomAttributes(t *testing.T) {
	doc := mustParse(t, `<body>
		<div data-widget="Probe" data-widget-config='{}'></div>
		<div data-cell="Probe" data-cell-params='{}'></div>
	</body>`)

	app, err := latch.AttachWithOptions(doc, cell.Options{
		MarkerAttr: "data-widget",
		ParamsAttr: "data-widget-config",
	}, cell.Descriptor{Name: "Probe", New: newProbe})
	if err != nil {
		t.Fatalf("AttachWithOptions failed: %v", err)
	}
	if got := len(app.Instances()); got != 1 {
		t.Errorf("expected only the data-widget marker latched, got %d instances", got)
	}
}
