package celltest

import (
	"errors"
	"testing"

	"github.com/go-latch/latch/pkg/celltest/internal/testbed"
	latcherrors "github.com/go-latch/latch/pkg/errors"
	"github.com/google/go-cmp/cmp"
)

func TestHarness_PumpConstructsFromMarkup(t *testing.T) {
	h := NewWithT(t)
	log := &testbed.Log{}
	h.Register("Tabs", testbed.NewRecorder(log))
	h.Register("Menu", testbed.NewRecorder(log))

	if err := h.SetHTML(`
		<div data-cell="Tabs" data-cell-params='{}'></div>
		<div data-cell="Menu" data-cell-params='{}'></div>
		<div data-cell="Tabs" data-cell-params='{}'></div>`); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	if err := h.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}

	if got := len(h.Instances()); got != 3 {
		t.Fatalf("expected 3 live instances, got %d", got)
	}
	if got := len(h.ByName("Tabs")); got != 2 {
		t.Errorf("expected 2 Tabs instances, got %d", got)
	}
	want := []string{"construct Tabs", "construct Menu", "construct Tabs"}
	if diff := cmp.Diff(want, log.Events); diff != "" {
		t.Errorf("lifecycle events mismatch (-want +got):\n%s", diff)
	}
}

func TestHarness_LifecycleAcrossPumps(t *testing.T) {
	h := NewWithT(t)
	log := &testbed.Log{}
	h.Register("Tabs", testbed.NewRecorder(log))

	if err := h.SetHTML(`<div data-cell="Tabs" data-cell-params='{}'></div>`); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	h.MustPump(t)

	tabs := h.ByName("Tabs")[0].(*testbed.Recorder)
	h.MustPump(t)
	if tabs.Reloads != 1 {
		t.Errorf("expected 1 reload, got %d", tabs.Reloads)
	}

	tabs.Element().Detach()
	h.MustPump(t)
	if tabs.Destroys != 1 {
		t.Errorf("expected 1 destroy, got %d", tabs.Destroys)
	}

	want := []string{"construct Tabs", "reload Tabs", "destroy Tabs"}
	if diff := cmp.Diff(want, log.Events); diff != "" {
		t.Errorf("lifecycle events mismatch (-want +got):\n%s", diff)
	}
}

func TestHarness_AppendHTML(t *testing.T) {
	h := NewWithT(t)
	h.Register("Tabs", testbed.NewRecorder(nil))

	if err := h.SetHTML(`<p>empty page</p>`); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	if err := h.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if got := len(h.Instances()); got != 0 {
		t.Fatalf("expected no instances yet, got %d", got)
	}

	els, err := h.AppendHTML(`<div data-cell="Tabs" data-cell-params='{}'></div>`)
	if err != nil {
		t.Fatalf("AppendHTML: %v", err)
	}
	if len(els) != 1 {
		t.Fatalf("expected 1 appended element, got %d", len(els))
	}
	if err := h.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}

	w, ok := h.Reconciler().Lookup(els[0])
	if !ok {
		t.Fatal("expected the appended element to carry an instance")
	}
	if w.Element() != els[0] {
		t.Error("expected instance bound to the appended element")
	}
}

func TestHarness_SetHTMLReplacesDocument(t *testing.T) {
	h := NewWithT(t)
	h.Register("Tabs", testbed.NewRecorder(nil))

	if err := h.SetHTML(`<div data-cell="Tabs" data-cell-params='{}'></div>`); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	if err := h.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	old := h.ByName("Tabs")[0].(*testbed.Recorder)

	if err := h.SetHTML(`<div data-cell="Tabs" data-cell-params='{}'></div>`); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	if err := h.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}

	if old.Destroys != 1 {
		t.Errorf("expected old document's instance destroyed, got %d destroys", old.Destroys)
	}
	live := h.ByName("Tabs")
	if len(live) != 1 {
		t.Fatalf("expected 1 live instance, got %d", len(live))
	}
	if live[0].(*testbed.Recorder) == old {
		t.Error("expected a fresh instance for the new document")
	}
}

func TestHarness_CapturesReports(t *testing.T) {
	h := NewWithT(t)

	if err := h.SetHTML(`<div data-cell="Ghost" data-cell-params='{}'></div>`); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	err := h.Pump()
	if err == nil {
		t.Fatal("expected error for unregistered widget type")
	}
	var ue *latcherrors.UnknownWidgetError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnknownWidgetError, got %T: %v", err, err)
	}

	reports := h.Reports()
	if len(reports) != 1 {
		t.Fatalf("expected 1 captured report, got %d", len(reports))
	}
	if reports[0].Kind != latcherrors.KindResolve {
		t.Errorf("expected KindResolve, got %v", reports[0].Kind)
	}

	h.ResetReports()
	if got := len(h.Reports()); got != 0 {
		t.Errorf("expected no reports after reset, got %d", got)
	}
}

func TestHarness_FailingConstructorLeavesNoInstances(t *testing.T) {
	h := NewWithT(t)
	ctorErr := errors.New("backend offline")
	h.Register("Broken", testbed.FailingConstructor(ctorErr))

	if err := h.SetHTML(`<div data-cell="Broken" data-cell-params='{}'></div>`); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	if err := h.Pump(); !errors.Is(err, ctorErr) {
		t.Fatalf("expected constructor error, got %v", err)
	}
	if got := len(h.Instances()); got != 0 {
		t.Errorf("expected no live instances, got %d", got)
	}
}
