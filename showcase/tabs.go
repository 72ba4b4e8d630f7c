package main

import (
	"fmt"
	"strconv"

	"github.com/go-latch/latch/pkg/cell"
)

// Tabs drives a server-rendered tab group: it marks the selected tab and
// shows the matching panel. The selection is client-side state and survives
// markup refreshes of the group.
type Tabs struct {
	cell.Base
	active int
}

func newTabs(ctx cell.Context) (cell.Widget, error) {
	t := &Tabs{Base: cell.NewBase(ctx)}
	if n, ok := ctx.Params.Int("active"); ok {
		t.active = n
	}
	return t, t.apply()
}

// Select switches to the i-th tab.
func (t *Tabs) Select(i int) error {
	t.active = i
	return t.apply()
}

// Active returns the selected tab index.
func (t *Tabs) Active() int {
	return t.active
}

func (t *Tabs) Reload() error {
	return t.apply()
}

func (t *Tabs) apply() error {
	tabs := t.FindAll("tab")
	panels := t.FindAll("panel")
	if len(tabs) == 0 {
		return fmt.Errorf("tab group has no %s elements", t.Scoped("tab"))
	}
	if t.active < 0 || t.active >= len(tabs) {
		t.active = 0
	}

	for i, el := range tabs {
		el.SetAttr("aria-selected", strconv.FormatBool(i == t.active))
	}
	for i, el := range panels {
		el.SetAttr("aria-hidden", strconv.FormatBool(i != t.active))
	}
	return nil
}
