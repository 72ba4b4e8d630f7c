package main

import (
	"strconv"

	"github.com/go-latch/latch/pkg/cell"
)

// Counter keeps a client-side count seeded from its params. The count
// survives markup refreshes of the element it is latched onto; replacing
// the element resets it.
type Counter struct {
	cell.Base
	value int
	step  int
}

func newCounter(ctx cell.Context) (cell.Widget, error) {
	c := &Counter{Base: cell.NewBase(ctx), step: 1}
	if n, ok := ctx.Params.Int("start"); ok {
		c.value = n
	}
	if n, ok := ctx.Params.Int("step"); ok && n != 0 {
		c.step = n
	}
	c.render()
	return c, nil
}

// Increment advances the count by the configured step.
func (c *Counter) Increment() {
	c.value += c.step
	c.render()
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}

func (c *Counter) Reload() error {
	// A refresh of the surrounding markup keeps the count; only the
	// rendered value needs to be written back.
	c.render()
	return nil
}

func (c *Counter) render() {
	if out := c.Find("value"); out != nil {
		out.SetAttr("data-value", strconv.Itoa(c.value))
	}
}
