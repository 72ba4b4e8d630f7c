// Package testbed provides test widgets for exercising the harness.
package testbed

import (
	"fmt"

	"github.com/go-latch/latch/pkg/cell"
)

// Log collects lifecycle events across every widget instance sharing it.
type Log struct {
	Events []string
}

func (l *Log) add(format string, args ...any) {
	l.Events = append(l.Events, fmt.Sprintf(format, args...))
}

// Recorder is a widget that records its lifecycle transitions.
type Recorder struct {
	cell.Base
	Reloads  int
	Destroys int

	// FailReload and FailDestroy inject hook failures.
	FailReload  error
	FailDestroy error

	log *Log
}

// NewRecorder returns a constructor whose instances append their lifecycle
// events to log. A nil log disables event recording.
func NewRecorder(log *Log) cell.Constructor {
	return func(ctx cell.Context) (cell.Widget, error) {
		if log != nil {
			log.add("construct %s", ctx.Name)
		}
		return &Recorder{Base: cell.NewBase(ctx), log: log}, nil
	}
}

func (r *Recorder) Reload() error {
	r.Reloads++
	if r.log != nil {
		r.log.add("reload %s", r.Name())
	}
	return r.FailReload
}

func (r *Recorder) Destroy() error {
	r.Destroys++
	if r.log != nil {
		r.log.add("destroy %s", r.Name())
	}
	if r.FailDestroy != nil {
		return r.FailDestroy
	}
	return r.Base.Destroy()
}

// FailingConstructor returns a constructor that always fails with err.
func FailingConstructor(err error) cell.Constructor {
	return func(ctx cell.Context) (cell.Widget, error) {
		return nil, err
	}
}
