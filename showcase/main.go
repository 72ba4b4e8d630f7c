// The latch showcase runs the engine headlessly against an embedded demo
// page: one pass to latch widgets onto the server-rendered markup, a bit of
// client-side interaction, then a simulated server push and a second pass.
package main

import (
	"embed"
	"fmt"
	"os"

	"github.com/go-latch/latch/pkg/cell"
	"github.com/go-latch/latch/pkg/dom"
	"github.com/go-latch/latch/pkg/errors"
	"github.com/go-latch/latch/pkg/latch"
)

//go:embed assets/index.html
var assets embed.FS

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	errors.SetHandler(&errors.LogHandler{Verbose: true})

	page, err := assets.Open("assets/index.html")
	if err != nil {
		return err
	}
	defer page.Close()

	doc, err := dom.Parse(page)
	if err != nil {
		return err
	}

	app, err := latch.Attach(doc, descriptors...)
	if err != nil {
		return err
	}
	printLive("initialized", app.Reconciler())

	// Client-side interaction.
	for _, w := range app.Instances() {
		switch w := w.(type) {
		case *Counter:
			w.Increment()
			w.Increment()
		case *Tabs:
			if err := w.Select(2); err != nil {
				return err
			}
		}
	}
	printLive("after interaction", app.Reconciler())

	// A server push replaces the sidebar: the counter's element goes away and
	// a fresh marker arrives with different params. The tab group is untouched,
	// so its instance and selection carry over.
	for _, w := range app.Instances() {
		if c, ok := w.(*Counter); ok {
			c.Element().Detach()
		}
	}
	fragment := `<aside data-cell="Counter" data-cell-params='{"start": 0}'>
		<span class="Counter__value"></span>
	</aside>`
	if _, err := doc.AppendFragment(doc.Body(), fragment); err != nil {
		return err
	}

	if err := app.Refresh(); err != nil {
		return err
	}
	printLive("after server push", app.Reconciler())

	return nil
}

func printLive(label string, rec *cell.Reconciler) {
	fmt.Printf("%s: %d live\n", label, rec.Len())
	for _, w := range rec.Instances() {
		switch w := w.(type) {
		case *Counter:
			fmt.Printf("  %s <%s> value=%d\n", w.Name(), w.Element().Tag(), w.Value())
		case *Tabs:
			fmt.Printf("  %s <%s> active=%d\n", w.Name(), w.Element().Tag(), w.Active())
		default:
			fmt.Printf("  %s <%s>\n", w.Name(), w.Element().Tag())
		}
	}
}
