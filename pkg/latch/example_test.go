package latch_test

import (
	"fmt"

	"github.com/go-latch/latch/pkg/cell"
	"github.com/go-latch/latch/pkg/latch"
)

type badge struct {
	cell.Base
	label string
}

func newBadge(ctx cell.Context) (cell.Widget, error) {
	label, _ := ctx.Params.String("label")
	return &badge{Base: cell.NewBase(ctx), label: label}, nil
}

// This example shows how to latch a widget set onto a server-rendered page.
func ExampleAttach() {
	page := `<body>
		<span data-cell="Badge" data-cell-params='{"label": "beta"}'></span>
	</body>`

	app, err := latch.AttachHTML(page, cell.Descriptor{Name: "Badge", New: newBadge})
	if err != nil {
		fmt.Println("attach failed:", err)
		return
	}

	for _, w := range app.Instances() {
		fmt.Printf("%s: %s\n", w.Name(), w.(*badge).label)
	}
	// Output:
	// Badge: beta
}

// This example shows how a refresh picks up markup the server pushed after
// the initial attach.
func ExampleApp_Refresh() {
	app, err := latch.AttachHTML(`<body></body>`,
		cell.Descriptor{Name: "Badge", New: newBadge})
	if err != nil {
		fmt.Println("attach failed:", err)
		return
	}

	doc := app.Document()
	if _, err := doc.AppendFragment(doc.Body(),
		`<span data-cell="Badge" data-cell-params='{"label": "new"}'></span>`); err != nil {
		fmt.Println("append failed:", err)
		return
	}
	if err := app.Refresh(); err != nil {
		fmt.Println("refresh failed:", err)
		return
	}

	fmt.Println("live:", len(app.Instances()))
	// Output:
	// live: 1
}
