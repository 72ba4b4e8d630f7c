package main

import (
	"github.com/go-latch/latch/pkg/cell"
)

// descriptors is the registry of all showcase widgets.
// Add new widgets here to make their marker types resolvable.
var descriptors = []cell.Descriptor{
	{Name: "Tabs", New: newTabs},
	{Name: "Counter", New: newCounter},
}
