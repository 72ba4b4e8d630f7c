package cell

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegister_FirstWriteWins(t *testing.T) {
	reg := NewRegistry()
	var first, second bool
	reg.Register("Tabs", func(ctx Context) (Widget, error) {
		first = true
		return nil, nil
	})
	reg.Register("Tabs", func(ctx Context) (Widget, error) {
		second = true
		return nil, nil
	})

	ctor, ok := reg.Resolve("Tabs")
	if !ok {
		t.Fatal("expected Tabs to resolve")
	}
	ctor(Context{})
	if !first || second {
		t.Error("expected the first registration to win")
	}
}

func TestRegister_IgnoresEmptyNameAndNilConstructor(t *testing.T) {
	reg := NewRegistry()
	reg.Register("", func(ctx Context) (Widget, error) { return nil, nil })
	reg.Register("Tabs", nil)

	if reg.Has("") {
		t.Error("expected empty name not to register")
	}
	if reg.Has("Tabs") {
		t.Error("expected nil constructor not to register")
	}
	if got := len(reg.Names()); got != 0 {
		t.Errorf("expected empty registry, got %d names", got)
	}
}

func TestRegisterAll_FirstWriteWinsAcrossDescriptors(t *testing.T) {
	var calls []string
	mark := func(label string) Constructor {
		return func(ctx Context) (Widget, error) {
			calls = append(calls, label)
			return nil, nil
		}
	}

	reg := NewRegistry()
	reg.RegisterAll(
		Descriptor{Name: "Tabs", New: mark("tabs")},
		Descriptor{Name: "Menu", New: mark("menu")},
		Descriptor{Name: "Tabs", New: mark("late")},
	)

	for _, name := range []string{"Tabs", "Menu"} {
		ctor, ok := reg.Resolve(name)
		if !ok {
			t.Fatalf("expected %s to resolve", name)
		}
		ctor(Context{})
	}
	want := []string{"tabs", "menu"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("constructor calls mismatch (-want +got):\n%s", diff)
	}
}

func TestNames_Sorted(t *testing.T) {
	reg := NewRegistry()
	nop := func(ctx Context) (Widget, error) { return nil, nil }
	reg.Register("Menu", nop)
	reg.Register("Accordion", nop)
	reg.Register("Tabs", nop)

	want := []string{"Accordion", "Menu", "Tabs"}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Unknown(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Resolve("Nope"); ok {
		t.Error("expected unknown name not to resolve")
	}
	if reg.Has("Nope") {
		t.Error("expected Has to report false for unknown name")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	nop := func(ctx Context) (Widget, error) { return nil, nil }

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range []string{"Tabs", "Menu", "Accordion"} {
				reg.Register(name, nop)
				reg.Has(name)
				reg.Names()
			}
		}()
	}
	wg.Wait()

	if got := len(reg.Names()); got != 3 {
		t.Errorf("expected 3 registered names, got %d", got)
	}
}
