package app

import (
	"errors"
	"fmt"

	"github.com/baaaaaaaka/tcwidgets/internal/widget"
)

var (
	ErrUnknownWidget   = errors.New("unknown widget")
	ErrDuplicateWidget = errors.New("duplicate widget name")
)

// Focus tracks the registered widgets and which of the editable ones
// receives key input. At most one widget is focused and it is always
// registry[index].
type Focus struct {
	widgets  map[string]widget.Widget
	order    []string
	registry []string
	index    int
}

func NewFocus() *Focus {
	return &Focus{widgets: map[string]widget.Widget{}}
}

func (f *Focus) Add(name string, w widget.Widget) error {
	if _, ok := f.widgets[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateWidget, name)
	}
	f.widgets[name] = w
	f.order = append(f.order, name)
	if !w.Editable() {
		w.SetFocus(false)
		return nil
	}
	f.registry = append(f.registry, name)
	if len(f.registry) == 1 {
		f.index = 0
	}
	f.apply()
	return nil
}

func (f *Focus) Widget(name string) (widget.Widget, bool) {
	w, ok := f.widgets[name]
	return w, ok
}

// Names lists every registered widget in registration order.
func (f *Focus) Names() []string {
	return append([]string(nil), f.order...)
}

// Registry lists the widgets eligible for focus.
func (f *Focus) Registry() []string {
	return append([]string(nil), f.registry...)
}

func (f *Focus) Current() (string, bool) {
	if len(f.registry) == 0 {
		return "", false
	}
	return f.registry[f.index], true
}

// Cycle moves focus to the next eligible widget.
func (f *Focus) Cycle() {
	if len(f.registry) == 0 {
		return
	}
	f.index = (f.index + 1) % len(f.registry)
	f.apply()
}

// SetEditable changes whether name takes part in focus. It reports whether
// focus moved as a result, which calls for a full repaint.
func (f *Focus) SetEditable(name string, editable bool) (bool, error) {
	w, ok := f.widgets[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownWidget, name)
	}
	pos := -1
	for i, n := range f.registry {
		if n == name {
			pos = i
			break
		}
	}

	if editable {
		w.SetEditable(true)
		if pos >= 0 {
			return false, nil
		}
		f.registry = append(f.registry, name)
		if len(f.registry) == 1 {
			f.index = 0
			f.apply()
			return true, nil
		}
		return false, nil
	}

	w.SetEditable(false)
	if pos < 0 {
		return false, nil
	}
	f.registry = append(f.registry[:pos], f.registry[pos+1:]...)
	if pos == f.index {
		f.index = 0
		f.apply()
		return true, nil
	}
	if pos < f.index {
		f.index--
	}
	return false, nil
}

func (f *Focus) apply() {
	current, ok := f.Current()
	for name, w := range f.widgets {
		w.SetFocus(ok && name == current)
	}
}
