// Package layout reads YAML documents that describe a menu bar and a set of
// widgets, and builds them into a ready to run app.App.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baaaaaaaka/tcwidgets/internal/app"
	"github.com/baaaaaaaka/tcwidgets/internal/logger"
	"github.com/baaaaaaaka/tcwidgets/internal/term"
	"github.com/baaaaaaaka/tcwidgets/internal/widget"
)

const (
	KindList  = "list"
	KindTable = "table"

	ActionQuit = "quit"
)

var ErrLayout = errors.New("invalid layout")

type Document struct {
	Title   string       `yaml:"title"`
	Menu    []MenuEntry  `yaml:"menu"`
	Widgets []WidgetSpec `yaml:"widgets"`
}

type MenuEntry struct {
	Label  string `yaml:"label"`
	Action string `yaml:"action"`
}

type WidgetSpec struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Position []int      `yaml:"position"`
	Size     []int      `yaml:"size"`
	Rows     []string   `yaml:"rows"`
	Dims     []int      `yaml:"dims"`
	Cells    []CellSpec `yaml:"cells"`
	Editable *bool      `yaml:"editable"`
	OnActive *OnActive  `yaml:"onActive"`
}

type CellSpec struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Value string `yaml:"value"`
}

// OnActive names what happens when a widget's active item changes.
type OnActive struct {
	// Append adds the new active content as a row of the named list.
	Append string `yaml:"append"`
}

// Parse decodes and validates a layout document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrLayout)
		}
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func (d *Document) Validate() error {
	for _, m := range d.Menu {
		switch m.Action {
		case "", ActionQuit:
		default:
			return fmt.Errorf("%w: menu %q has unknown action %q", ErrLayout, m.Label, m.Action)
		}
	}

	kinds := map[string]string{}
	for i, w := range d.Widgets {
		if w.Name == "" {
			return fmt.Errorf("%w: widget #%d has no name", ErrLayout, i+1)
		}
		if _, dup := kinds[w.Name]; dup {
			return fmt.Errorf("%w: widget %q declared twice", ErrLayout, w.Name)
		}
		kinds[w.Name] = w.Kind
		if err := w.validate(); err != nil {
			return fmt.Errorf("%w: widget %q: %w", ErrLayout, w.Name, err)
		}
	}

	for _, w := range d.Widgets {
		if w.OnActive == nil || w.OnActive.Append == "" {
			continue
		}
		switch kinds[w.OnActive.Append] {
		case KindList:
		case "":
			return fmt.Errorf("%w: widget %q appends to unknown widget %q", ErrLayout, w.Name, w.OnActive.Append)
		default:
			return fmt.Errorf("%w: widget %q appends to %q which is not a list", ErrLayout, w.Name, w.OnActive.Append)
		}
	}
	return nil
}

func (w WidgetSpec) validate() error {
	if _, err := pair(w.Position, "position", 0); err != nil {
		return err
	}
	if _, err := pair(w.Size, "size", widget.Fill); err != nil {
		return err
	}
	if err := w.geometry().Validate(); err != nil {
		return err
	}
	switch w.Kind {
	case KindList:
		if len(w.Dims) > 0 || len(w.Cells) > 0 {
			return errors.New("lists take rows, not dims or cells")
		}
	case KindTable:
		if len(w.Rows) > 0 {
			return errors.New("tables take cells, not rows")
		}
		if len(w.Dims) != 2 {
			return errors.New("tables need dims: [rows, cols]")
		}
		if w.Dims[0] < 1 || w.Dims[1] < 1 {
			return fmt.Errorf("%w: %dx%d", widget.ErrDimensions, w.Dims[0], w.Dims[1])
		}
		for _, c := range w.Cells {
			if c.Row < 0 || c.Row >= w.Dims[0] || c.Col < 0 || c.Col >= w.Dims[1] {
				return fmt.Errorf("%w: (%d,%d)", widget.ErrCellRange, c.Row, c.Col)
			}
		}
	default:
		return fmt.Errorf("unknown kind %q", w.Kind)
	}
	return nil
}

// pair reads a two element list, defaulting both elements when it is absent.
func pair(v []int, field string, def int) ([2]int, error) {
	switch len(v) {
	case 0:
		return [2]int{def, def}, nil
	case 2:
		return [2]int{v[0], v[1]}, nil
	default:
		return [2]int{}, fmt.Errorf("%s needs two values, got %d", field, len(v))
	}
}

func (w WidgetSpec) geometry() widget.Geometry {
	pos, _ := pair(w.Position, "position", 0)
	size, _ := pair(w.Size, "size", widget.Fill)
	return widget.Geometry{
		Pos:  widget.Position{X: pos[0], Y: pos[1]},
		Size: widget.Size{W: size[0], H: size[1]},
	}
}

func (w WidgetSpec) editable() bool {
	return w.Editable == nil || *w.Editable
}

// Build creates the shell and every widget on scr. Widgets are registered in
// document order, so the first editable one starts with focus.
func (d *Document) Build(scr term.Screen, opts ...app.Option) (*app.App, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	items := make([]app.MenuItem, 0, len(d.Menu))
	for _, m := range d.Menu {
		item := app.MenuItem{Label: m.Label}
		if m.Action == ActionQuit {
			item.Action = app.Quit
		}
		items = append(items, item)
	}
	a, err := app.New(scr, d.Title, items, opts...)
	if err != nil {
		return nil, err
	}

	lists := map[string]*widget.ListBox{}
	for _, spec := range d.Widgets {
		w, err := d.buildWidget(a, spec, lists)
		if err != nil {
			return nil, fmt.Errorf("widget %q: %w", spec.Name, err)
		}
		if l, ok := w.(*widget.ListBox); ok {
			lists[spec.Name] = l
		}
		if !spec.editable() {
			w.SetEditable(false)
		}
		if err := a.AddWidget(spec.Name, w); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (d *Document) buildWidget(a *app.App, spec WidgetSpec, lists map[string]*widget.ListBox) (widget.Widget, error) {
	geo := spec.geometry()
	cb := appendTo(spec, lists)
	switch spec.Kind {
	case KindTable:
		t, err := widget.NewTable(a.Screen(), geo.Pos, geo.Size, spec.Dims[0], spec.Dims[1], cb)
		if err != nil {
			return nil, err
		}
		cells := make([]widget.Cell, 0, len(spec.Cells))
		for _, c := range spec.Cells {
			cells = append(cells, widget.Cell{Row: c.Row, Col: c.Col, Value: c.Value})
		}
		if err := t.SetCells(cells...); err != nil {
			return nil, err
		}
		return t, nil
	default:
		l, err := widget.NewListBox(a.Screen(), geo.Pos, geo.Size, cb)
		if err != nil {
			return nil, err
		}
		l.AddRows(spec.Rows...)
		return l, nil
	}
}

// appendTo resolves the target list when the callback fires, so a widget may
// append to a list declared after it.
func appendTo(spec WidgetSpec, lists map[string]*widget.ListBox) widget.Callback {
	if spec.OnActive == nil || spec.OnActive.Append == "" {
		return nil
	}
	source, target := spec.Name, spec.OnActive.Append
	return func(ev widget.Event) {
		l, ok := lists[target]
		if !ok {
			return
		}
		logger.Get().Debug("append active item", "from", source, "to", target, "value", ev.Active)
		l.AddRows(ev.Active)
		l.Draw(false)
	}
}
