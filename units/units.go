// Package units converts lengths between named units.
//
// Every unit has a scale in metres. The package level functions use a
// shared default table holding the built in units; make a Table with
// NewTable to keep custom units separate.
package units

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
)

// Unit identifies a unit within a Table.
type Unit int

// Built in units. Custom units added to a Table are numbered from
// FirstCustom.
const (
	None Unit = iota
	Inches
	Feet
	Yards
	Centimeters
	Millimeters
	Meters
	Points
	SvgPoints
	CSSPoints
	Pixels
	Em

	FirstCustom Unit = 1000
)

// Errors returned by Table operations.
var (
	ErrUnknownUnit   = errors.New("units: unknown unit")
	ErrDuplicateName = errors.New("units: name already in use")
	ErrInvalidScale  = errors.New("units: scale must be positive and finite")
)

const inch = .0254

type entry struct {
	id    Unit
	scale float64
	names []string
	label string
}

var builtins = []entry{
	{Inches, inch, []string{"in", "inch", "inches"}, ""},
	{Feet, 12 * inch, []string{"ft", "foot", "feet"}, ""},
	{Yards, 36 * inch, []string{"yd", "yard", "yards"}, ""},
	{Centimeters, .01, []string{"cm", "centimeter", "centimeters"}, ""},
	{Millimeters, .001, []string{"mm", "millimeter", "millimeters"}, ""},
	{Meters, 1, []string{"m", "meter", "meters"}, ""},
	{Points, inch / 72, []string{"pt", "point", "points"}, "72 ppi"},
	{SvgPoints, inch / 90, []string{"svgpt", "svgpoint", "svgpoints"}, "Legacy 90 ppi"},
	{CSSPoints, inch / 96, []string{"csspt", "csspoint", "csspoints"}, "96 ppi"},
	{Pixels, inch / 96, []string{"px", "pixel", "pixels"}, ""},
	{Em, 1, []string{"em"}, ""},
}

// Table is a set of units. The zero value is empty and ready to use.
// A Table is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	units []entry
	next  Unit
	def   Unit
}

// NewTable returns a table holding the built in units.
func NewTable() *Table {
	t := &Table{def: Inches}
	for _, e := range builtins {
		e.names = slices.Clone(e.names)
		t.units = append(t.units, e)
	}
	return t
}

func (t *Table) find(u Unit) *entry {
	for i := range t.units {
		if t.units[i].id == u {
			return &t.units[i]
		}
	}
	return nil
}

func (t *Table) findName(name string) *entry {
	name = strings.TrimSpace(name)
	for i := range t.units {
		for _, n := range t.units[i].names {
			if strings.EqualFold(n, name) {
				return &t.units[i]
			}
		}
	}
	return nil
}

// Add defines a unit of scale metres named name, also matched by aliases,
// and returns its id. Names are matched without regard to case and must
// not already be in use.
func (t *Table) Add(name string, scale float64, aliases ...string) (Unit, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return None, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	names := append([]string{name}, aliases...)

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return None, fmt.Errorf("%w: %q", ErrUnknownUnit, n)
		}
		if t.findName(n) != nil {
			return None, fmt.Errorf("%w: %q", ErrDuplicateName, n)
		}
	}
	if t.next < FirstCustom {
		t.next = FirstCustom
	}
	id := t.next
	t.next++
	t.units = append(t.units, entry{id: id, scale: scale, names: names})
	return id, nil
}

// Lookup returns the unit named name, ignoring case.
func (t *Table) Lookup(name string) (Unit, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e := t.findName(name); e != nil {
		return e.id, true
	}
	return None, false
}

// Parse is Lookup with an error for unknown names.
func (t *Table) Parse(name string) (Unit, error) {
	u, ok := t.Lookup(name)
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// Scale returns the size of u in metres, or 0 if u is not in the table.
func (t *Table) Scale(u Unit) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e := t.find(u); e != nil {
		return e.scale
	}
	return 0
}

// Name returns the short name of u, or "" if u is not in the table.
func (t *Table) Name(u Unit) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e := t.find(u); e != nil {
		return e.names[0]
	}
	return ""
}

// Names returns every name of u, short name first.
func (t *Table) Names(u Unit) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e := t.find(u); e != nil {
		return slices.Clone(e.names)
	}
	return nil
}

// Label returns the descriptive label of u, such as "72 ppi", if it has
// one.
func (t *Table) Label(u Unit) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e := t.find(u); e != nil {
		return e.label
	}
	return ""
}

// Units returns the ids in the table in the order they were added.
func (t *Table) Units() []Unit {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids := make([]Unit, len(t.units))
	for i, e := range t.units {
		ids[i] = e.id
	}
	return ids
}

// Factor returns the number of to units in one from unit. Unknown units
// give 1.
func (t *Table) Factor(from, to Unit) float64 {
	if from == to {
		return 1
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	f, g := t.find(from), t.find(to)
	if f == nil || g == nil {
		return 1
	}
	return f.scale / g.scale
}

// Convert converts v from one unit to another.
func (t *Table) Convert(v float64, from, to Unit) float64 {
	return v * t.Factor(from, to)
}

// ConvertNamed converts v between units given by name.
func (t *Table) ConvertNamed(v float64, from, to string) (float64, error) {
	f, err := t.Parse(from)
	if err != nil {
		return v, err
	}
	g, err := t.Parse(to)
	if err != nil {
		return v, err
	}
	return t.Convert(v, f, g), nil
}

// SetPixelSize sets the size of one pixel to size in units u.
func (t *Table) SetPixelSize(size float64, u Unit) error {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, size)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if u == None {
		u = t.def
	}
	px, in := t.find(Pixels), t.find(u)
	if px == nil || in == nil {
		return fmt.Errorf("%w: %d", ErrUnknownUnit, u)
	}
	px.scale = size * in.scale
	return nil
}

// SetDefault makes u the table's default unit.
func (t *Table) SetDefault(u Unit) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.find(u) == nil {
		return fmt.Errorf("%w: %d", ErrUnknownUnit, u)
	}
	t.def = u
	return nil
}

// Default returns the table's default unit.
func (t *Table) Default() Unit {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.def
}

var defaultTable = sync.OnceValue(NewTable)

// Default returns the shared table used by the package level functions.
func Default() *Table { return defaultTable() }

// Factor returns the number of to units in one from unit.
func Factor(from, to Unit) float64 { return Default().Factor(from, to) }

// Convert converts v from one unit to another.
func Convert(v float64, from, to Unit) float64 { return Default().Convert(v, from, to) }

// Parse returns the unit with the given name or abbreviation, ignoring
// case.
func Parse(name string) (Unit, error) { return Default().Parse(name) }

// String returns the short name of u in the default table.
func (u Unit) String() string {
	if u == None {
		return "none"
	}
	if n := Default().Name(u); n != "" {
		return n
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}
