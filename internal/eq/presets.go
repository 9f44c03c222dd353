package eq

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Preset is a named set of band gains in decibels.
type Preset struct {
	Name  string
	Bands Bands
	// Custom marks presets supplied by configuration rather than built in.
	Custom bool
}

var builtinPresets = []Preset{
	{Name: "flat", Bands: Bands{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	{Name: "bass_boost", Bands: Bands{6, 5, 4, 2, 0, 0, 0, 0, 0, 0}},
	{Name: "treble_boost", Bands: Bands{0, 0, 0, 0, 0, 0, 2, 4, 5, 6}},
	{Name: "v_shape", Bands: Bands{5, 4, 2, 0, -2, -2, 0, 2, 4, 5}},
	{Name: "vocal", Bands: Bands{-2, -1, 0, 2, 4, 4, 2, 0, -1, -2}},
	{Name: "rock", Bands: Bands{4, 3, 2, 0, -1, -1, 0, 2, 3, 4}},
	{Name: "electronic", Bands: Bands{4, 3, 0, -2, -1, 0, 2, 3, 4, 3}},
}

// NormalizeName canonicalizes a preset name for lookup.
func NormalizeName(name string) string {
	// A Caser carries state and must not be shared across goroutines.
	return cases.Fold().String(strings.TrimSpace(name))
}

// UnknownPresetError reports a preset name missing from the table.
type UnknownPresetError struct {
	Name      string
	Available []string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset: %s (available presets: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Table is a read-only preset lookup. The zero value is not usable; build one
// with DefaultTable or NewTable.
type Table struct {
	presets []Preset
	index   map[string]int
}

var defaultTable = mustTable(nil)

// DefaultTable returns the table holding only the built-in presets.
func DefaultTable() *Table {
	return defaultTable
}

// NewTable returns the built-in presets extended with custom entries. Custom
// names are folded like lookups; they may not shadow a built-in and must carry
// exactly BandCount finite gains.
func NewTable(custom map[string][]float64) (*Table, error) {
	t := &Table{
		presets: make([]Preset, 0, len(builtinPresets)+len(custom)),
		index:   make(map[string]int, len(builtinPresets)+len(custom)),
	}
	for _, p := range builtinPresets {
		t.add(p)
	}
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, raw := range names {
		name := NormalizeName(raw)
		if name == "" {
			return nil, fmt.Errorf("preset name must not be empty")
		}
		if _, exists := t.index[name]; exists {
			return nil, fmt.Errorf("preset %q: name already defined", raw)
		}
		values := custom[raw]
		if len(values) != BandCount {
			return nil, fmt.Errorf("preset %q: expected %d band values, got %d", raw, BandCount, len(values))
		}
		var bands Bands
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("preset %q: band %d is not a finite number", raw, i+1)
			}
			bands[i] = v
		}
		t.add(Preset{Name: name, Bands: bands, Custom: true})
	}
	return t, nil
}

func mustTable(custom map[string][]float64) *Table {
	t, err := NewTable(custom)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) add(p Preset) {
	t.index[p.Name] = len(t.presets)
	t.presets = append(t.presets, p)
}

// Presets returns a copy of every preset, built-ins first in table order.
func (t *Table) Presets() []Preset {
	out := make([]Preset, len(t.presets))
	copy(out, t.presets)
	return out
}

// Names returns preset names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.presets))
	for i, p := range t.presets {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a preset by case-insensitive name.
func (t *Table) Lookup(name string) (Preset, error) {
	if i, ok := t.index[NormalizeName(name)]; ok {
		return t.presets[i], nil
	}
	return Preset{}, &UnknownPresetError{Name: strings.TrimSpace(name), Available: t.Names()}
}

// Builtin returns a copy of the built-in presets in table order.
func Builtin() []Preset {
	return defaultTable.Presets()
}

// Names returns the built-in preset names in table order.
func Names() []string {
	return defaultTable.Names()
}

// Lookup finds a built-in preset by case-insensitive name.
func Lookup(name string) (Preset, error) {
	return defaultTable.Lookup(name)
}
