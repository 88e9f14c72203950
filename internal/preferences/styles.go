package preferences

import (
	"fmt"
	"strings"
)

// ColorStyle names a built-in color preset.
type ColorStyle string

// Built-in color styles, in display order.
const (
	StyleStandard   ColorStyle = "standard"
	StyleInverted   ColorStyle = "inverted"
	StyleProtanopia ColorStyle = "protanopia"
)

// DefaultStyle is the style seeded on first run.
const DefaultStyle = StyleStandard

// Palette is the immutable set of colors a style assigns. Values are
// "#rrggbb" strings.
type Palette struct {
	Background  string
	Foreground  string
	Temperature string
	Dewpoint    string
	WetBulb     string
	EffInflow   string
	Hodo0to3    string
	Hodo3to6    string
	Hodo6to9    string
	Hodo9to12   string
	Hodo12to15  string
}

// colorFields lists the configuration field for each Palette member, in the
// order Entries returns them.
var colorFields = []string{
	"bg_color",
	"fg_color",
	"temp_color",
	"dewp_color",
	"wetb_color",
	"eff_inflow_color",
	"0_3_color",
	"3_6_color",
	"6_9_color",
	"9_12_color",
	"12_15_color",
}

// ColorFields returns the color field names in preset order.
func ColorFields() []string {
	return append([]string(nil), colorFields...)
}

// Entry is a single field/value pair.
type Entry struct {
	Field string
	Value string
}

// Entries returns the palette as field/value pairs, in the order they are
// written to the store.
func (p Palette) Entries() []Entry {
	return []Entry{
		{"bg_color", p.Background},
		{"fg_color", p.Foreground},
		{"temp_color", p.Temperature},
		{"dewp_color", p.Dewpoint},
		{"wetb_color", p.WetBulb},
		{"eff_inflow_color", p.EffInflow},
		{"0_3_color", p.Hodo0to3},
		{"3_6_color", p.Hodo3to6},
		{"6_9_color", p.Hodo6to9},
		{"9_12_color", p.Hodo9to12},
		{"12_15_color", p.Hodo12to15},
	}
}

var styles = []ColorStyle{StyleStandard, StyleInverted, StyleProtanopia}

var presets = map[ColorStyle]Palette{
	StyleStandard: {
		Background:  "#000000",
		Foreground:  "#ffffff",
		Temperature: "#ff0000",
		Dewpoint:    "#00ff00",
		WetBulb:     "#00ffff",
		EffInflow:   "#00ffff",
		Hodo0to3:    "#ff0000",
		Hodo3to6:    "#00ff00",
		Hodo6to9:    "#ffff00",
		Hodo9to12:   "#00ffff",
		Hodo12to15:  "#00ffff",
	},
	StyleInverted: {
		Background:  "#ffffff",
		Foreground:  "#000000",
		Temperature: "#cc0000",
		Dewpoint:    "#00cc00",
		WetBulb:     "#00cccc",
		EffInflow:   "#00cccc",
		Hodo0to3:    "#cc0000",
		Hodo3to6:    "#00cc00",
		Hodo6to9:    "#cccc00",
		Hodo9to12:   "#00cccc",
		Hodo12to15:  "#00cccc",
	},
	StyleProtanopia: {
		Background:  "#000000",
		Foreground:  "#ffffff",
		Temperature: "#ff0000",
		Dewpoint:    "#00ff00",
		WetBulb:     "#00ffff",
		EffInflow:   "#00ffff",
		Hodo0to3:    "#ff0000",
		Hodo3to6:    "#00ff00",
		Hodo6to9:    "#ffff00",
		Hodo9to12:   "#00ffff",
		Hodo12to15:  "#00ffff",
	},
}

// Styles returns the built-in styles in display order.
func Styles() []ColorStyle {
	return append([]ColorStyle(nil), styles...)
}

// StyleNames returns the built-in style names in display order.
func StyleNames() []string {
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = string(s)
	}
	return names
}

// ParseStyle resolves a style name. Matching ignores case and surrounding
// whitespace, so "Inverted" selects the inverted preset.
func ParseStyle(name string) (ColorStyle, error) {
	s := ColorStyle(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presets[s]; !ok {
		return "", fmt.Errorf("preferences: %q (valid: %s): %w", name, strings.Join(StyleNames(), ", "), ErrInvalidStyle)
	}
	return s, nil
}

// Preset returns the palette for a built-in style.
func Preset(s ColorStyle) (Palette, bool) {
	p, ok := presets[s]
	return p, ok
}

// Title returns the display label for the style (e.g. "Protanopia").
func (s ColorStyle) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
