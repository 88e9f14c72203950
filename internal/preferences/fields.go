package preferences

import (
	"fmt"
	"regexp"
	"slices"
)

// Section is the configuration section every preference lives in.
const Section = "preferences"

// Unit and style field names.
const (
	FieldTempUnits  = "temp_units"
	FieldWindUnits  = "wind_units"
	FieldPWUnits    = "pw_units"
	FieldCalcVector = "calc_vector"
	FieldColorStyle = "color_style"
)

// UnitField describes one enumerated unit or vector setting.
type UnitField struct {
	// Name is the configuration field name (e.g. "temp_units").
	Name string

	// Title is the label shown in the preferences form.
	Title string

	// Options lists the legal values in display order.
	Options []string

	// Default is the value seeded on first run.
	Default string
}

// unitFields is the authoritative list of unit settings, in commit order.
var unitFields = []UnitField{
	{
		Name:    FieldTempUnits,
		Title:   "Surface Temperature Units",
		Options: []string{"Fahrenheit", "Celsius"},
		Default: "Fahrenheit",
	},
	{
		Name:    FieldWindUnits,
		Title:   "Wind Units",
		Options: []string{"knots", "m/s"},
		Default: "knots",
	},
	{
		Name:    FieldPWUnits,
		Title:   "Precipitable Water Vapor Units",
		Options: []string{"in", "cm"},
		Default: "in",
	},
	{
		Name:    FieldCalcVector,
		Title:   "Storm Motion Vector Used in Calculations",
		Options: []string{"Left Mover", "Right Mover"},
		Default: "Right Mover",
	},
}

// UnitFields returns a copy of the unit field table.
func UnitFields() []UnitField {
	out := make([]UnitField, len(unitFields))
	for i, f := range unitFields {
		f.Options = slices.Clone(f.Options)
		out[i] = f
	}
	return out
}

// LookupUnitField returns the unit field with the given name.
func LookupUnitField(name string) (UnitField, bool) {
	for _, f := range unitFields {
		if f.Name == name {
			return f, true
		}
	}
	return UnitField{}, false
}

// Options returns the legal values for a unit field.
func Options(field string) ([]string, error) {
	f, ok := LookupUnitField(field)
	if !ok {
		return nil, fmt.Errorf("preferences: %q: %w", field, ErrUnknownField)
	}
	return slices.Clone(f.Options), nil
}

// ValidateUnitChoice reports whether value is legal for field. Matching is
// exact; option values are stored verbatim.
func ValidateUnitChoice(field, value string) error {
	f, ok := LookupUnitField(field)
	if !ok {
		return fmt.Errorf("preferences: %q: %w", field, ErrUnknownField)
	}
	if !slices.Contains(f.Options, value) {
		return fmt.Errorf("preferences: %s %q (valid: %v): %w", field, value, f.Options, ErrInvalidOption)
	}
	return nil
}

// Fields returns every preference field name: unit fields, color_style, then
// the color fields in preset order.
func Fields() []string {
	names := make([]string, 0, len(unitFields)+1+len(colorFields))
	for _, f := range unitFields {
		names = append(names, f.Name)
	}
	names = append(names, FieldColorStyle)
	names = append(names, colorFields...)
	return names
}

// IsColorField reports whether name is one of the preset color fields.
func IsColorField(name string) bool {
	return slices.Contains(colorFields, name)
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidHexColor reports whether s is a 6-digit "#rrggbb" color.
func ValidHexColor(s string) bool {
	return hexColor.MatchString(s)
}
