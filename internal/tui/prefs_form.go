package tui

import (
	"errors"

	"soundingkit/sndprefs/internal/preferences"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user leaves the preferences form with
// ctrl+c or esc instead of choosing Accept or Cancel.
var ErrAborted = errors.New("preferences form aborted by user")

// formValues holds the values bound to the form fields.
type formValues struct {
	units  map[string]*string
	style  string
	accept bool
}

func newFormValues(sel preferences.Selections) *formValues {
	v := &formValues{units: make(map[string]*string), style: sel.Style, accept: true}
	for _, f := range preferences.UnitFields() {
		value := sel.Unit(f.Name)
		v.units[f.Name] = &value
	}
	return v
}

// RunPreferencesForm shows the preferences dialog pre-filled from d. Accept
// stages every choice on d and commits it; Cancel or an aborted form calls
// d.Cancel and leaves the store untouched. It reports whether the choices
// were accepted.
func RunPreferencesForm(d *preferences.Dialog, accessible bool) (bool, error) {
	values := newFormValues(d.Selections())

	err := huh.NewForm(buildFormGroups(values)...).WithAccessible(accessible).Run()
	if err != nil {
		d.Cancel()
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrAborted
		}
		return false, err
	}

	return applyFormValues(d, values)
}

// applyFormValues stages the form's values on d and either accepts or
// cancels the dialog.
func applyFormValues(d *preferences.Dialog, values *formValues) (bool, error) {
	if !values.accept {
		d.Cancel()
		return false, nil
	}

	for _, f := range preferences.UnitFields() {
		if err := d.Select(f.Name, *values.units[f.Name]); err != nil {
			d.Cancel()
			return false, err
		}
	}
	if err := d.SelectStyle(values.style); err != nil {
		d.Cancel()
		return false, err
	}

	if err := d.Accept(); err != nil {
		return false, err
	}
	return true, nil
}

// buildFormGroups lays the form out like the desktop dialog's tabs: colors,
// then the unit settings, then the Accept/Cancel buttons.
func buildFormGroups(values *formValues) []*huh.Group {
	colors := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Color Style").
			Options(buildStyleOptions()...).
			Value(&values.style),
	).Title("Colors")

	unitFields := preferences.UnitFields()
	misc := make([]huh.Field, 0, len(unitFields))
	for _, f := range unitFields {
		misc = append(misc, huh.NewSelect[string]().
			Title(f.Title).
			Options(buildUnitOptions(f)...).
			Value(values.units[f.Name]).
			Inline(true))
	}

	confirm := huh.NewGroup(
		huh.NewConfirm().
			Title("Apply these preferences?").
			Affirmative("Accept").
			Negative("Cancel").
			Value(&values.accept),
	)

	return []*huh.Group{
		colors,
		huh.NewGroup(misc...).Title("Miscellaneous"),
		confirm,
	}
}

func buildStyleOptions() []huh.Option[string] {
	styles := preferences.Styles()
	options := make([]huh.Option[string], 0, len(styles))
	for _, s := range styles {
		options = append(options, huh.NewOption(s.Title(), string(s)))
	}
	return options
}

func buildUnitOptions(f preferences.UnitField) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(f.Options))
	for _, o := range f.Options {
		options = append(options, huh.NewOption(o, o))
	}
	return options
}
