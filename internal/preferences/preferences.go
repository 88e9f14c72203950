// Package preferences seeds, validates and applies the user's display and
// unit preferences.
//
// All values live in the "preferences" section of an injected
// configstore.Store. Color styles are fixed presets: applying one writes
// color_style and then every color field from the preset.
//
// Writes are applied one field at a time. Commit stops at the first failing
// field and leaves the fields written before it in place; there is no
// rollback.
package preferences

import (
	"fmt"
	"io"

	"soundingkit/sndprefs/internal/configstore"

	"github.com/charmbracelet/log"
)

// PreferenceSet maps field names to stored values.
type PreferenceSet map[string]string

// Selections is one choice per unit field plus a color style, as collected
// by the preferences form.
type Selections struct {
	TempUnits  string
	WindUnits  string
	PWUnits    string
	CalcVector string
	Style      string
}

// DefaultSelections returns the first-run choices.
func DefaultSelections() Selections {
	var sel Selections
	for _, f := range unitFields {
		sel.set(f.Name, f.Default)
	}
	sel.Style = string(DefaultStyle)
	return sel
}

// Unit returns the selected value for a unit field.
func (s Selections) Unit(field string) string {
	switch field {
	case FieldTempUnits:
		return s.TempUnits
	case FieldWindUnits:
		return s.WindUnits
	case FieldPWUnits:
		return s.PWUnits
	case FieldCalcVector:
		return s.CalcVector
	}
	return ""
}

func (s *Selections) set(field, value string) {
	switch field {
	case FieldTempUnits:
		s.TempUnits = value
	case FieldWindUnits:
		s.WindUnits = value
	case FieldPWUnits:
		s.PWUnits = value
	case FieldCalcVector:
		s.CalcVector = value
	}
}

// Change describes one field write, successful or not.
type Change struct {
	Action string
	Field  string
	Value  string
	Err    error
}

// Recorder receives every field write the service performs.
type Recorder interface {
	Record(c Change)
}

// Actions reported to the Recorder.
const (
	ActionInit   = "init"
	ActionStyle  = "style"
	ActionUnit   = "unit"
	ActionCommit = "commit"
)

// Service applies preference operations to a store.
type Service struct {
	store    configstore.Store
	logger   *log.Logger
	recorder Recorder
}

// NewService creates a preferences service over store. A nil logger
// discards log output.
func NewService(store configstore.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{store: store, logger: logger}
}

// WithRecorder attaches a recorder that is notified of every write.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Defaults returns the first-run value of every preference field.
func Defaults() PreferenceSet {
	set := PreferenceSet{}
	for _, f := range unitFields {
		set[f.Name] = f.Default
	}
	set[FieldColorStyle] = string(DefaultStyle)
	for _, e := range presets[DefaultStyle].Entries() {
		set[e.Field] = e.Value
	}
	return set
}

// Initialize seeds every missing preference with its default, then brings the
// color fields in line with the stored color_style. Values the user already
// set are never replaced by defaults.
func (s *Service) Initialize() error {
	defaults := make(map[configstore.Key]string)
	for field, value := range Defaults() {
		defaults[configstore.Key{Section: Section, Field: field}] = value
	}
	if err := s.store.InitializeDefaults(defaults); err != nil {
		return fmt.Errorf("preferences: seeding defaults: %w", err)
	}

	stored, _, err := s.store.Get(Section, FieldColorStyle)
	if err != nil {
		return fmt.Errorf("preferences: reading %s: %w", FieldColorStyle, err)
	}
	style, err := ParseStyle(stored)
	if err != nil {
		s.logger.Warn("stored color style is not a preset, leaving colors unchanged", "color_style", stored)
		return nil
	}

	s.logger.Debug("syncing colors with stored style", "color_style", style)
	return s.writePalette(ActionInit, style)
}

// ApplyColorStyle writes color_style and overwrites every color field with
// the preset's values. An unknown style fails with ErrInvalidStyle before
// anything is written.
func (s *Service) ApplyColorStyle(name string) error {
	return s.applyColorStyle(ActionStyle, name)
}

func (s *Service) applyColorStyle(action, name string) error {
	style, err := ParseStyle(name)
	if err != nil {
		return err
	}
	if err := s.write(action, FieldColorStyle, string(style)); err != nil {
		return err
	}
	return s.writePalette(action, style)
}

func (s *Service) writePalette(action string, style ColorStyle) error {
	for _, e := range presets[style].Entries() {
		if err := s.write(action, e.Field, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// ApplyUnitChoice writes a single unit field. The field must be a unit field
// (ErrUnknownField) and the value one of its options (ErrInvalidOption).
func (s *Service) ApplyUnitChoice(field, value string) error {
	return s.applyUnitChoice(ActionUnit, field, value)
}

func (s *Service) applyUnitChoice(action, field, value string) error {
	if err := ValidateUnitChoice(field, value); err != nil {
		return err
	}
	return s.write(action, field, value)
}

// Commit applies a full set of selections: each unit field in table order,
// then the color style. It stops at the first failure; fields written before
// it stay written.
func (s *Service) Commit(sel Selections) error {
	for _, f := range unitFields {
		if err := s.applyUnitChoice(ActionCommit, f.Name, sel.Unit(f.Name)); err != nil {
			return err
		}
	}
	if err := s.applyColorStyle(ActionCommit, sel.Style); err != nil {
		return err
	}
	s.logger.Info("preferences saved",
		"temp_units", sel.TempUnits,
		"wind_units", sel.WindUnits,
		"pw_units", sel.PWUnits,
		"calc_vector", sel.CalcVector,
		"color_style", sel.Style,
	)
	return nil
}

// Get returns the stored value of a preference field.
func (s *Service) Get(field string) (string, bool, error) {
	v, ok, err := s.store.Get(Section, field)
	if err != nil {
		return "", false, fmt.Errorf("preferences: reading %s: %w", field, err)
	}
	return v, ok, nil
}

// Load returns every stored preference field. Fields that were never written
// are absent from the result.
func (s *Service) Load() (PreferenceSet, error) {
	set := PreferenceSet{}
	for _, field := range Fields() {
		v, ok, err := s.Get(field)
		if err != nil {
			return nil, err
		}
		if ok {
			set[field] = v
		}
	}
	return set, nil
}

// CurrentSelections returns the stored choices, substituting the default for
// any field that is missing or holds a value outside its options.
func (s *Service) CurrentSelections() (Selections, error) {
	sel := DefaultSelections()
	for _, f := range unitFields {
		v, ok, err := s.Get(f.Name)
		if err != nil {
			return Selections{}, err
		}
		if ok && ValidateUnitChoice(f.Name, v) == nil {
			sel.set(f.Name, v)
		}
	}

	v, ok, err := s.Get(FieldColorStyle)
	if err != nil {
		return Selections{}, err
	}
	if ok {
		if style, err := ParseStyle(v); err == nil {
			sel.Style = string(style)
		}
	}
	return sel, nil
}

func (s *Service) write(action, field, value string) error {
	err := s.store.Set(Section, field, value)
	if err != nil {
		err = fmt.Errorf("preferences: writing %s: %w", field, err)
	}
	if s.recorder != nil {
		s.recorder.Record(Change{Action: action, Field: field, Value: value, Err: err})
	}
	if err != nil {
		return err
	}
	s.logger.Debug("preference written", "field", field, "value", value)
	return nil
}
