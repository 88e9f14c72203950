package preferences

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDialog_AcceptCommits(t *testing.T) {
	svc, store := newService(t)
	if err := svc.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	d, err := svc.OpenDialog()
	if err != nil {
		t.Fatalf("OpenDialog failed: %v", err)
	}
	if diff := cmp.Diff(DefaultSelections(), d.Selections()); diff != "" {
		t.Errorf("initial selections mismatch (-want +got):\n%s", diff)
	}

	if err := d.Select(FieldTempUnits, "Celsius"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := d.SelectStyle("Protanopia"); err != nil {
		t.Fatalf("SelectStyle failed: %v", err)
	}

	// Nothing is written until Accept.
	if got := mustGet(t, store, FieldTempUnits); got != "Fahrenheit" {
		t.Errorf("temp_units written before Accept: %q", got)
	}

	if err := d.Accept(); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if got := mustGet(t, store, FieldTempUnits); got != "Celsius" {
		t.Errorf("temp_units = %q, want %q", got, "Celsius")
	}
	if got := mustGet(t, store, FieldColorStyle); got != "protanopia" {
		t.Errorf("color_style = %q, want %q", got, "protanopia")
	}
	if !d.Closed() {
		t.Error("expected dialog to be closed after Accept")
	}
}

func TestDialog_CancelLeavesStore(t *testing.T) {
	svc, store := newService(t)
	if err := svc.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	before, _ := svc.Load()

	d, err := svc.OpenDialog()
	if err != nil {
		t.Fatalf("OpenDialog failed: %v", err)
	}
	d.Select(FieldWindUnits, "m/s")
	d.SelectStyle("inverted")
	d.Cancel()

	after, _ := svc.Load()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("store changed after Cancel (-before +after):\n%s", diff)
	}
	if store.Len() != len(before) {
		t.Errorf("expected %d values, got %d", len(before), store.Len())
	}

	if err := d.Accept(); !errors.Is(err, ErrDialogClosed) {
		t.Errorf("expected ErrDialogClosed after Cancel, got %v", err)
	}
	if err := d.Select(FieldWindUnits, "knots"); !errors.Is(err, ErrDialogClosed) {
		t.Errorf("expected ErrDialogClosed from Select, got %v", err)
	}
}

func TestDialog_RejectsInvalidSelection(t *testing.T) {
	svc, _ := newService(t)

	d, err := svc.OpenDialog()
	if err != nil {
		t.Fatalf("OpenDialog failed: %v", err)
	}
	if err := d.Select(FieldPWUnits, "mm"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
	if err := d.SelectStyle("sepia"); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("expected ErrInvalidStyle, got %v", err)
	}
	if diff := cmp.Diff(DefaultSelections(), d.Selections()); diff != "" {
		t.Errorf("selections changed after invalid input (-want +got):\n%s", diff)
	}
}
