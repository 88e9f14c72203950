package preferences

import "errors"

// Sentinel errors for preference validation. Callers classify failures with
// errors.Is; the wrapped message carries the offending value.
//
//	return fmt.Errorf("preferences: %q: %w", name, ErrInvalidStyle)
var (
	// ErrInvalidStyle indicates a color style name that is not a built-in preset.
	ErrInvalidStyle = errors.New("invalid color style")

	// ErrInvalidOption indicates a value outside a field's enumerated options.
	ErrInvalidOption = errors.New("invalid option")

	// ErrUnknownField indicates a field name that is not a unit field.
	ErrUnknownField = errors.New("unknown preference field")

	// ErrDialogClosed is returned when a dialog is used after Accept or Cancel.
	ErrDialogClosed = errors.New("preferences dialog already closed")
)
