package preferences

// Dialog stages selections for an open preferences dialog. Nothing reaches
// the store until Accept; Cancel discards the staged choices.
type Dialog struct {
	svc    *Service
	sel    Selections
	closed bool
}

// OpenDialog starts a dialog session pre-selected with the stored choices.
func (s *Service) OpenDialog() (*Dialog, error) {
	sel, err := s.CurrentSelections()
	if err != nil {
		return nil, err
	}
	return &Dialog{svc: s, sel: sel}, nil
}

// Selections returns the currently staged choices.
func (d *Dialog) Selections() Selections {
	return d.sel
}

// Select stages a unit choice. Invalid choices are rejected and leave the
// staged value unchanged.
func (d *Dialog) Select(field, value string) error {
	if d.closed {
		return ErrDialogClosed
	}
	if err := ValidateUnitChoice(field, value); err != nil {
		return err
	}
	d.sel.set(field, value)
	return nil
}

// SelectStyle stages a color style.
func (d *Dialog) SelectStyle(name string) error {
	if d.closed {
		return ErrDialogClosed
	}
	style, err := ParseStyle(name)
	if err != nil {
		return err
	}
	d.sel.Style = string(style)
	return nil
}

// Accept commits the staged choices and closes the dialog. The dialog is
// closed even when the commit fails part way.
func (d *Dialog) Accept() error {
	if d.closed {
		return ErrDialogClosed
	}
	d.closed = true
	return d.svc.Commit(d.sel)
}

// Cancel closes the dialog without touching the store.
func (d *Dialog) Cancel() {
	d.closed = true
	d.sel = Selections{}
}

// Closed reports whether Accept or Cancel has been called.
func (d *Dialog) Closed() bool {
	return d.closed
}
