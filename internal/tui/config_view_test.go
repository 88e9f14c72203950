package tui

import (
	"errors"
	"strings"
	"testing"

	"soundingkit/sndprefs/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfigView_Navigate(t *testing.T) {
	m := newConfigViewModel(&config.Config{}, func(*config.Config) error { return nil })

	next, _ := m.Update(keyMsg("j"))
	m = next.(configViewModel)
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(configViewModel)
	next, _ = m.Update(keyMsg("k"))
	m = next.(configViewModel)
	if m.cursor != 0 {
		t.Errorf("expected cursor to stop at 0, got %d", m.cursor)
	}
}

func TestConfigView_EditRejectsInvalidValue(t *testing.T) {
	cfg := &config.Config{}
	saved := false
	m := newConfigViewModel(cfg, func(*config.Config) error { saved = true; return nil })

	next, _ := m.Update(keyMsg("e"))
	m = next.(configViewModel)
	if !m.editing {
		t.Fatal("expected edit mode")
	}
	m.editor.SetValue("redis")

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(configViewModel)
	if cmd != nil {
		t.Error("expected no save command for invalid value")
	}
	if !m.isError || !strings.Contains(m.status, "invalid value") {
		t.Errorf("expected validation error status, got %q", m.status)
	}
	if cfg.StoreBackend != "" || saved {
		t.Errorf("expected config untouched, got backend %q (saved=%v)", cfg.StoreBackend, saved)
	}
}

func TestConfigView_EditSaves(t *testing.T) {
	cfg := &config.Config{}
	var savedBackend string
	m := newConfigViewModel(cfg, func(c *config.Config) error { savedBackend = c.StoreBackend; return nil })

	next, _ := m.Update(keyMsg("e"))
	m = next.(configViewModel)
	m.editor.SetValue("sqlite")

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(configViewModel)
	if cmd == nil {
		t.Fatal("expected save command")
	}

	next, _ = m.Update(cmd())
	m = next.(configViewModel)
	if savedBackend != "sqlite" {
		t.Errorf("expected saved backend %q, got %q", "sqlite", savedBackend)
	}
	if m.editing || m.isError {
		t.Errorf("expected clean state after save, editing=%v isError=%v", m.editing, m.isError)
	}
}

func TestConfigView_SaveError(t *testing.T) {
	m := newConfigViewModel(&config.Config{}, func(*config.Config) error { return errors.New("read-only file system") })

	next, _ := m.Update(keyMsg("e"))
	m = next.(configViewModel)
	m.editor.SetValue("file")

	_, cmd := m.Update(keyMsg("enter"))
	next, _ = m.Update(cmd())
	m = next.(configViewModel)
	if !m.isError || !strings.Contains(m.status, "read-only") {
		t.Errorf("expected save error status, got %q", m.status)
	}
}

func TestConfigView_Render(t *testing.T) {
	m := newConfigViewModel(&config.Config{StoreBackend: "sqlite"}, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(configViewModel)

	view := m.View()
	for _, k := range config.Keys {
		if !strings.Contains(view, k.Name) {
			t.Errorf("expected key %q in view", k.Name)
		}
	}
}
