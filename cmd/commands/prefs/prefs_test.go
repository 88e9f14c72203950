package prefs

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"soundingkit/sndprefs/internal/config"
	"soundingkit/sndprefs/internal/configstore"
	"soundingkit/sndprefs/internal/database"
	"soundingkit/sndprefs/internal/history"
	"soundingkit/sndprefs/internal/preferences"

	"github.com/google/go-cmp/cmp"
)

// setupTestEnv points config, the preference store and the history database
// at a temp directory and returns the store path.
func setupTestEnv(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()

	config.SetPath(filepath.Join(dir, "config.json"))
	t.Cleanup(config.ResetPath)
	database.SetPath(filepath.Join(dir, "history.db"))
	t.Cleanup(database.ResetPath)

	storePath := filepath.Join(dir, "prefs-"+backend)
	cfg := &config.Config{StoreBackend: backend, StorePath: storePath}
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	return storePath
}

// execPrefs runs the prefs command with args and returns stdout, stderr and
// the execution error.
func execPrefs(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func openStore(t *testing.T, backend, path string) *preferences.Service {
	t.Helper()
	store, err := configstore.Open(backend, path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return preferences.NewService(store, nil)
}

func TestInit_SeedsDefaults(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			path := setupTestEnv(t, backend)

			stdout, _, err := execPrefs(t, "init")
			if err != nil {
				t.Fatalf("init failed: %v", err)
			}
			if !strings.Contains(stdout, "initialized") {
				t.Errorf("expected confirmation, got: %s", stdout)
			}

			got, err := openStore(t, backend, path).Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if diff := cmp.Diff(preferences.Defaults(), got); diff != "" {
				t.Errorf("stored preferences mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSet_UnitField(t *testing.T) {
	path := setupTestEnv(t, "file")

	stdout, _, err := execPrefs(t, "set", "wind_units", "m/s")
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !strings.Contains(stdout, `wind_units set to "m/s"`) {
		t.Errorf("unexpected output: %s", stdout)
	}

	v, _, _ := openStore(t, "file", path).Get(preferences.FieldWindUnits)
	if v != "m/s" {
		t.Errorf("wind_units = %q, want %q", v, "m/s")
	}
}

func TestSet_InvalidOption(t *testing.T) {
	path := setupTestEnv(t, "file")

	_, stderr, err := execPrefs(t, "set", "wind_units", "furlongs/fortnight")
	if err == nil {
		t.Fatal("expected error for invalid option")
	}
	if !strings.Contains(stderr, "invalid option") {
		t.Errorf("expected 'invalid option' error, got: %s", stderr)
	}

	v, _, _ := openStore(t, "file", path).Get(preferences.FieldWindUnits)
	if v != "knots" {
		t.Errorf("wind_units = %q, want default %q", v, "knots")
	}
}

func TestSet_ColorStyleAppliesPreset(t *testing.T) {
	path := setupTestEnv(t, "sqlite")

	stdout, _, err := execPrefs(t, "set", "color_style", "Inverted")
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !strings.Contains(stdout, `"inverted"`) {
		t.Errorf("expected normalized style in output, got: %s", stdout)
	}

	v, _, _ := openStore(t, "sqlite", path).Get("bg_color")
	if v != "#ffffff" {
		t.Errorf("bg_color = %q, want %q", v, "#ffffff")
	}
}

func TestSet_ColorStyleInvalidWritesNothing(t *testing.T) {
	path := setupTestEnv(t, "file")

	_, stderr, err := execPrefs(t, "set", "color_style", "ultraviolet")
	if err == nil {
		t.Fatal("expected error for unknown style")
	}
	if !strings.Contains(stderr, "invalid color style") {
		t.Errorf("expected 'invalid color style' error, got: %s", stderr)
	}

	set, _ := openStore(t, "file", path).Load()
	if len(set) != 0 {
		t.Errorf("expected empty store, got %v", set)
	}
}

func TestSet_ColorFieldRejected(t *testing.T) {
	setupTestEnv(t, "file")

	_, stderr, err := execPrefs(t, "set", "bg_color", "#123456")
	if err == nil {
		t.Fatal("expected error when setting a color field directly")
	}
	if !strings.Contains(stderr, "prefs style") {
		t.Errorf("expected hint to use 'prefs style', got: %s", stderr)
	}
}

func TestStyle(t *testing.T) {
	path := setupTestEnv(t, "file")

	if _, _, err := execPrefs(t, "style", "protanopia"); err != nil {
		t.Fatalf("style failed: %v", err)
	}

	svc := openStore(t, "file", path)
	v, _, _ := svc.Get(preferences.FieldColorStyle)
	if v != "protanopia" {
		t.Errorf("color_style = %q, want %q", v, "protanopia")
	}
}

func TestStyle_Invalid(t *testing.T) {
	path := setupTestEnv(t, "file")

	_, stderr, err := execPrefs(t, "style", "ultraviolet")
	if err == nil {
		t.Fatal("expected error for unknown style")
	}
	if !strings.Contains(stderr, "invalid color style") {
		t.Errorf("expected 'invalid color style' error, got: %s", stderr)
	}

	// Rejected before the store is opened, so nothing was written.
	set, _ := openStore(t, "file", path).Load()
	if len(set) != 0 {
		t.Errorf("expected empty store, got %v", set)
	}
}

func TestShow_SingleField(t *testing.T) {
	setupTestEnv(t, "file")

	stdout, _, err := execPrefs(t, "show", "--field", "calc_vector")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if strings.TrimSpace(stdout) != "Right Mover" {
		t.Errorf("expected default calc_vector, got: %q", stdout)
	}
}

func TestShow_UnknownField(t *testing.T) {
	setupTestEnv(t, "file")

	_, stderr, err := execPrefs(t, "show", "--field", "pressure_units")
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.Contains(stderr, "unknown preference field") {
		t.Errorf("expected 'unknown preference field' error, got: %s", stderr)
	}
}

func TestShow_JSON(t *testing.T) {
	setupTestEnv(t, "file")

	if _, _, err := execPrefs(t, "style", "inverted"); err != nil {
		t.Fatalf("style failed: %v", err)
	}

	stdout, _, err := execPrefs(t, "show", "-o", "json")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	if got["color_style"] != "inverted" || got["fg_color"] != "#000000" || got["dewp_color"] != "#00cc00" {
		t.Errorf("unexpected preferences: %v", got)
	}
	if got["temp_units"] != "Fahrenheit" {
		t.Errorf("expected seeded temp_units, got %q", got["temp_units"])
	}
}

func TestShow_Table(t *testing.T) {
	setupTestEnv(t, "file")

	stdout, _, err := execPrefs(t, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, field := range preferences.Fields() {
		if !strings.Contains(stdout, field) {
			t.Errorf("expected %s in output", field)
		}
	}
}

func TestHistoryRecordsCommandWrites(t *testing.T) {
	setupTestEnv(t, "file")

	if _, _, err := execPrefs(t, "set", "pw_units", "cm"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	repo, err := history.Open()
	if err != nil {
		t.Fatalf("history.Open failed: %v", err)
	}
	defer repo.Close()

	entries, err := repo.List(100)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	// Start-up seeding is not recorded; only the explicit write is.
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d: %+v", len(entries), entries)
	}
	if entries[0].Field != "pw_units" || entries[0].Value != "cm" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestHistoryDisabled(t *testing.T) {
	setupTestEnv(t, "file")
	cfg, _ := config.Load()
	cfg.History = "off"
	if err := cfg.Save(); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, _, err := execPrefs(t, "set", "pw_units", "cm"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	repo, err := history.Open()
	if err != nil {
		t.Fatalf("history.Open failed: %v", err)
	}
	defer repo.Close()
	entries, _ := repo.List(100)
	if len(entries) != 0 {
		t.Errorf("expected no history entries, got %d", len(entries))
	}
}

func TestOptionsHelp(t *testing.T) {
	help := optionsHelp()
	for _, want := range []string{"temp_units", "Fahrenheit | Celsius", "Left Mover | Right Mover", "standard | inverted | protanopia"} {
		if !strings.Contains(help, want) {
			t.Errorf("expected %q in help", want)
		}
	}
}
