package config

import (
	"fmt"
	"slices"
	"strings"

	"soundingkit/sndprefs/internal/configstore"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "store-backend").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate, when non-nil, checks a value before it is applied.
	Validate func(value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "store-backend",
		Description: "Where preferences are kept: file or sqlite",
		Get:         func(cfg *Config) string { return cfg.StoreBackend },
		Set:         func(cfg *Config, v string) { cfg.StoreBackend = v },
		Validate:    oneOf(configstore.Backends()...),
	},
	{
		Name:        "store-path",
		Description: "Path of the preference store (default: per backend)",
		Get:         func(cfg *Config) string { return cfg.StorePath },
		Set:         func(cfg *Config, v string) { cfg.StorePath = v },
	},
	{
		Name:        "history",
		Description: "Record preference changes: on or off",
		Get:         func(cfg *Config) string { return cfg.History },
		Set:         func(cfg *Config, v string) { cfg.History = v },
		Validate:    oneOf("on", "off"),
	},
}

func oneOf(allowed ...string) func(string) error {
	return func(v string) error {
		if slices.Contains(allowed, v) {
			return nil
		}
		return fmt.Errorf("invalid value %q (valid: %s)", v, strings.Join(allowed, ", "))
	}
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
