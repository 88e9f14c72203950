package tui

import (
	"fmt"
	"strings"

	"soundingkit/sndprefs/internal/preferences"
	"soundingkit/sndprefs/internal/tui/styles"
)

// RenderPreferences formats a preference set one field per line, in field
// order. Missing fields show "(not set)". When color is true, color fields
// get a swatch and labels are styled.
func RenderPreferences(set preferences.PreferenceSet, color bool) string {
	fields := preferences.Fields()

	width := 0
	for _, f := range fields {
		width = max(width, len(f))
	}

	var b strings.Builder
	for _, f := range fields {
		value, ok := set[f]
		if !ok {
			value = "(not set)"
		}

		label := fmt.Sprintf("%-*s", width, f)
		if !color {
			fmt.Fprintf(&b, "%s  %s\n", label, value)
			continue
		}

		line := styles.Label.Render(label) + "  "
		if ok && preferences.IsColorField(f) && preferences.ValidHexColor(value) {
			line += styles.Swatch(value) + " "
		}
		if ok {
			line += styles.Value.Render(value)
		} else {
			line += styles.MutedText.Render(value)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
