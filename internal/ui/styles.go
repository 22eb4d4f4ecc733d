package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple #A78BFA, configurable): markup output, highlights
// - Muted (gray): hints, secondary info
// - No colored success/error/warning - unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// accentColor holds the normalized user-configured accent, empty when
	// the default palette is active.
	accentColor string

	// Accent style for file paths, saved-query names, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

// ConfigureTheme applies a user-configured accent color. Empty or
// unrecognized values keep the default; "none", "off" and "default"
// explicitly reset it.
func ConfigureTheme(accent string) {
	normalized, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
		return
	}
	accentColor = normalized
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(normalized))
}

// AccentColor returns the configured accent color, ok=false when the
// default palette is active.
func AccentColor() (string, bool) {
	if accentColor == "" {
		return defaultAccent, false
	}
	return accentColor, true
}

// normalizeAccentColor validates an accent value: an ANSI code (0-255) or
// a hex color (#RGB or #RRGGBB, expanded to the long form).
func normalizeAccentColor(value string) (string, bool) {
	v := strings.TrimSpace(strings.ToLower(value))
	switch v {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if !isHex(hex) {
			return "", false
		}
		switch len(hex) {
		case 3:
			return "#" + expandShortHex(hex), true
		case 6:
			return v, true
		}
		return "", false
	}

	if code, err := strconv.Atoi(v); err == nil && code >= 0 && code <= 255 {
		return v, true
	}
	return "", false
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return len(s) > 0
}

func expandShortHex(hex string) string {
	var b strings.Builder
	for _, r := range hex {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	return b.String()
}
