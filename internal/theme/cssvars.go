package theme

import (
	"fmt"
	"strings"
)

// cssVariableNames is the fixed export contract: 16 custom properties, always
// emitted in this order regardless of what the source document supplied.
var cssVariableNames = []string{
	"--color-primary",
	"--color-secondary",
	"--color-surface",
	"--color-background",
	"--color-text",
	"--color-text-secondary",
	"--color-border",
	"--color-success",
	"--color-warning",
	"--color-error",
	"--font-family",
	"--radius-small",
	"--radius-medium",
	"--radius-large",
	"--shadow-md",
	"--duration-normal",
}

// CSSVariableNames returns the fixed export contract in order.
func CSSVariableNames() []string {
	names := make([]string, len(cssVariableNames))
	copy(names, cssVariableNames)
	return names
}

// CSSVariables renders the theme as a :root custom-property block. This is a
// textual projection for the styleguide, not a functional stylesheet.
func CSSVariables(t Theme) string {
	values := map[string]string{
		"--color-primary":        t.Colors.Lookup("primary"),
		"--color-secondary":      t.Colors.Lookup("secondary"),
		"--color-surface":        t.Colors.Lookup("surface"),
		"--color-background":     t.Colors.Lookup("background"),
		"--color-text":           t.Colors.Lookup("text"),
		"--color-text-secondary": t.Colors.Lookup("textSecondary"),
		"--color-border":         t.Colors.Lookup("border"),
		"--color-success":        t.Colors.Lookup("success"),
		"--color-warning":        t.Colors.Lookup("warning"),
		"--color-error":          t.Colors.Lookup("error"),
		"--font-family":          t.Typography.FontFamily,
		"--radius-small":         orElse(t.BorderRadius.Small, MissingTokenText),
		"--radius-medium":        orElse(t.BorderRadius.Medium, MissingTokenText),
		"--radius-large":         orElse(t.BorderRadius.Large, MissingTokenText),
		"--shadow-md":            orElse(t.Shadows.MD, MissingTokenText),
		"--duration-normal":      orElse(t.Animation.Duration.Normal, MissingTokenText),
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range cssVariableNames {
		fmt.Fprintf(&b, "  %s: %s;\n", name, values[name])
	}
	b.WriteString("}\n")
	return b.String()
}
