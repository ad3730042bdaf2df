package theme

// Curated defaults used whenever the AI document leaves a field group out.
// Scale-like groups (type scale, spacing scale, durations) merge key-wise
// against these; colors, gradients, radii and shadows substitute wholesale.

const (
	// brandPrimary is the final fallback for any primary-colored surface.
	brandPrimary      = "#6366F1"
	brandPrimaryHover = "#4F46E5"

	defaultSpacingBase = 4

	// badgeAlphaSuffix renders a 20%-opacity tint of the kind color.
	badgeAlphaSuffix = "33"
)

func defaultLightScheme() ColorScheme {
	return ColorScheme{
		Primary:          brandPrimary,
		PrimaryHover:     brandPrimaryHover,
		Secondary:        "#8B5CF6",
		Surface:          "#F8FAFC",
		SurfaceHighlight: "#F1F5F9",
		Background:       "#FFFFFF",
		Text:             "#0F172A",
		TextSecondary:    "#64748B",
		Border:           "#E2E8F0",
		Success:          "#10B981",
		Warning:          "#F59E0B",
		Error:            "#EF4444",
		Info:             "#3B82F6",
	}
}

func defaultDarkScheme() ColorScheme {
	return ColorScheme{
		Primary:          "#818CF8",
		PrimaryHover:     "#6366F1",
		Secondary:        "#A78BFA",
		Surface:          "#1E293B",
		SurfaceHighlight: "#334155",
		Background:       "#0F172A",
		Text:             "#F8FAFC",
		TextSecondary:    "#94A3B8",
		Border:           "#334155",
		Success:          "#34D399",
		Warning:          "#FBBF24",
		Error:            "#F87171",
		Info:             "#60A5FA",
	}
}

// emergencyScheme is the last line of the mode fallback chain: a minimal
// two-token palette guaranteeing readable output.
func emergencyScheme() ColorScheme {
	return ColorScheme{
		Background: "#FFFFFF",
		Text:       "#000000",
	}
}

func defaultColorModes() ColorModes {
	light := defaultLightScheme()
	dark := defaultDarkScheme()
	return ColorModes{Light: &light, Dark: &dark}
}

func defaultGradients() Gradients {
	return Gradients{
		Primary:   "linear-gradient(135deg, #6366F1 0%, #8B5CF6 100%)",
		Secondary: "linear-gradient(135deg, #8B5CF6 0%, #EC4899 100%)",
	}
}

const defaultFontFamily = "Inter, system-ui, sans-serif"

func defaultTypeScale() TypeScale {
	return TypeScale{
		H1:      "2.5rem",
		H2:      "2rem",
		H3:      "1.5rem",
		Body:    "1rem",
		Caption: "0.875rem",
	}
}

func defaultSpacingScale() SpacingScale {
	return SpacingScale{
		XS:  "4px",
		SM:  "8px",
		MD:  "16px",
		LG:  "24px",
		XL:  "32px",
		XXL: "48px",
	}
}

func defaultDurations() DurationScale {
	return DurationScale{
		Fast:   "150ms",
		Normal: "300ms",
		Slow:   "500ms",
	}
}

const defaultEasing = "cubic-bezier(0.4, 0, 0.2, 1)"

func defaultBorderRadius() BorderRadius {
	return BorderRadius{
		Small:  "6px",
		Medium: "10px",
		Large:  "16px",
		Full:   "9999px",
	}
}

func defaultShadows() Shadows {
	return Shadows{
		SM: "0 1px 2px rgba(0,0,0,0.05)",
		MD: "0 4px 12px rgba(0,0,0,0.08)",
		LG: "0 12px 32px rgba(0,0,0,0.12)",
	}
}

const (
	defaultIconStyle   = "lucide"
	defaultProjectName = "Untitled Project"
	defaultDescription = "A generated project blueprint"
)

// badgeFallbacks supplies the kind color when the resolved scheme has none.
func badgeFallbacks() map[string]string {
	return map[string]string{
		"success": "#10B981",
		"error":   "#EF4444",
		"warning": "#F59E0B",
		"info":    "#3B82F6",
	}
}
