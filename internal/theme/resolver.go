package theme

// Resolve turns a possibly-partial design-system document into a complete
// Theme for the given mode. It is total: any input, including nil, produces a
// fully-populated theme and it never panics.
//
// Field groups follow a fixed per-field merge strategy, preserved exactly as
// the upstream viewer behaves (do not "fix" the asymmetry):
//
//	key-wise merge ......... typography.scale, spacing.scale, animation.duration
//	whole-object substitute  colors, gradients, borderRadius, shadows
//
// Key-wise groups start from the curated defaults and overlay every key the
// document supplies, so one present key never blanks out its siblings.
// Whole-object groups are taken verbatim when present; a partial colors or
// radius object stays partial rather than being patched key-by-key.
func Resolve(raw *RawDesignSystem, mode Mode) Theme {
	if raw == nil {
		raw = &RawDesignSystem{}
	}
	if mode != ModeDark {
		mode = ModeLight
	}

	t := Theme{Mode: mode}

	t.Colors = resolveColors(raw.Colors, mode)

	t.Gradients = defaultGradients()
	if raw.Gradients != nil {
		t.Gradients = *raw.Gradients
	}

	t.BorderRadius = defaultBorderRadius()
	if raw.BorderRadius != nil {
		t.BorderRadius = *raw.BorderRadius
	}

	t.Shadows = defaultShadows()
	if raw.Shadows != nil {
		t.Shadows = *raw.Shadows
	}

	t.Typography = resolveTypography(raw.Typography)
	t.Spacing = resolveSpacing(raw.Spacing)
	t.Animation = resolveAnimation(raw.Animation)

	t.IconStyle = orElse(raw.IconStyle, defaultIconStyle)
	t.ProjectName = orElse(raw.ProjectName, defaultProjectName)
	t.Description = orElse(raw.Description, defaultDescription)
	t.UIImage = raw.UIImage

	t.Badges = deriveBadges(t.Colors, rawBadges(raw.Components))

	return t
}

// resolveColors applies whole-object substitution on the colors aggregate and
// then the mode fallback chain: colors[mode] -> colors.light -> emergency.
func resolveColors(modes *ColorModes, mode Mode) ColorScheme {
	selected := modes
	if selected == nil {
		def := defaultColorModes()
		selected = &def
	}

	scheme := selected.Light
	if mode == ModeDark && selected.Dark != nil {
		scheme = selected.Dark
	}
	if scheme == nil {
		return emergencyScheme()
	}
	return *scheme
}

func resolveTypography(raw *RawTypography) Typography {
	resolved := Typography{
		FontFamily: defaultFontFamily,
		Scale:      defaultTypeScale(),
	}
	if raw == nil {
		return resolved
	}

	resolved.FontFamily = orElse(raw.FontFamily, resolved.FontFamily)
	if raw.Scale != nil {
		resolved.Scale = mergeTypeScale(resolved.Scale, *raw.Scale)
	}
	return resolved
}

func mergeTypeScale(base, overlay TypeScale) TypeScale {
	base.H1 = orElse(overlay.H1, base.H1)
	base.H2 = orElse(overlay.H2, base.H2)
	base.H3 = orElse(overlay.H3, base.H3)
	base.Body = orElse(overlay.Body, base.Body)
	base.Caption = orElse(overlay.Caption, base.Caption)
	return base
}

func resolveSpacing(raw *RawSpacing) Spacing {
	resolved := Spacing{
		Base:  defaultSpacingBase,
		Scale: defaultSpacingScale(),
	}
	if raw == nil {
		return resolved
	}

	if raw.Base != nil {
		resolved.Base = *raw.Base
	}
	if raw.Scale != nil {
		resolved.Scale = mergeSpacingScale(resolved.Scale, *raw.Scale)
	}
	return resolved
}

func mergeSpacingScale(base, overlay SpacingScale) SpacingScale {
	base.XS = orElse(overlay.XS, base.XS)
	base.SM = orElse(overlay.SM, base.SM)
	base.MD = orElse(overlay.MD, base.MD)
	base.LG = orElse(overlay.LG, base.LG)
	base.XL = orElse(overlay.XL, base.XL)
	base.XXL = orElse(overlay.XXL, base.XXL)
	return base
}

func resolveAnimation(raw *RawAnimation) Animation {
	resolved := Animation{
		Duration: defaultDurations(),
		Easing:   defaultEasing,
	}
	if raw == nil {
		return resolved
	}

	if raw.Duration != nil {
		resolved.Duration = mergeDurations(resolved.Duration, *raw.Duration)
	}
	resolved.Easing = orElse(raw.Easing, resolved.Easing)
	return resolved
}

func mergeDurations(base, overlay DurationScale) DurationScale {
	base.Fast = orElse(overlay.Fast, base.Fast)
	base.Normal = orElse(overlay.Normal, base.Normal)
	base.Slow = orElse(overlay.Slow, base.Slow)
	return base
}

func rawBadges(components *RawComponents) map[string]BadgeStyle {
	if components == nil {
		return nil
	}
	return components.Badges
}

// deriveBadges builds the four semantic badges. An explicit spec for a kind is
// used verbatim; otherwise the badge is a 20%-opacity tint of the kind color,
// falling back to the fixed brand hex for that kind when the scheme has none.
func deriveBadges(colors ColorScheme, explicit map[string]BadgeStyle) BadgeSet {
	fallbacks := badgeFallbacks()
	derive := func(kind string) BadgeStyle {
		if spec, ok := explicit[kind]; ok {
			return spec
		}
		token := colors.Token(kind)
		if token == "" {
			token = fallbacks[kind]
		}
		return BadgeStyle{
			Background: token + badgeAlphaSuffix,
			Text:       token,
		}
	}

	return BadgeSet{
		Success: derive("success"),
		Error:   derive("error"),
		Warning: derive("warning"),
		Info:    derive("info"),
	}
}

func orElse(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
