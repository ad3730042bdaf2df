package theme

// Final-resort literals for component synthesis, used when neither an explicit
// spec nor a resolved theme token is available.
const (
	fallbackButtonText  = "#FFFFFF"
	fallbackRadius      = "8px"
	fallbackSurface     = "#FFFFFF"
	fallbackBorder      = "#E2E8F0"
	fallbackRestShadow  = "0 1px 2px rgba(0,0,0,0.05)"
	fallbackHoverShadow = "0 4px 12px rgba(0,0,0,0.08)"
	fallbackTint        = "rgba(99,102,241,0.1)"
)

// DeriveComponents produces the concrete component specs for the previews.
// Each element follows the same chain: explicit raw spec verbatim, then
// synthesis from resolved theme tokens, then a hardcoded literal.
// Deterministic and side-effect free.
func DeriveComponents(t Theme, raw *RawComponents) ComponentSet {
	if raw == nil {
		raw = &RawComponents{}
	}

	set := ComponentSet{
		Button:          derivePrimaryButton(t),
		SecondaryButton: deriveSecondaryButton(t),
		Card:            deriveCard(t),
		Input:           deriveInput(t),
		Badges:          deriveBadges(t.Colors, raw.Badges),
	}

	if raw.Buttons != nil {
		if raw.Buttons.Primary != nil {
			set.Button = *raw.Buttons.Primary
		}
		if raw.Buttons.Secondary != nil {
			set.SecondaryButton = *raw.Buttons.Secondary
		}
	}
	if raw.Cards != nil {
		set.Card = *raw.Cards
	}
	if raw.Inputs != nil {
		set.Input = *raw.Inputs
	}

	return set
}

func derivePrimaryButton(t Theme) ButtonStyle {
	background := orElse(t.Colors.Primary, brandPrimary)
	return ButtonStyle{
		Background: background,
		Text:       fallbackButtonText,
		Hover:      orElse(t.Colors.PrimaryHover, background),
		Radius:     orElse(t.BorderRadius.Medium, fallbackRadius),
	}
}

func deriveSecondaryButton(t Theme) ButtonStyle {
	accent := orElse(t.Colors.Primary, brandPrimary)
	return ButtonStyle{
		Border:          accent,
		Text:            accent,
		HoverBackground: orElse(t.Colors.SurfaceHighlight, orElse(t.Colors.Surface, fallbackTint)),
		Radius:          orElse(t.BorderRadius.Medium, fallbackRadius),
	}
}

func deriveCard(t Theme) CardStyle {
	return CardStyle{
		Background:  orElse(t.Colors.Surface, fallbackSurface),
		Radius:      orElse(t.BorderRadius.Large, fallbackRadius),
		Shadow:      orElse(t.Shadows.SM, fallbackRestShadow),
		HoverShadow: orElse(t.Shadows.MD, fallbackHoverShadow),
	}
}

func deriveInput(t Theme) InputStyle {
	return InputStyle{
		Background:  orElse(t.Colors.Background, orElse(t.Colors.Surface, fallbackSurface)),
		Border:      orElse(t.Colors.Border, fallbackBorder),
		FocusBorder: orElse(t.Colors.Primary, brandPrimary),
		Radius:      orElse(t.BorderRadius.Medium, fallbackRadius),
	}
}
