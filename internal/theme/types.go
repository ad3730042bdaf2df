package theme

// Mode selects which color scheme a theme is resolved against.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// ColorScheme holds the 13 named color tokens of a single mode. Tokens are
// plain color strings (hex, rgba or named); any subset may be empty when the
// scheme came straight from an AI document.
type ColorScheme struct {
	Primary          string `json:"primary,omitempty"`
	PrimaryHover     string `json:"primaryHover,omitempty"`
	Secondary        string `json:"secondary,omitempty"`
	Surface          string `json:"surface,omitempty"`
	SurfaceHighlight string `json:"surfaceHighlight,omitempty"`
	Background       string `json:"background,omitempty"`
	Text             string `json:"text,omitempty"`
	TextSecondary    string `json:"textSecondary,omitempty"`
	Border           string `json:"border,omitempty"`
	Success          string `json:"success,omitempty"`
	Warning          string `json:"warning,omitempty"`
	Error            string `json:"error,omitempty"`
	Info             string `json:"info,omitempty"`
}

// MissingTokenText is what display surfaces show for an absent token. Viewers
// must render something for every token, never fail.
const MissingTokenText = "undefined"

// TokenNames lists the scheme tokens in their fixed display order.
func TokenNames() []string {
	return []string{
		"primary", "primaryHover", "secondary",
		"surface", "surfaceHighlight", "background",
		"text", "textSecondary", "border",
		"success", "warning", "error", "info",
	}
}

// Token returns the raw value of a named token, which may be empty.
func (c ColorScheme) Token(name string) string {
	switch name {
	case "primary":
		return c.Primary
	case "primaryHover":
		return c.PrimaryHover
	case "secondary":
		return c.Secondary
	case "surface":
		return c.Surface
	case "surfaceHighlight":
		return c.SurfaceHighlight
	case "background":
		return c.Background
	case "text":
		return c.Text
	case "textSecondary":
		return c.TextSecondary
	case "border":
		return c.Border
	case "success":
		return c.Success
	case "warning":
		return c.Warning
	case "error":
		return c.Error
	case "info":
		return c.Info
	default:
		return ""
	}
}

// Lookup returns a displayable string for a token: its value when set,
// MissingTokenText otherwise.
func (c ColorScheme) Lookup(name string) string {
	if v := c.Token(name); v != "" {
		return v
	}
	return MissingTokenText
}

// ColorModes pairs the light and dark schemes of a design system.
type ColorModes struct {
	Light *ColorScheme `json:"light,omitempty"`
	Dark  *ColorScheme `json:"dark,omitempty"`
}

// Gradients holds the two named gradient strings.
type Gradients struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

// TypeScale maps typography tiers to font-size strings.
type TypeScale struct {
	H1      string `json:"h1,omitempty"`
	H2      string `json:"h2,omitempty"`
	H3      string `json:"h3,omitempty"`
	Body    string `json:"body,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Typography couples a font family with its scale.
type Typography struct {
	FontFamily string    `json:"fontFamily"`
	Scale      TypeScale `json:"scale"`
}

// SpacingScale maps spacing tiers to size strings.
type SpacingScale struct {
	XS  string `json:"xs,omitempty"`
	SM  string `json:"sm,omitempty"`
	MD  string `json:"md,omitempty"`
	LG  string `json:"lg,omitempty"`
	XL  string `json:"xl,omitempty"`
	XXL string `json:"xxl,omitempty"`
}

// SpacingEntry is one named step of the spacing scale.
type SpacingEntry struct {
	Key   string
	Value string
}

// Ordered enumerates the scale in its fixed tier order xs..xxl, independent of
// how the source document ordered or supplied the keys.
func (s SpacingScale) Ordered() []SpacingEntry {
	return []SpacingEntry{
		{Key: "xs", Value: s.XS},
		{Key: "sm", Value: s.SM},
		{Key: "md", Value: s.MD},
		{Key: "lg", Value: s.LG},
		{Key: "xl", Value: s.XL},
		{Key: "xxl", Value: s.XXL},
	}
}

// Spacing couples the numeric base unit with the named scale.
type Spacing struct {
	Base  float64      `json:"base"`
	Scale SpacingScale `json:"scale"`
}

// DurationScale maps motion tiers to duration strings.
type DurationScale struct {
	Fast   string `json:"fast,omitempty"`
	Normal string `json:"normal,omitempty"`
	Slow   string `json:"slow,omitempty"`
}

// Animation couples motion durations with an easing curve.
type Animation struct {
	Duration DurationScale `json:"duration"`
	Easing   string        `json:"easing"`
}

// BorderRadius holds the radius tokens.
type BorderRadius struct {
	Small  string `json:"small,omitempty"`
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
	Full   string `json:"full,omitempty"`
}

// Shadows holds the elevation tokens.
type Shadows struct {
	SM string `json:"sm,omitempty"`
	MD string `json:"md,omitempty"`
	LG string `json:"lg,omitempty"`
}

// ButtonStyle is a concrete button spec. Primary buttons carry Background and
// Hover; secondary (outline) buttons carry Border and HoverBackground.
type ButtonStyle struct {
	Background      string `json:"background,omitempty"`
	Border          string `json:"border,omitempty"`
	Text            string `json:"text,omitempty"`
	Hover           string `json:"hover,omitempty"`
	HoverBackground string `json:"hoverBackground,omitempty"`
	Radius          string `json:"radius,omitempty"`
}

// CardStyle is a concrete card spec.
type CardStyle struct {
	Background  string `json:"background,omitempty"`
	Radius      string `json:"radius,omitempty"`
	Shadow      string `json:"shadow,omitempty"`
	HoverShadow string `json:"hoverShadow,omitempty"`
}

// InputStyle is a concrete text-input spec.
type InputStyle struct {
	Background  string `json:"background,omitempty"`
	Border      string `json:"border,omitempty"`
	FocusBorder string `json:"focusBorder,omitempty"`
	Radius      string `json:"radius,omitempty"`
}

// BadgeStyle is a concrete badge spec for one semantic kind.
type BadgeStyle struct {
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
}

// BadgeSet holds one badge per semantic kind.
type BadgeSet struct {
	Success BadgeStyle `json:"success"`
	Error   BadgeStyle `json:"error"`
	Warning BadgeStyle `json:"warning"`
	Info    BadgeStyle `json:"info"`
}

// RawButtons is the possibly-partial button section of an AI document.
type RawButtons struct {
	Primary   *ButtonStyle `json:"primary,omitempty"`
	Secondary *ButtonStyle `json:"secondary,omitempty"`
}

// RawComponents is the possibly-partial component-style section.
type RawComponents struct {
	Buttons *RawButtons           `json:"buttons,omitempty"`
	Cards   *CardStyle            `json:"cards,omitempty"`
	Inputs  *InputStyle           `json:"inputs,omitempty"`
	Badges  map[string]BadgeStyle `json:"badges,omitempty"`
}

// RawTypography is the possibly-partial typography section. Scale keys merge
// key-wise against the defaults.
type RawTypography struct {
	FontFamily string     `json:"fontFamily,omitempty"`
	Scale      *TypeScale `json:"scale,omitempty"`
}

// RawSpacing is the possibly-partial spacing section. Base is a pointer so a
// supplied zero is distinguishable from an absent field.
type RawSpacing struct {
	Base  *float64      `json:"base,omitempty"`
	Scale *SpacingScale `json:"scale,omitempty"`
}

// RawAnimation is the possibly-partial animation section.
type RawAnimation struct {
	Duration *DurationScale `json:"duration,omitempty"`
	Easing   string         `json:"easing,omitempty"`
}

// RawDesignSystem is the design-system section exactly as the AI produced it.
// Every field may be absent; Resolve turns it into a complete Theme.
type RawDesignSystem struct {
	Colors       *ColorModes      `json:"colors,omitempty"`
	Gradients    *Gradients       `json:"gradients,omitempty"`
	Typography   *RawTypography   `json:"typography,omitempty"`
	Spacing      *RawSpacing      `json:"spacing,omitempty"`
	Animation    *RawAnimation    `json:"animation,omitempty"`
	Components   *RawComponents   `json:"components,omitempty"`
	BorderRadius *BorderRadius    `json:"borderRadius,omitempty"`
	Shadows      *Shadows         `json:"shadows,omitempty"`
	IconStyle    string           `json:"iconStyle,omitempty"`
	ProjectName  string           `json:"projectName,omitempty"`
	Description  string           `json:"description,omitempty"`
	UIImage      string           `json:"uiImage,omitempty"`
}

// Theme is a fully-resolved design system for one mode. It is rebuilt from the
// raw document on every render pass and never mutated in place.
type Theme struct {
	Mode         Mode         `json:"mode"`
	Colors       ColorScheme  `json:"colors"`
	Gradients    Gradients    `json:"gradients"`
	Typography   Typography   `json:"typography"`
	Spacing      Spacing      `json:"spacing"`
	Animation    Animation    `json:"animation"`
	BorderRadius BorderRadius `json:"borderRadius"`
	Shadows      Shadows      `json:"shadows"`
	Badges       BadgeSet     `json:"badges"`
	IconStyle    string       `json:"iconStyle"`
	ProjectName  string       `json:"projectName"`
	Description  string       `json:"description"`
	UIImage      string       `json:"uiImage,omitempty"`
}

// ComponentSet is the full derived component styling for the previews.
type ComponentSet struct {
	Button          ButtonStyle `json:"button"`
	SecondaryButton ButtonStyle `json:"secondaryButton"`
	Card            CardStyle   `json:"card"`
	Input           InputStyle  `json:"input"`
	Badges          BadgeSet    `json:"badges"`
}
