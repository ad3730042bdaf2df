package generator

import (
	"strings"
)

// systemPrompt instructs the model to answer with a bare manifest document.
// The parser tolerates fenced output anyway, but asking for JSON up front cuts
// the failure rate considerably.
const systemPrompt = `You are a senior product designer and software architect.
Given a product idea, respond with a single JSON object describing the complete
project manifest. Use exactly this top-level shape:

{
  "project":      {"id","name","tagline","description","version","domain","locale"},
  "tech":         {"stackPreset","persistence":{"mode"},"quality":{...booleans}},
  "seo":          {"indexing":{"enabled","sitemap","keywords"}},
  "growth":       {"viralLoop","onboarding"},
  "designSystem": {"colors":{"light":{...},"dark":{...}},"gradients","typography","spacing","animation","components","borderRadius","shadows","iconStyle","projectName","description"},
  "landing":      {"structure":[...ids],"sections":{id:{"headline"}}},
  "auth":         {"providers":[...]},
  "app":          {"dashboard":{"modules":[{"id","label","type"}]}}
}

Color values are hex strings. Omit nothing you can infer; the viewer fills any
gap with neutral defaults. Respond with JSON only, no prose, no code fences.`

// buildUserPrompt assembles the user turn, mentioning the reference image when
// one is attached so the model treats it as visual direction.
func buildUserPrompt(prompt string, hasImage bool) string {
	var b strings.Builder
	b.WriteString("Product idea: ")
	b.WriteString(strings.TrimSpace(prompt))
	if hasImage {
		b.WriteString("\n\nA reference image is attached. Derive the visual direction (palette, radii, overall mood) from it.")
	}
	return b.String()
}
