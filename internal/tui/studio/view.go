package studio

import (
	"strings"
)

// View renders the prompt form or, once a manifest exists, the browser.
func (m Model) View() string {
	if m.phase == phaseBrowse && m.browser != nil {
		return m.browser.View()
	}
	return m.renderPrompt()
}

func (m Model) renderPrompt() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("stylepropre"))
	b.WriteString("\n")
	b.WriteString(promptFrameStyle.Render(m.prompt.View()))
	b.WriteString("\n")

	if m.attaching {
		b.WriteString(attachmentStyle.Render("attach image: "))
		b.WriteString(m.imageInput.View())
		b.WriteString("\n")
	} else if m.imageURI != "" {
		b.WriteString(attachmentStyle.Render("📎 image attached (ctrl+x to remove)"))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(loadingStyle.Render(m.spinner.View() + " Generating blueprint..."))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorBannerStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) helpLine() string {
	if m.attaching {
		return "enter confirm · esc cancel"
	}
	parts := []string{"ctrl+s generate", "ctrl+o attach image", "ctrl+d dictate"}
	if m.browser != nil {
		parts = append(parts, "esc back to blueprint")
	}
	parts = append(parts, "ctrl+c quit")
	return strings.Join(parts, " · ")
}
