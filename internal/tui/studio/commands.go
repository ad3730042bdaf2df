package studio

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Creativityliberty/stylepropre/internal/generator"
	"github.com/Creativityliberty/stylepropre/internal/speech"
)

// generateCmd runs the single external call of the application. It is gated by
// the loading flag upstream, so at most one is ever in flight.
func generateCmd(gen generator.Generator, prompt, imageURI string) tea.Cmd {
	return func() tea.Msg {
		raw, err := gen.Generate(context.Background(), prompt, imageURI)
		if err != nil {
			return GenerationFailedMsg{Err: err}
		}
		return GeneratedMsg{Raw: raw}
	}
}

// attachImageCmd encodes a local image into a data URI.
func attachImageCmd(path string) tea.Cmd {
	return func() tea.Msg {
		uri, err := generator.EncodeImageFile(path)
		return ImageAttachedMsg{DataURI: uri, Err: err}
	}
}

// dictateCmd attempts a speech transcription. On platforms without a
// recognizer this resolves immediately to a capability failure message.
func dictateCmd() tea.Cmd {
	return func() tea.Msg {
		rec, err := speech.NewRecognizer()
		if err != nil {
			return DictationMsg{Err: err}
		}
		transcript, err := rec.Transcribe(context.Background())
		return DictationMsg{Transcript: transcript, Err: err}
	}
}
