// Package speech probes for platform speech-recognition support. No terminal
// platform currently offers a recognition service this tool can drive, so the
// probe reports a capability error and the studio degrades dictation to a
// no-op with a visible message, leaving the rest of the UI usable.
package speech

import (
	"context"
	"runtime"

	apperrors "github.com/Creativityliberty/stylepropre/pkg/errors"
)

// Recognizer transcribes one utterance of dictated speech.
type Recognizer interface {
	// Transcribe blocks until an utterance completes and returns its text.
	Transcribe(ctx context.Context) (string, error)
}

// Available reports whether a recognizer can be constructed on this platform.
func Available() bool {
	_, err := NewRecognizer()
	return err == nil
}

// NewRecognizer returns the platform recognizer, or a CapabilityError when the
// platform has none.
func NewRecognizer() (Recognizer, error) {
	return nil, apperrors.NewCapabilityError("speech recognition", runtime.GOOS)
}
