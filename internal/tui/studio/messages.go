package studio

import (
	"github.com/Creativityliberty/stylepropre/internal/manifest"
)

// GeneratedMsg carries a successful generation result.
type GeneratedMsg struct {
	Raw *manifest.RawManifest
}

// GenerationFailedMsg carries the single user-facing generation failure.
type GenerationFailedMsg struct {
	Err error
}

// ImageAttachedMsg reports the outcome of encoding a reference image.
type ImageAttachedMsg struct {
	DataURI string
	Err     error
}

// DictationMsg reports the outcome of a dictation attempt.
type DictationMsg struct {
	Transcript string
	Err        error
}
