package errors

import (
	"fmt"
)

// ParseError represents a failure to decode an AI-produced manifest payload.
// Offset is the byte offset reported by the JSON decoder, when available.
type ParseError struct {
	Source  string
	Offset  int64
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, offset int64, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Offset: offset, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Offset > 0 {
		return fmt.Sprintf("parse error: %s: offset %d: %s", e.Source, e.Offset, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures manifest or settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GenerationError represents a failed manifest generation call.
type GenerationError struct {
	Provider string
	Model    string
	Err      error
}

// NewGenerationError constructs a GenerationError for the given provider and model.
func NewGenerationError(provider, model string, err error) error {
	return &GenerationError{Provider: provider, Model: model, Err: err}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Model != "" {
		return fmt.Sprintf("generation failed (%s/%s): %v", e.Provider, e.Model, e.Err)
	}
	return fmt.Sprintf("generation failed (%s): %v", e.Provider, e.Err)
}

// Unwrap exposes the root error.
func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CapabilityError indicates a platform feature that is unavailable in the
// current environment. Callers surface the message and degrade to a no-op.
type CapabilityError struct {
	Feature  string
	Platform string
}

// NewCapabilityError constructs a CapabilityError.
func NewCapabilityError(feature, platform string) error {
	return &CapabilityError{Feature: feature, Platform: platform}
}

func (e *CapabilityError) Error() string {
	if e == nil {
		return ""
	}
	if e.Platform != "" {
		return fmt.Sprintf("%s is not supported on %s", e.Feature, e.Platform)
	}
	return fmt.Sprintf("%s is not supported on this platform", e.Feature)
}
