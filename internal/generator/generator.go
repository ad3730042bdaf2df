package generator

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Creativityliberty/stylepropre/internal/logger"
	"github.com/Creativityliberty/stylepropre/internal/manifest"
	apperrors "github.com/Creativityliberty/stylepropre/pkg/errors"
)

// DefaultModel is used when the settings file names none.
const DefaultModel = "gpt-4o-mini"

// Generator produces a raw project manifest from a prompt and an optional
// reference image (a data URI). Implementations do not retry; the caller
// surfaces a single failure and waits for the user to resubmit.
type Generator interface {
	Generate(ctx context.Context, prompt string, imageDataURI string) (*manifest.RawManifest, error)
}

// chatClient is the slice of the OpenAI client the generator needs. Tests
// substitute a fake.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGenerator implements Generator on the OpenAI chat completions API.
type OpenAIGenerator struct {
	client chatClient
	model  string
	log    *logger.Logger
}

// NewOpenAIGenerator constructs a generator. The API key is required; the
// model falls back to DefaultModel.
func NewOpenAIGenerator(apiKey, model string, log *logger.Logger) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log,
	}, nil
}

// Generate performs one chat completion and parses the result into a raw
// manifest. Any failure (transport, empty choices, undecodable payload) is
// wrapped in a GenerationError.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, imageDataURI string) (*manifest.RawManifest, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			userMessage(prompt, imageDataURI),
		},
	}

	g.log.WithFields(map[string]any{"model": g.model, "image": imageDataURI != ""}).Debug("requesting manifest generation")

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		g.log.Error(err, "generation request failed")
		return nil, apperrors.NewGenerationError("openai", g.model, err)
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices returned")
		g.log.Error(err, "generation returned empty response")
		return nil, apperrors.NewGenerationError("openai", g.model, err)
	}

	raw, err := manifest.Parse([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		g.log.Error(err, "generation returned undecodable manifest")
		return nil, apperrors.NewGenerationError("openai", g.model, err)
	}

	g.log.WithFields(map[string]any{"model": g.model}).Info("manifest generated")
	return raw, nil
}

// userMessage builds the user turn; with an attached image it becomes a
// multi-part vision message carrying the data URI.
func userMessage(prompt, imageDataURI string) openai.ChatCompletionMessage {
	text := buildUserPrompt(prompt, imageDataURI != "")
	if imageDataURI == "" {
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: text}
	}
	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: text},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: imageDataURI}},
		},
	}
}

var _ Generator = (*OpenAIGenerator)(nil)
