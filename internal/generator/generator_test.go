package generator

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Creativityliberty/stylepropre/pkg/errors"
)

type fakeChatClient struct {
	lastRequest openai.ChatCompletionRequest
	response    openai.ChatCompletionResponse
	err         error
}

func (f *fakeChatClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastRequest = req
	return f.response, f.err
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestNewOpenAIGeneratorRequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewOpenAIGenerator("", "gpt-4o-mini", nil)
	require.Error(t, err)

	g, err := NewOpenAIGenerator("sk-test", "", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, g.model)
}

func TestGenerateParsesManifest(t *testing.T) {
	t.Parallel()

	fake := &fakeChatClient{response: chatResponse("```json\n{\"project\":{\"name\":\"Atlas\"}}\n```")}
	g := &OpenAIGenerator{client: fake, model: "gpt-4o-mini"}

	raw, err := g.Generate(context.Background(), "a map app", "")
	require.NoError(t, err)
	require.NotNil(t, raw.Project)
	assert.Equal(t, "Atlas", raw.Project.Name)

	require.Len(t, fake.lastRequest.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.lastRequest.Messages[0].Role)
	assert.Contains(t, fake.lastRequest.Messages[1].Content, "a map app")
	require.NotNil(t, fake.lastRequest.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, fake.lastRequest.ResponseFormat.Type)
}

func TestGenerateAttachesImageAsVisionPart(t *testing.T) {
	t.Parallel()

	fake := &fakeChatClient{response: chatResponse(`{"project":{"name":"Atlas"}}`)}
	g := &OpenAIGenerator{client: fake, model: "gpt-4o-mini"}

	_, err := g.Generate(context.Background(), "a map app", "data:image/png;base64,AAAA")
	require.NoError(t, err)

	user := fake.lastRequest.Messages[1]
	require.Len(t, user.MultiContent, 2)
	assert.Equal(t, openai.ChatMessagePartTypeText, user.MultiContent[0].Type)
	assert.Contains(t, user.MultiContent[0].Text, "reference image is attached")
	assert.Equal(t, openai.ChatMessagePartTypeImageURL, user.MultiContent[1].Type)
	assert.Equal(t, "data:image/png;base64,AAAA", user.MultiContent[1].ImageURL.URL)
}

func TestGenerateWrapsTransportError(t *testing.T) {
	t.Parallel()

	fake := &fakeChatClient{err: errors.New("connection refused")}
	g := &OpenAIGenerator{client: fake, model: "gpt-4o-mini"}

	_, err := g.Generate(context.Background(), "anything", "")
	require.Error(t, err)

	var genErr *apperrors.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "openai", genErr.Provider)
	assert.Equal(t, "gpt-4o-mini", genErr.Model)
}

func TestGenerateWrapsEmptyChoices(t *testing.T) {
	t.Parallel()

	fake := &fakeChatClient{response: openai.ChatCompletionResponse{}}
	g := &OpenAIGenerator{client: fake, model: "gpt-4o-mini"}

	_, err := g.Generate(context.Background(), "anything", "")
	require.Error(t, err)

	var genErr *apperrors.GenerationError
	require.True(t, errors.As(err, &genErr))
}

func TestGenerateWrapsUnparsableContent(t *testing.T) {
	t.Parallel()

	fake := &fakeChatClient{response: chatResponse("Sorry, I cannot help with that.")}
	g := &OpenAIGenerator{client: fake, model: "gpt-4o-mini"}

	_, err := g.Generate(context.Background(), "anything", "")
	require.Error(t, err)

	var genErr *apperrors.GenerationError
	require.True(t, errors.As(err, &genErr))
	var parseErr *apperrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestEncodeImageFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ref.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50, 0x4E, 0x47}, 0o644))

	uri, err := EncodeImageFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	payload := strings.TrimPrefix(uri, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, decoded)
}

func TestEncodeImageFileRejectsUnknownType(t *testing.T) {
	t.Parallel()

	_, err := EncodeImageFile("notes.txt")
	require.Error(t, err)
}
