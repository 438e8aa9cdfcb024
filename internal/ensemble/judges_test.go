package ensemble

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/colsense/internal/taxonomy"
	"github.com/sells-group/colsense/pkg/anthropic"
	"github.com/sells-group/colsense/pkg/openrouter"
)

type fakeChatClient struct {
	reply string
	err   error
	req   openrouter.ChatCompletionRequest
}

func (f *fakeChatClient) ChatCompletion(_ context.Context, req openrouter.ChatCompletionRequest) (*openrouter.ChatCompletionResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &openrouter.ChatCompletionResponse{
		Choices: []openrouter.Choice{
			{Message: openrouter.Message{Role: "assistant", Content: f.reply}},
		},
	}, nil
}

func TestChatJudge(t *testing.T) {
	client := &fakeChatClient{reply: `{"category": "Email", "confidence": 0.9, "reasoning": "addresses"}`}
	j := NewChatJudge("openrouter", client, "some-model")

	judgment, err := j.Judge(context.Background(), Request{
		ColumnName:        "email",
		SampleValues:      []string{"a@gmail.com"},
		CandidateCategory: taxonomy.UnknownJunk,
	})
	require.NoError(t, err)

	assert.Equal(t, "openrouter", j.Name())
	assert.Equal(t, taxonomy.Email, judgment.Category)
	assert.Equal(t, "some-model", client.req.Model)
	require.Len(t, client.req.Messages, 2)
	assert.Equal(t, "system", client.req.Messages[0].Role)
	assert.Contains(t, client.req.Messages[1].Content, `"email"`)
}

func TestChatJudgePropagatesError(t *testing.T) {
	j := NewChatJudge("groq", &fakeChatClient{err: eris.New("boom")}, "m")
	_, err := j.Judge(context.Background(), Request{})
	assert.Error(t, err)
}

func TestChatJudgeNoChoices(t *testing.T) {
	j := NewChatJudge("groq", emptyChoicesClient{}, "m")
	_, err := j.Judge(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

type emptyChoicesClient struct{}

func (emptyChoicesClient) ChatCompletion(context.Context, openrouter.ChatCompletionRequest) (*openrouter.ChatCompletionResponse, error) {
	return &openrouter.ChatCompletionResponse{}, nil
}

type fakeAnthropicClient struct {
	reply string
	req   anthropic.MessageRequest
}

func (f *fakeAnthropicClient) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.req = req
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: f.reply}},
	}, nil
}

func TestAnthropicJudge(t *testing.T) {
	client := &fakeAnthropicClient{reply: `{"category": "Location", "confidence": 0.8, "reasoning": "addresses"}`}
	j := NewAnthropicJudge(client, "")

	judgment, err := j.Judge(context.Background(), Request{
		ColumnName:        "address",
		CandidateCategory: taxonomy.UnknownJunk,
	})
	require.NoError(t, err)

	assert.Equal(t, "anthropic", j.Name())
	assert.Equal(t, taxonomy.Location, judgment.Category)
	assert.Equal(t, anthropic.DefaultModel, client.req.Model, "empty model falls back to the default")
	assert.Equal(t, SystemPrompt, client.req.System)
}
