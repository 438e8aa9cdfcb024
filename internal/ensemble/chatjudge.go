package ensemble

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/colsense/pkg/openrouter"
)

// judgeTemperature keeps judgments near-deterministic.
var judgeTemperature = 0.1

// judgeMaxTokens bounds the reply; the JSON payload is tiny.
var judgeMaxTokens = 200

// ChatJudge adapts any OpenAI-compatible chat endpoint (OpenRouter,
// Groq) to the Judge capability.
type ChatJudge struct {
	name   string
	model  string
	client openrouter.Client
}

// NewChatJudge creates a judge over a chat completion client. The name
// identifies the provider in logs and ordering config.
func NewChatJudge(name string, client openrouter.Client, model string) *ChatJudge {
	return &ChatJudge{name: name, model: model, client: client}
}

func (j *ChatJudge) Name() string { return j.name }

func (j *ChatJudge) Judge(ctx context.Context, req Request) (*Judgment, error) {
	resp, err := j.client.ChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Model: j.model,
		Messages: []openrouter.Message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: BuildPrompt(req)},
		},
		Temperature: &judgeTemperature,
		MaxTokens:   &judgeMaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, eris.Errorf("ensemble: %s returned no choices", j.name)
	}
	return ParseReply(resp.Choices[0].Message.Content)
}
