package ensemble

import (
	"context"

	"github.com/sells-group/colsense/pkg/anthropic"
)

// AnthropicJudge adapts the Anthropic Messages API to the Judge
// capability.
type AnthropicJudge struct {
	model  string
	client anthropic.Client
}

// NewAnthropicJudge creates a judge over an Anthropic client. An empty
// model falls back to the package default.
func NewAnthropicJudge(client anthropic.Client, model string) *AnthropicJudge {
	if model == "" {
		model = anthropic.DefaultModel
	}
	return &AnthropicJudge{model: model, client: client}
}

func (j *AnthropicJudge) Name() string { return "anthropic" }

func (j *AnthropicJudge) Judge(ctx context.Context, req Request) (*Judgment, error) {
	resp, err := j.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       j.model,
		MaxTokens:   int64(judgeMaxTokens),
		System:      SystemPrompt,
		Messages:    []anthropic.Message{{Role: "user", Content: BuildPrompt(req)}},
		Temperature: &judgeTemperature,
	})
	if err != nil {
		return nil, err
	}
	return ParseReply(resp.Text())
}
