package summary

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/billboard-app/core/internal/config"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
)

// Sampling policy is fixed, not user-configurable.
const (
	samplingTemperature = 0.3
	completionMaxTokens = 1000
)

// OpenAIClient is the production CompletionClient backed by the OpenAI
// chat completions API.
type OpenAIClient struct {
	client  openaiclient.Client
	model   string
	timeout time.Duration
}

func NewOpenAIClient(cfg config.OpenAIConfig) *OpenAIClient {
	return &OpenAIClient{
		client: openaiclient.NewClient(
			openaioption.WithAPIKey(cfg.APIKey),
			openaioption.WithMaxRetries(0),
		),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Complete issues one chat completion and returns the generated text plus
// the total token usage the service reported for the call.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model: openaiclient.ChatModel(c.model),
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.SystemMessage(systemPrompt),
			openaiclient.UserMessage(userPrompt),
		},
		MaxTokens:   openaiclient.Int(completionMaxTokens),
		Temperature: openaiclient.Float(samplingTemperature),
	})
	if err != nil {
		return "", 0, err
	}
	if len(resp.Choices) == 0 {
		return "", 0, errors.New("empty response from completion service")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), int(resp.Usage.TotalTokens), nil
}
