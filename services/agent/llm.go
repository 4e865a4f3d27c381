package agent

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the language-model collaborator. Chat accepts the full
// message history plus the tool schemas and returns the raw assistant
// message, which may carry tool calls instead of content.
type Client interface {
	Chat(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error)
}

// OpenAIClient calls the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed client for the given
// model.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Chat sends the history and tool schemas and returns the assistant's
// message.
func (c *OpenAIClient) Chat(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error) {
	if c.client == nil {
		return openai.ChatCompletionMessage{}, errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Tools:       tools,
		Temperature: 0.2,
	})
	if err != nil {
		return openai.ChatCompletionMessage{}, err
	}
	if len(resp.Choices) == 0 {
		return openai.ChatCompletionMessage{}, errors.New("empty completion response")
	}
	return resp.Choices[0].Message, nil
}
