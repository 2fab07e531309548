package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider sends prompts to an OpenAI or Azure OpenAI chat model.
type OpenAIProvider struct {
	client *openai.Client
	model  string

	// System is sent ahead of every prompt when set.
	System      string
	Temperature float32
	MaxTokens   int
}

func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("openai provider: empty api key")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{client: openai.NewClient(apiKey), model: model}, nil
}

// NewAzureProvider targets a chat deployment of an Azure OpenAI resource.
func NewAzureProvider(endpoint, apiKey, deployment string) (*OpenAIProvider, error) {
	if endpoint == "" || apiKey == "" || deployment == "" {
		return nil, errors.New("azure openai provider: endpoint, key and deployment are required")
	}
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	cfg.AzureModelMapperFunc = func(string) string { return deployment }
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: deployment}, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	var messages []openai.ChatCompletionMessage
	if p.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: p.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
