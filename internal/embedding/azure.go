package embedding

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// AzureOpenAI embeds text with an Azure OpenAI embedding deployment.
type AzureOpenAI struct {
	client     *openai.Client
	deployment string
}

func NewAzureOpenAI(endpoint, apiKey, deployment string) (*AzureOpenAI, error) {
	if endpoint == "" || apiKey == "" || deployment == "" {
		return nil, errors.New("azure openai embedding: endpoint, key and deployment are required")
	}
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	cfg.AzureModelMapperFunc = func(string) string { return deployment }
	return &AzureOpenAI{client: openai.NewClientWithConfig(cfg), deployment: deployment}, nil
}

func (a *AzureOpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := a.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(a.deployment),
	})
	if err != nil {
		return nil, fmt.Errorf("azure openai embed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("azure openai embed: empty response")
	}
	return resp.Data[0].Embedding, nil
}
