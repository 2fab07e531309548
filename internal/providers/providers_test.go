package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadolammi/hirematch/internal/config"
	"github.com/muhammadolammi/hirematch/internal/llm"
	"github.com/muhammadolammi/hirematch/internal/similarity"
)

func TestEngineLexicalByDefault(t *testing.T) {
	cfg := &config.Config{SimilarityMethod: similarity.MethodTFIDF, MatchThreshold: 0.5}
	engine, err := Engine(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, similarity.Lexical{}, engine.Strategy)
	assert.Equal(t, 0.5, engine.Threshold)
}

func TestEmbeddingNeedsProvider(t *testing.T) {
	cfg := &config.Config{SimilarityMethod: similarity.MethodEmbeddings, EmbeddingRPS: 1}
	_, err := Engine(context.Background(), cfg)
	assert.ErrorContains(t, err, "no embedding provider")
}

func TestEmbeddingAzure(t *testing.T) {
	cfg := &config.Config{
		SimilarityMethod: similarity.MethodEmbeddings,
		EmbeddingRPS:     2,
		AzureOpenAI: config.AzureOpenAI{
			Endpoint:   "https://example.openai.azure.com",
			Key:        "k",
			Deployment: "text-embedding-3-small",
		},
	}
	engine, err := Engine(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, similarity.Embedding{}, engine.Strategy)
}

func TestLLM(t *testing.T) {
	_, err := LLM(context.Background(), &config.Config{}, Agent{Name: "a"})
	assert.ErrorIs(t, err, ErrNoLLM)

	p, err := LLM(context.Background(), &config.Config{AzureOpenAI: config.AzureOpenAI{
		Endpoint:       "https://example.openai.azure.com",
		Key:            "k",
		ChatDeployment: "gpt-4o-mini",
	}}, Agent{Name: "a", Instruction: "be brief"})
	require.NoError(t, err)
	require.IsType(t, &llm.OpenAIProvider{}, p)
	assert.Equal(t, "be brief", p.(*llm.OpenAIProvider).System)
}
