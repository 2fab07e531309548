// Package providers builds the language model, embedding and similarity
// components selected by configuration.
package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/muhammadolammi/hirematch/internal/config"
	"github.com/muhammadolammi/hirematch/internal/embedding"
	"github.com/muhammadolammi/hirematch/internal/llm"
	"github.com/muhammadolammi/hirematch/internal/similarity"
)

var ErrNoLLM = errors.New("no language model configured: set GOOGLE_API_KEY or an Azure OpenAI chat deployment")

// Agent names the Gemini agent and its standing instruction.
type Agent struct {
	Name        string
	Description string
	Instruction string
}

// LLM prefers a Gemini agent and falls back to an Azure OpenAI chat
// deployment.
func LLM(ctx context.Context, cfg *config.Config, a Agent) (llm.Provider, error) {
	if cfg.GoogleAPIKey != "" {
		return llm.NewAgentProvider(ctx, llm.AgentConfig{
			APIKey:      cfg.GoogleAPIKey,
			Model:       cfg.AgentModel,
			Name:        a.Name,
			Description: a.Description,
			Instruction: a.Instruction,
		})
	}
	az := cfg.AzureOpenAI
	if az.Enabled() && az.ChatDeployment != "" {
		p, err := llm.NewAzureProvider(az.Endpoint, az.Key, az.ChatDeployment)
		if err != nil {
			return nil, err
		}
		p.System = a.Instruction
		return p, nil
	}
	return nil, ErrNoLLM
}

// Embedding returns a rate limited, cached provider for the embeddings
// method and nil for any other method.
func Embedding(ctx context.Context, cfg *config.Config) (embedding.Provider, error) {
	if cfg.SimilarityMethod != similarity.MethodEmbeddings {
		return nil, nil
	}

	var (
		base    embedding.Provider
		modelID string
	)
	switch {
	case cfg.GoogleAPIKey != "":
		modelID = cfg.EmbeddingModel
		if modelID == "" {
			modelID = embedding.DefaultGeminiModel
		}
		g, err := embedding.NewGemini(ctx, cfg.GoogleAPIKey, modelID)
		if err != nil {
			return nil, err
		}
		base = g
	case cfg.AzureOpenAI.Enabled() && cfg.AzureOpenAI.Deployment != "":
		modelID = cfg.AzureOpenAI.Deployment
		a, err := embedding.NewAzureOpenAI(cfg.AzureOpenAI.Endpoint, cfg.AzureOpenAI.Key, modelID)
		if err != nil {
			return nil, err
		}
		base = a
	default:
		return nil, errors.New("no embedding provider configured")
	}
	return embedding.NewCached(embedding.NewLimited(base, cfg.EmbeddingRPS, 1), modelID), nil
}

// Engine builds the similarity engine for cfg.SimilarityMethod with the
// configured threshold.
func Engine(ctx context.Context, cfg *config.Config) (*similarity.Engine, error) {
	provider, err := Embedding(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding provider: %w", err)
	}
	strategy, err := similarity.NewStrategy(cfg.SimilarityMethod, provider)
	if err != nil {
		return nil, err
	}
	engine := similarity.NewEngine(strategy)
	engine.Threshold = cfg.MatchThreshold
	return engine, nil
}
