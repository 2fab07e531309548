package main

import (
	"context"

	"github.com/muhammadolammi/hirematch/internal/config"
	"github.com/muhammadolammi/hirematch/internal/llm"
	"github.com/muhammadolammi/hirematch/internal/providers"
)

const agentName = "hirematch_analyzer"

func newLLMProvider(ctx context.Context, cfg *config.Config) (llm.Provider, error) {
	return providers.LLM(ctx, cfg, providers.Agent{
		Name:        agentName,
		Description: "Structure job requirements",
		Instruction: agentInstruction(),
	})
}
