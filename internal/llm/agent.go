package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const DefaultAgentModel = "gemini-2.5-flash"

// AgentConfig describes the Gemini agent behind an AgentProvider.
type AgentConfig struct {
	APIKey      string
	Model       string
	Name        string
	Description string
	Instruction string
}

// AgentProvider runs prompts through an ADK llm agent. Every Generate call
// gets its own in-memory session, removed once the answer is read.
type AgentProvider struct {
	name     string
	runner   *runner.Runner
	sessions session.Service
}

func NewAgentProvider(ctx context.Context, cfg AgentConfig) (*AgentProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("agent provider: empty api key")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultAgentModel
	}
	if cfg.Name == "" {
		cfg.Name = "hirematch"
	}

	m, err := gemini.NewModel(ctx, cfg.Model, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	a, err := llmagent.New(llmagent.Config{
		Name:        cfg.Name,
		Model:       m,
		Description: cfg.Description,
		Instruction: cfg.Instruction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessions := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        a.Name(),
		Agent:          a,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}
	return &AgentProvider{name: a.Name(), runner: r, sessions: sessions}, nil
}

func (p *AgentProvider) Generate(ctx context.Context, prompt string) (string, error) {
	created, err := p.sessions.Create(ctx, &session.CreateRequest{
		AppName:   p.name,
		UserID:    p.name,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent session: %w", err)
	}
	s := created.Session
	defer func() {
		_ = p.sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   s.AppName(),
			UserID:    s.UserID(),
			SessionID: s.ID(),
		})
	}()

	stream := p.runner.Run(ctx, s.UserID(), s.ID(), &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", fmt.Errorf("agent stream: %w", err)
		}
		if event == nil || !event.IsFinalResponse() || event.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range event.Content.Parts {
			if part != nil {
				sb.WriteString(part.Text)
			}
		}
		output = sb.String()
	}
	if strings.TrimSpace(output) == "" {
		return "", errors.New("empty agent response")
	}
	return output, nil
}
