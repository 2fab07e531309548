// Package config loads hirematch settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/muhammadolammi/hirematch/internal/objectstore"
	"github.com/muhammadolammi/hirematch/internal/similarity"
)

// Modes accepted by Validate.
const (
	ModeWorker = "worker"
	ModeCLI    = "cli"
)

const (
	DefaultSQLitePath     = "hirematch.db"
	DefaultWorkers        = 3
	DefaultMatchThreshold = 0.5
	DefaultEmbeddingRPS   = 5
)

type AzureOpenAI struct {
	Endpoint       string
	Key            string
	Deployment     string
	ChatDeployment string
}

func (a AzureOpenAI) Enabled() bool {
	return a.Endpoint != "" && a.Key != ""
}

type Config struct {
	DatabaseURL string
	SQLitePath  string
	RabbitMQURL string
	R2          objectstore.R2Config

	GoogleAPIKey string
	AzureOpenAI  AzureOpenAI

	SimilarityMethod string
	EmbeddingModel   string
	AgentModel       string
	Workers          int
	MatchThreshold   float64
	EmbeddingRPS     float64
}

// Load reads .env when present and then the process environment. Unset
// values take their defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DatabaseURL: getenv("DB_URL"),
		SQLitePath:  getenv("SQLITE_PATH"),
		RabbitMQURL: getenv("RABBITMQ_URL"),
		R2: objectstore.R2Config{
			AccountID: getenv("R2_ACCOUNT_ID"),
			Bucket:    getenv("R2_BUCKET"),
			AccessKey: getenv("R2_ACCESS_KEY"),
			SecretKey: getenv("R2_SECRET_KEY"),
		},
		GoogleAPIKey: getenv("GOOGLE_API_KEY"),
		AzureOpenAI: AzureOpenAI{
			Endpoint:       getenv("AZURE_OPENAI_ENDPOINT"),
			Key:            getenv("AZURE_OPENAI_KEY"),
			Deployment:     getenv("AZURE_OPENAI_EMBEDDING_DEPLOYMENT"),
			ChatDeployment: getenv("AZURE_OPENAI_CHAT_DEPLOYMENT"),
		},
		SimilarityMethod: strings.ToLower(getenv("SIMILARITY_METHOD")),
		EmbeddingModel:   getenv("EMBEDDING_MODEL"),
		AgentModel:       getenv("AGENT_MODEL"),
	}

	var err error
	if cfg.Workers, err = intVar(getenv, "WORKERS", DefaultWorkers); err != nil {
		return nil, err
	}
	if cfg.MatchThreshold, err = floatVar(getenv, "MATCH_THRESHOLD", DefaultMatchThreshold); err != nil {
		return nil, err
	}
	if cfg.EmbeddingRPS, err = floatVar(getenv, "EMBEDDING_RPS", DefaultEmbeddingRPS); err != nil {
		return nil, err
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath
	}
	if cfg.SimilarityMethod == "" {
		cfg.SimilarityMethod = similarity.MethodTFIDF
	}
	return cfg, nil
}

// HasLLM reports whether any chat provider is configured.
func (c *Config) HasLLM() bool {
	return c.GoogleAPIKey != "" || (c.AzureOpenAI.Enabled() && c.AzureOpenAI.ChatDeployment != "")
}

// Validate checks values shared by every mode plus what mode requires.
func (c *Config) Validate(mode string) error {
	var errs []error

	switch c.SimilarityMethod {
	case similarity.MethodTFIDF:
	case similarity.MethodEmbeddings:
		if c.GoogleAPIKey == "" && !(c.AzureOpenAI.Enabled() && c.AzureOpenAI.Deployment != "") {
			errs = append(errs, errors.New("config error: embeddings need GOOGLE_API_KEY or an Azure OpenAI embedding deployment"))
		}
	default:
		errs = append(errs, fmt.Errorf("config error: invalid SIMILARITY_METHOD %q", c.SimilarityMethod))
	}
	if c.MatchThreshold < 0 || c.MatchThreshold > 1 {
		errs = append(errs, errors.New("config error: MATCH_THRESHOLD must be within [0,1]"))
	}
	if c.Workers < 1 {
		errs = append(errs, errors.New("config error: WORKERS must be positive"))
	}
	if c.EmbeddingRPS <= 0 {
		errs = append(errs, errors.New("config error: EMBEDDING_RPS must be positive"))
	}

	switch mode {
	case ModeWorker:
		required := []struct{ name, value string }{
			{"DB_URL", c.DatabaseURL},
			{"RABBITMQ_URL", c.RabbitMQURL},
			{"R2_ACCOUNT_ID", c.R2.AccountID},
			{"R2_BUCKET", c.R2.Bucket},
			{"R2_ACCESS_KEY", c.R2.AccessKey},
			{"R2_SECRET_KEY", c.R2.SecretKey},
		}
		for _, r := range required {
			if r.value == "" {
				errs = append(errs, fmt.Errorf("config error: empty %s in environment", r.name))
			}
		}
		if !c.HasLLM() {
			errs = append(errs, errors.New("config error: set GOOGLE_API_KEY or an Azure OpenAI chat deployment"))
		}
	case ModeCLI:
	default:
		errs = append(errs, fmt.Errorf("config error: unknown mode %q", mode))
	}
	return errors.Join(errs...)
}

func intVar(getenv func(string) string, name string, def int) (int, error) {
	raw := strings.TrimSpace(getenv(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config error: %s: %w", name, err)
	}
	return v, nil
}

func floatVar(getenv func(string) string, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(getenv(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config error: %s: %w", name, err)
	}
	return v, nil
}
