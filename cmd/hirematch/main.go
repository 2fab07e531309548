// Command hirematch parses resumes and ranks candidates against a job
// description from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/muhammadolammi/hirematch/internal/config"
	"github.com/muhammadolammi/hirematch/internal/llm"
	"github.com/muhammadolammi/hirematch/internal/providers"
)

var rootCmd = &cobra.Command{
	Use:           "hirematch",
	Short:         "Resume parsing and candidate matching",
	Long:          "hirematch extracts structured candidates from PDF, DOCX, HTML and text resumes, normalizes their skills and ranks them against job requirements.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		return nil
	},
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and checks the CLI requirements.
func loadConfig() (*config.Config, error) {
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(config.ModeCLI); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newProvider(ctx context.Context, cfg *config.Config, name, instruction string) (llm.Provider, error) {
	return providers.LLM(ctx, cfg, providers.Agent{Name: name, Instruction: instruction})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}
