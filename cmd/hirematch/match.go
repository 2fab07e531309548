package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/muhammadolammi/hirematch/internal/jobspec"
	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/providers"
	"github.com/muhammadolammi/hirematch/internal/resume"
	"github.com/muhammadolammi/hirematch/internal/textextract"
)

var matchCmd = &cobra.Command{
	Use:   "match --job <file> <resume>...",
	Short: "Rank resumes against a job description",
	Long: "Parse every resume, structure the job description and print the candidates ranked by overall score. " +
		"Job requirements come from the configured language model with --llm, otherwise from keyword extraction.",
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

var (
	matchJobFile   string
	matchMethod    string
	matchThreshold float64
	matchUseLLM    bool
)

type matchOutput struct {
	Job      model.JobRequirements `json:"job_requirements"`
	Matches  []model.MatchResult   `json:"matches"`
	Skipped  []string              `json:"skipped"`
	Warnings []string              `json:"warnings,omitempty"`
}

func init() {
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to the job description (txt, html, pdf or docx)")
	matchCmd.Flags().StringVarP(&matchMethod, "method", "m", "", "Similarity method: tfidf or embeddings (overrides SIMILARITY_METHOD)")
	matchCmd.Flags().Float64VarP(&matchThreshold, "threshold", "t", -1, "Minimum overall score to report (overrides MATCH_THRESHOLD)")
	matchCmd.Flags().BoolVar(&matchUseLLM, "llm", false, "Structure the job description with the configured language model")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if matchMethod != "" {
		cfg.SimilarityMethod = matchMethod
	}
	if matchThreshold >= 0 {
		cfg.MatchThreshold = matchThreshold
	}

	description, err := textextract.ExtractFile(matchJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	out := matchOutput{Skipped: []string{}}
	if matchUseLLM {
		provider, err := newProvider(ctx, cfg, "hirematch_jobspec", jobspec.SystemPrompt())
		if err != nil {
			return err
		}
		job, err := jobspec.NewParser(provider, slog.Default()).Parse(ctx, description)
		if err != nil {
			out.Warnings = append(out.Warnings, err.Error())
		}
		out.Job = job
	} else {
		out.Job = jobspec.Lexicon(description)
	}

	parser := &resume.Parser{}
	candidates := make([]model.Candidate, 0, len(args))
	for _, path := range args {
		c, err := parseFile(parser, path)
		if err != nil {
			slog.Warn("skipping resume", "path", path, "error", err)
			out.Skipped = append(out.Skipped, path)
			continue
		}
		candidates = append(candidates, *c)
	}

	engine, err := providers.Engine(ctx, cfg)
	if err != nil {
		return err
	}
	out.Matches, err = engine.ScoreAll(ctx, out.Job, candidates)
	if err != nil {
		return err
	}
	if out.Matches == nil {
		out.Matches = []model.MatchResult{}
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
