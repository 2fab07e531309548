package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muhammadolammi/hirematch/internal/outreach"
)

var emailCmd = &cobra.Command{
	Use:   "email --name <candidate> --job-title <title>",
	Short: "Draft an outreach email to a stored candidate",
	RunE:  runEmail,
}

var (
	emailCandidate string
	emailJobTitle  string
)

func init() {
	emailCmd.Flags().StringVarP(&emailCandidate, "name", "n", "", "Stored candidate name")
	emailCmd.Flags().StringVar(&emailJobTitle, "job-title", "", "Job title to pitch")
	emailCmd.Flags().StringVar(&storeDatabaseURL, "db-url", "", "Postgres URL (overrides DB_URL)")
	emailCmd.Flags().StringVar(&storeSQLitePath, "sqlite", "", "SQLite file (overrides SQLITE_PATH)")
	_ = emailCmd.MarkFlagRequired("name")
	_ = emailCmd.MarkFlagRequired("job-title")

	rootCmd.AddCommand(emailCmd)
}

func runEmail(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	provider, err := newProvider(ctx, cfg, "hirematch_outreach", outreach.SystemPrompt)
	if err != nil {
		return err
	}

	s, closer, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	c, err := s.GetByName(ctx, emailCandidate)
	if err != nil {
		return fmt.Errorf("candidate %q: %w", emailCandidate, err)
	}
	body, err := outreach.NewGenerator(provider).Generate(ctx, *c, emailJobTitle)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), body)
	return nil
}
