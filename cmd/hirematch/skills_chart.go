package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/muhammadolammi/hirematch/internal/skills"
	"github.com/muhammadolammi/hirematch/internal/store"
)

var skillsChartCmd = &cobra.Command{
	Use:   "skills-chart",
	Short: "Print how often each skill appears across stored candidates",
	Args:  cobra.NoArgs,
	RunE:  runSkillsChart,
}

var (
	chartTop     int
	chartMinFreq int
)

func init() {
	skillsChartCmd.Flags().IntVar(&chartTop, "top", 20, "Number of skills to print, 0 for all")
	skillsChartCmd.Flags().IntVar(&chartMinFreq, "min-freq", 1, "Drop skills seen fewer times")
	skillsChartCmd.Flags().StringVar(&storeDatabaseURL, "db-url", "", "Postgres URL (overrides DB_URL)")
	skillsChartCmd.Flags().StringVar(&storeSQLitePath, "sqlite", "", "SQLite file (overrides SQLITE_PATH)")

	rootCmd.AddCommand(skillsChartCmd)
}

func runSkillsChart(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(ctx context.Context, s store.Store) error {
		all, err := s.GetAll(ctx)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), skills.Distribution(all, chartTop, chartMinFreq))
	})
}
