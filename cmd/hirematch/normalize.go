package main

import (
	"github.com/spf13/cobra"

	"github.com/muhammadolammi/hirematch/internal/skills"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <skill>...",
	Short: "Print the canonical, sorted, de-duplicated form of skills",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeJSON(cmd.OutOrStdout(), skills.Normalize(args))
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
