package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muhammadolammi/hirematch/internal/model"
	"github.com/muhammadolammi/hirematch/internal/resume"
	"github.com/muhammadolammi/hirematch/internal/textextract"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume into candidate JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	c, err := parseFile(&resume.Parser{}, args[0])
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), c)
}

func parseFile(p *resume.Parser, path string) (*model.Candidate, error) {
	doc, err := textextract.Document(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(doc)
}
