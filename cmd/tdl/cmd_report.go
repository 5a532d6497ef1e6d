package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tdl/pkg/config"
	"tdl/pkg/core"
)

var reportTag string

// reportCmd summarizes tag frequency from a previously saved scan.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize tag frequency from the saved scan results",
	Long: `Reads the comments.json report written by "tdl scan --output json"
and prints how often each tag occurs. Use --tag to restrict the
summary to specific tags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(rootDir, config.Dir, "comments.json")
		comments, err := core.LoadSavedComments(path)
		if err != nil {
			return fmt.Errorf("no saved scan results (run \"tdl scan --output json\" first): %w", err)
		}

		counts := core.FilterCounts(core.TagCounts(comments), reportTag)
		for _, tag := range core.SupportedTags {
			if n, ok := counts[tag]; ok {
				fmt.Printf("%s => %d\n", tag, n)
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportTag, "tag", "all", "comma-separated tags to report on, or \"all\"")
}
