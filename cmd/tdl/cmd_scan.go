package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tdl/pkg/config"
	"tdl/pkg/core"
)

var (
	scanTags         string
	scanWorkers      int
	scanColor        bool
	scanBlame        bool
	scanOutput       string
	scanOutputDir    string
	scanSummarize    bool
	scanIgnoreErrors bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the codebase for tagged comments",
	Long: `Walks the workspace, extracts tagged comments from every supported
source file concurrently, and either pretty-prints them, summarizes
tag frequency, or writes a report file.`,
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringVar(&scanTags, "tags", "", "comma-separated tags to filter by (TODO, FIXME, ...)")
	f.IntVar(&scanWorkers, "workers", 0, "number of concurrent workers (0 = one per CPU)")
	f.BoolVar(&scanColor, "color", true, "enable colorized output")
	f.BoolVar(&scanBlame, "blame", false, "annotate comments with git blame metadata")
	f.StringVar(&scanOutput, "output", "", "report format (json, yaml, text); empty prints to the terminal")
	f.StringVar(&scanOutputDir, "output-dir", "", "directory for the report file (default .tdl)")
	f.BoolVar(&scanSummarize, "summarize", false, "print tag frequency instead of the comments")
	f.BoolVar(&scanIgnoreErrors, "ignore-errors", true, "skip files that fail to scan")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return err
	}
	applyScanFlags(cmd, &cfg)

	files, err := core.CollectFiles(rootDir, cfg.ExcludeDirs)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}
	logger.Debug("collected files", zap.Int("count", len(files)))

	opts := core.Options{Tags: cfg.Tags, Blame: cfg.Blame}
	results, err := core.ExtractAll(cmd.Context(), files, cfg.Workers, opts, scanIgnoreErrors)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if cfg.Output != "" {
		// A relative output dir is anchored to the workspace, so the
		// report lands where `tdl report` looks for it.
		outDir := cfg.OutputDir
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(rootDir, outDir)
		}
		path, err := core.WriteReport(results, cfg.Output, outDir)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Extracted %d comments written to %s\n", len(core.Flatten(results)), path)
		return nil
	}

	if scanSummarize {
		printCounts(core.TagCounts(core.Flatten(results)))
		return nil
	}

	core.PrettyPrint(os.Stdout, results, cfg.Color)

	total := 0
	for _, list := range results {
		total += len(list)
	}
	fmt.Printf("Scanned %d files, found %d comments.\n", len(files), total)
	return nil
}

// applyScanFlags overrides config values with any flags the user set
// explicitly.
func applyScanFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("tags") {
		cfg.Tags = core.ParseTags(scanTags)
	}
	if f.Changed("workers") {
		cfg.Workers = scanWorkers
	}
	if f.Changed("color") {
		cfg.Color = scanColor
	}
	if f.Changed("blame") {
		cfg.Blame = scanBlame
	}
	if f.Changed("output") {
		cfg.Output = scanOutput
	}
	if f.Changed("output-dir") {
		cfg.OutputDir = scanOutputDir
	}
}

// printCounts writes tag frequency in the canonical tag order.
func printCounts(counts map[string]int) {
	for _, tag := range core.SupportedTags {
		if n, ok := counts[tag]; ok {
			fmt.Printf("%s : %d\n", tag, n)
		}
	}
}
