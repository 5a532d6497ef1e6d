package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tdl/pkg/config"
	"tdl/pkg/core"
	"tdl/pkg/watch"
)

// watchCmd rescans files for tagged comments as they change.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rescan files for tagged comments as they change",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(rootDir)
		if err != nil {
			return err
		}

		handler := func(path string, comments []core.Comment) {
			if len(comments) == 0 {
				return
			}
			core.PrettyPrint(os.Stdout, map[string][]core.Comment{path: comments}, cfg.Color)
		}

		opts := core.Options{Tags: cfg.Tags, Blame: cfg.Blame}
		w, err := watch.New(rootDir, opts, cfg.ExcludeDirs, handler, logger)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}

		ctx := cmd.Context()
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}

		fmt.Println("Watching for changes. Press Ctrl-C to stop.")
		<-ctx.Done()
		w.Stop()
		return nil
	},
}
