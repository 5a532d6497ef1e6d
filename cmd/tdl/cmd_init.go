package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tdl/pkg/config"
)

// initCmd sets up the .tdl workspace directory with a default config.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the .tdl workspace directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := filepath.Join(rootDir, config.Dir)

		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fmt.Printf("Directory already exists: %s\n", dir)
			return nil
		}

		if err := config.Write(rootDir, config.Default()); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", dir, err)
		}

		fmt.Printf("Directory created: %s\n", dir)
		return nil
	},
}

// destroyCmd deletes the .tdl directory after confirmation.
var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Remove the .tdl workspace directory and its contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := filepath.Join(rootDir, config.Dir)

		info, err := os.Stat(dir)
		if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
			fmt.Printf("Directory does not exist: %s\n", dir)
			return nil
		}

		fmt.Printf("Are you sure you want to destroy '%s'? (y/N): ", dir)
		reader := bufio.NewReader(os.Stdin)
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(strings.ToLower(input))

		if input != "y" && input != "yes" {
			fmt.Println("Aborted")
			return nil
		}

		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to destroy %s: %w", dir, err)
		}

		fmt.Printf("Destroyed: %s\n", dir)
		return nil
	},
}
