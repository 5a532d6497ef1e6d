package main

import (
	"context"
	"fmt"
	"os"

	"tdl/pkg/core"
	"tdl/pkg/github"
)

// Manual harness for the GitHub integration. Files one test issue in
// the repo named by GITHUB_REPOSITORY using GITHUB_TOKEN.
func main() {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		fmt.Println("GITHUB_TOKEN environment variable is required")
		os.Exit(1)
	}

	repoFullName := os.Getenv("GITHUB_REPOSITORY")
	if repoFullName == "" {
		fmt.Println("GITHUB_REPOSITORY environment variable is required")
		os.Exit(1)
	}

	config := github.Config{
		Token:            token,
		BranchName:       "test-tdl-action",
		IssueTitlePrefix: "[TEST TDL]",
	}

	client, err := github.NewClient(repoFullName, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create client: %v\n", err)
		os.Exit(1)
	}

	comments := []core.Comment{
		{
			Tag:        "TODO",
			Content:    "TODO verify issue creation end to end",
			FilePath:   "cmd/test-client/main.go",
			LineNumber: 10,
		},
	}

	ctx := context.Background()
	processed, err := client.CreateIssuesFromComments(ctx, comments)
	if err != nil {
		fmt.Printf("Error creating issues: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %d issues\n", len(processed))
	for i, comment := range processed {
		fmt.Printf("Issue %d: %s\n", i+1, comment.IssueURL)
	}
}
