package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sethvargo/go-githubactions"

	"tdl/pkg/core"
	"tdl/pkg/github"
)

func main() {
	// Set up action
	action := githubactions.New()
	ctx := context.Background()

	// Get action inputs - first try action inputs, then fall back to env vars
	token := action.GetInput("github_token")
	if token == "" {
		token = os.Getenv("TDL_GITHUB_TOKEN")
		if token == "" {
			action.Fatalf("github_token input is required")
		}
	}

	branchName := action.GetInput("branch_name")
	if branchName == "" {
		branchName = os.Getenv("TDL_BRANCH_NAME")
		if branchName == "" {
			branchName = "main" // Default branch name
		}
	}

	issueTitlePrefix := action.GetInput("issue_title_prefix")
	if issueTitlePrefix == "" {
		issueTitlePrefix = os.Getenv("TDL_ISSUE_PREFIX")
	}

	// Tags to file issues for; defaults to the actionable pair.
	tags := core.ParseTags(action.GetInput("tags"))
	if tags == nil {
		tags = []string{"TODO", "FIXME"}
	}

	// Get GitHub context
	eventName := os.Getenv("GITHUB_EVENT_NAME")
	if eventName != "pull_request" && eventName != "workflow_dispatch" {
		action.Fatalf("This action only works on pull_request or workflow_dispatch events, got: %s", eventName)
	}

	repoFullName := os.Getenv("GITHUB_REPOSITORY")
	if repoFullName == "" {
		action.Fatalf("GITHUB_REPOSITORY environment variable is not set")
	}

	var prNumber int
	var err error

	if eventName == "workflow_dispatch" {
		// In workflow_dispatch mode, use a dummy PR number
		prNumber = 1
		action.Infof("Running in workflow_dispatch mode - using dummy PR number: %d", prNumber)
	} else {
		prString := os.Getenv("GITHUB_REF")
		prNumber, err = extractPRNumber(prString)
		if err != nil {
			action.Fatalf("Failed to extract PR number: %v", err)
		}
	}

	// Get workspace path
	workspacePath := os.Getenv("GITHUB_WORKSPACE")
	if workspacePath == "" {
		action.Fatalf("GITHUB_WORKSPACE environment variable is not set")
	}

	config := github.Config{
		Token:            token,
		BranchName:       branchName,
		IssueTitlePrefix: issueTitlePrefix,
	}

	client, err := github.NewClient(repoFullName, config)
	if err != nil {
		action.Fatalf("Failed to create GitHub client: %v", err)
	}

	// For workflow_dispatch, skip PR merged check
	if eventName != "workflow_dispatch" {
		isMerged, err := client.IsPRMergedToTargetBranch(ctx, prNumber)
		if err != nil {
			action.Fatalf("Failed to check if PR is merged: %v", err)
		}

		if !isMerged {
			action.Infof("PR #%d is not merged to %s branch yet. Skipping issue creation.", prNumber, branchName)
			return
		}
	} else {
		action.Infof("Running in workflow_dispatch mode - skipping PR merged check")
	}

	// Scan workspace for tagged comments
	action.Infof("Scanning for tagged comments in workspace: %s", workspacePath)
	files, err := core.CollectFiles(workspacePath, nil)
	if err != nil {
		action.Fatalf("Failed to scan directory: %v", err)
	}

	results, err := core.ExtractAll(ctx, files, 0, core.Options{Tags: tags}, true)
	if err != nil {
		action.Fatalf("Failed to extract comments: %v", err)
	}

	comments := core.Flatten(results)
	action.Infof("Found %d tagged comments", len(comments))

	// Filter out comments already linked to an issue
	untracked := core.FilterUntracked(comments)
	action.Infof("Found %d untracked comments", len(untracked))

	if len(untracked) == 0 {
		action.Infof("No untracked comments found. Exiting.")
		return
	}

	// Issue links are written back via repo-relative paths.
	for i := range untracked {
		untracked[i].FilePath = relativeTo(workspacePath, untracked[i].FilePath)
	}

	processed, err := client.CreateIssuesFromComments(ctx, untracked)
	if err != nil {
		action.Fatalf("Failed to create issues: %v", err)
	}

	action.Infof("Created %d issues from tagged comments", len(processed))

	// Get PR head branch name or use current branch for workflow_dispatch
	var prBranch string
	if eventName == "workflow_dispatch" {
		prBranch = branchName
		action.Infof("Using branch for workflow_dispatch: %s", prBranch)
	} else {
		raw := github.NewRawClient(token)
		prDetails, _, err := raw.PullRequests.Get(ctx, strings.Split(repoFullName, "/")[0], strings.Split(repoFullName, "/")[1], prNumber)
		if err != nil {
			action.Fatalf("Failed to get PR details: %v", err)
		}
		prBranch = prDetails.GetHead().GetRef()
	}

	// Link issues back in the source files
	for _, comment := range processed {
		err := client.UpdateCommentInFile(ctx, comment, prBranch)
		if err != nil {
			action.Warningf("Failed to update comment in file %s: %v", comment.FilePath, err)
		} else {
			action.Infof("Linked comment in %s to issue: %s", comment.FilePath, comment.IssueURL)
		}
	}

	action.Infof("tdl action completed successfully")
}

// relativeTo rewrites an absolute scan path relative to the workspace.
func relativeTo(workspace, path string) string {
	if !strings.HasPrefix(path, workspace) {
		return path
	}
	rel := strings.TrimPrefix(path, workspace)
	return strings.TrimPrefix(rel, "/")
}

// extractPRNumber extracts the PR number from the GITHUB_REF
func extractPRNumber(refString string) (int, error) {
	// GitHub Actions format: refs/pull/{number}/merge
	pullPrefix := "refs/pull/"
	if strings.HasPrefix(refString, pullPrefix) {
		numStr := strings.TrimPrefix(refString, pullPrefix)
		numStr = strings.Split(numStr, "/")[0]
		return strconv.Atoi(numStr)
	}

	// If we can't extract from GITHUB_REF, try GITHUB_REF_NAME (which might be just the number in some cases)
	refName := os.Getenv("GITHUB_REF_NAME")
	if refName != "" {
		parts := strings.Split(refName, "/")
		return strconv.Atoi(parts[0])
	}

	return 0, fmt.Errorf("could not extract PR number from refs: %s", refString)
}
