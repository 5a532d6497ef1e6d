// Package github files tracking issues for tagged comments and links
// them back to the source files they came from.
package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"tdl/pkg/core"
)

// Config holds the settings for the GitHub integration.
type Config struct {
	Token            string
	BranchName       string
	IssueTitlePrefix string
}

// Client handles interaction with the GitHub API.
type Client struct {
	client *github.Client
	owner  string
	repo   string
	config Config
}

// NewClient creates a new GitHub client for the given owner/repo.
func NewClient(repoFullName string, config Config) (*Client, error) {
	parts := strings.SplitN(repoFullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid repository name %q, expected owner/repo", repoFullName)
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: config.Token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	return &Client{
		client: client,
		owner:  parts[0],
		repo:   parts[1],
		config: config,
	}, nil
}

// NewRawClient creates an unwrapped go-github client.
func NewRawClient(token string) *github.Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return github.NewClient(tc)
}

// CreateIssuesFromComments files one issue per tagged comment and
// returns the comments with their new issue URLs filled in. Comments
// already linked to an issue are skipped.
func (c *Client) CreateIssuesFromComments(ctx context.Context, comments []core.Comment) ([]core.Comment, error) {
	var processed []core.Comment

	for _, comment := range comments {
		if comment.IssueURL != "" {
			continue
		}

		title := c.issueTitle(comment)
		body := issueBody(comment)
		labels := []string{strings.ToLower(comment.Tag)}

		issue, _, err := c.client.Issues.Create(ctx, c.owner, c.repo, &github.IssueRequest{
			Title:  &title,
			Body:   &body,
			Labels: &labels,
		})
		if err != nil {
			return processed, fmt.Errorf("failed to create issue for comment in %s (line %d): %w",
				comment.FilePath, comment.LineNumber, err)
		}

		comment.IssueURL = issue.GetHTMLURL()
		processed = append(processed, comment)
	}

	return processed, nil
}

// issueTitle builds the issue title from the comment, with the
// configured prefix when set.
func (c *Client) issueTitle(comment core.Comment) string {
	title := fmt.Sprintf("[%s] %s", comment.Tag, comment.Content)
	if c.config.IssueTitlePrefix != "" {
		title = fmt.Sprintf("%s %s", c.config.IssueTitlePrefix, title)
	}
	return title
}

// issueBody builds the issue body with source provenance and any
// blame metadata the scan collected.
func issueBody(comment core.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found a %s comment in `%s` (line %d):\n\n", comment.Tag, comment.FilePath, comment.LineNumber)
	fmt.Fprintf(&b, "> %s\n", comment.Content)
	if comment.Author != "" {
		fmt.Fprintf(&b, "\nIntroduced by %s", comment.Author)
		if comment.CreationStamp != "" {
			fmt.Fprintf(&b, " at %s", comment.CreationStamp)
		}
		if comment.Commit != "" {
			fmt.Fprintf(&b, " in %s", comment.Commit)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// IsPRMergedToTargetBranch checks if a PR is merged to the configured
// target branch.
func (c *Client) IsPRMergedToTargetBranch(ctx context.Context, prNumber int) (bool, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, c.owner, c.repo, prNumber)
	if err != nil {
		return false, fmt.Errorf("failed to get PR #%d: %w", prNumber, err)
	}

	return pr.GetMerged() && pr.GetBase().GetRef() == c.config.BranchName, nil
}

// UpdateCommentInFile writes an "Issue: <url>" comment line below the
// tagged comment on the given branch, so later scans skip it.
func (c *Client) UpdateCommentInFile(ctx context.Context, comment core.Comment, branch string) error {
	fileContent, _, _, err := c.client.Repositories.GetContents(
		ctx,
		c.owner,
		c.repo,
		comment.FilePath,
		&github.RepositoryContentGetOptions{Ref: branch},
	)
	if err != nil {
		return fmt.Errorf("failed to get content of %s: %w", comment.FilePath, err)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return fmt.Errorf("failed to decode content of %s: %w", comment.FilePath, err)
	}

	lines := strings.Split(content, "\n")
	if comment.LineNumber-1 < 0 || comment.LineNumber > len(lines) {
		return fmt.Errorf("line number %d is out of range for file %s", comment.LineNumber, comment.FilePath)
	}

	char, ok := core.CommentCharFor(comment.FilePath)
	if !ok {
		return fmt.Errorf("unsupported file type: %s", comment.FilePath)
	}

	tagLineIndex := comment.LineNumber - 1
	if strings.Contains(lines[tagLineIndex], "Issue:") {
		return nil // already linked
	}

	issueComment := fmt.Sprintf("%s Issue: %s", char, comment.IssueURL)
	updatedLines := append(lines[:tagLineIndex+1], append([]string{issueComment}, lines[tagLineIndex+1:]...)...)
	updatedContent := strings.Join(updatedLines, "\n")

	sha := fileContent.GetSHA()
	message := fmt.Sprintf("Link tagged comment to issue in %s", comment.FilePath)
	_, _, err = c.client.Repositories.UpdateFile(
		ctx,
		c.owner,
		c.repo,
		comment.FilePath,
		&github.RepositoryContentFileOptions{
			Message: &message,
			Content: []byte(updatedContent),
			SHA:     &sha,
			Branch:  &branch,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to update file %s: %w", comment.FilePath, err)
	}

	return nil
}
