package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdl/pkg/core"
)

func TestNewClientValidatesRepoName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		wantErr  bool
	}{
		{name: "owner and repo", fullName: "ksysoev/tdl", wantErr: false},
		{name: "missing separator", fullName: "tdl", wantErr: true},
		{name: "empty owner", fullName: "/tdl", wantErr: true},
		{name: "empty repo", fullName: "ksysoev/", wantErr: true},
		{name: "empty string", fullName: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.fullName, Config{Token: "token"})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ksysoev", client.owner)
			assert.Equal(t, "tdl", client.repo)
		})
	}
}

func TestIssueTitle(t *testing.T) {
	comment := core.Comment{
		Tag:     "FIXME",
		Content: "FIXME handle symlinked directories",
	}

	plain := &Client{}
	assert.Equal(t, "[FIXME] FIXME handle symlinked directories", plain.issueTitle(comment))

	prefixed := &Client{config: Config{IssueTitlePrefix: "[tdl]"}}
	assert.Equal(t, "[tdl] [FIXME] FIXME handle symlinked directories", prefixed.issueTitle(comment))
}

func TestIssueBody(t *testing.T) {
	comment := core.Comment{
		Tag:        "TODO",
		Content:    "TODO add retry logic",
		FilePath:   "pkg/core/pool.go",
		LineNumber: 42,
	}

	body := issueBody(comment)
	assert.Contains(t, body, "TODO comment in `pkg/core/pool.go` (line 42)")
	assert.Contains(t, body, "> TODO add retry logic")
	assert.NotContains(t, body, "Introduced by")
}

func TestIssueBodyWithBlame(t *testing.T) {
	comment := core.Comment{
		Tag:           "BUG",
		Content:       "BUG off by one at month boundaries",
		FilePath:      "calendar.go",
		LineNumber:    7,
		Author:        "alice",
		Commit:        "deadbeef",
		CreationStamp: "2026-01-15T10:00:00Z",
	}

	body := issueBody(comment)
	assert.Contains(t, body, "Introduced by alice at 2026-01-15T10:00:00Z in deadbeef")
}
