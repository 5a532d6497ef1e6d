package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCounts(t *testing.T) {
	comments := []Comment{
		{Tag: "TODO"},
		{Tag: "todo"},
		{Tag: "FIXME"},
		{Tag: "UNKNOWN"},
	}

	counts := TagCounts(comments)
	assert.Equal(t, 2, counts["TODO"])
	assert.Equal(t, 1, counts["FIXME"])
	assert.Equal(t, 0, counts["BUG"])
	assert.Len(t, counts, len(SupportedTags))
}

func TestFilterCounts(t *testing.T) {
	counts := map[string]int{"TODO": 3, "FIXME": 1, "BUG": 0}

	assert.Equal(t, counts, FilterCounts(counts, ""))
	assert.Equal(t, counts, FilterCounts(counts, "all"))

	filtered := FilterCounts(counts, "todo, bug")
	assert.Equal(t, map[string]int{"TODO": 3, "BUG": 0}, filtered)

	assert.Empty(t, FilterCounts(counts, "nosuchtag"))
}

func TestLoadSavedComments(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "comments.json")

	_, err := LoadSavedComments(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"tag":"TODO","content":"TODO x","file":"a.go","line":1}]`), 0644))
	comments, err := LoadSavedComments(path)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "TODO", comments[0].Tag)

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	_, err = LoadSavedComments(path)
	assert.ErrorContains(t, err, "failed to parse")
}
