package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestExtractAll(t *testing.T) {
	tempDir := t.TempDir()

	for i := 0; i < 20; i++ {
		content := fmt.Sprintf("package p%d\n\n// TODO task %d\n", i, i)
		path := filepath.Join(tempDir, fmt.Sprintf("file%d.go", i))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	// One file without any tagged comments.
	clean := filepath.Join(tempDir, "clean.go")
	require.NoError(t, os.WriteFile(clean, []byte("package clean\n"), 0644))

	files, err := CollectFiles(tempDir, nil)
	require.NoError(t, err)
	require.Len(t, files, 21)

	results, err := ExtractAll(context.Background(), files, 4, Options{}, false)
	require.NoError(t, err)

	assert.Len(t, results, 20, "files without matches are omitted")
	_, ok := results[clean]
	assert.False(t, ok)

	total := 0
	for _, list := range results {
		total += len(list)
	}
	assert.Equal(t, 20, total)
}

func TestExtractAllNoFiles(t *testing.T) {
	results, err := ExtractAll(context.Background(), nil, 4, Options{}, false)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestExtractAllCancelledContext(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "file.go")
	require.NoError(t, os.WriteFile(path, []byte("// TODO task\npackage p\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExtractAll(ctx, []string{path}, 1, Options{}, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractAllIgnoreErrors(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "missing.go")
	present := filepath.Join(tempDir, "present.go")
	require.NoError(t, os.WriteFile(present, []byte("package p\n\n// FIXME broken\n"), 0644))

	files := []string{missing, present}

	_, err := ExtractAll(context.Background(), files, 2, Options{}, false)
	assert.Error(t, err)

	results, err := ExtractAll(context.Background(), files, 2, Options{}, true)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
