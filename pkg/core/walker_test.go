package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	tempDir := t.TempDir()

	writeFile := func(rel, content string) {
		path := filepath.Join(tempDir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	writeFile("main.go", "package main\n")
	writeFile("scripts/build.sh", "#!/bin/sh\n")
	writeFile("Makefile", "all:\n")
	writeFile("image.png", "binaryish")
	writeFile(".git/config.py", "# should be excluded\n")
	writeFile("node_modules/dep/index.js", "// excluded\n")
	writeFile("blob.py", "data\x00with nul bytes")

	files, err := CollectFiles(tempDir, nil)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(tempDir, f)
		require.NoError(t, err)
		rel = append(rel, r)
	}

	assert.ElementsMatch(t, []string{"main.go", "scripts/build.sh", "Makefile"}, rel)
}

func TestCollectFilesCustomExcludes(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "gen"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "gen", "out.go"), []byte("package gen\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "main.go"), []byte("package main\n"), 0644))

	files, err := CollectFiles(tempDir, []string{"gen"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "main.go", filepath.Base(files[0]))
}

func TestIsBinaryFile(t *testing.T) {
	tempDir := t.TempDir()

	text := filepath.Join(tempDir, "text.go")
	require.NoError(t, os.WriteFile(text, []byte("package main\n"), 0644))
	assert.False(t, isBinaryFile(text))

	binary := filepath.Join(tempDir, "blob.go")
	require.NoError(t, os.WriteFile(binary, []byte{0x7f, 0x45, 0x00, 0x46}, 0644))
	assert.True(t, isBinaryFile(binary))
}
