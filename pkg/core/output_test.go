package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResults() map[string][]Comment {
	return map[string][]Comment{
		"b.go": {
			{Tag: "TODO", Content: "TODO later", FilePath: "b.go", LineNumber: 3},
		},
		"a.go": {
			{Tag: "FIXME", Content: "FIXME now", FilePath: "a.go", LineNumber: 10},
			{Tag: "NOTE", Content: "NOTE context", FilePath: "a.go", LineNumber: 2},
		},
	}
}

func TestFlattenOrdering(t *testing.T) {
	all := Flatten(sampleResults())
	require.Len(t, all, 3)
	assert.Equal(t, "a.go", all[0].FilePath)
	assert.Equal(t, 2, all[0].LineNumber)
	assert.Equal(t, 10, all[1].LineNumber)
	assert.Equal(t, "b.go", all[2].FilePath)
}

func TestWriteReportJSON(t *testing.T) {
	outDir := t.TempDir()

	path, err := WriteReport(sampleResults(), "json", outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "comments.json"), path)

	comments, err := LoadSavedComments(path)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "NOTE", comments[0].Tag)
}

func TestWriteReportYAML(t *testing.T) {
	outDir := t.TempDir()

	path, err := WriteReport(sampleResults(), "yaml", outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var comments []Comment
	require.NoError(t, yaml.Unmarshal(data, &comments))
	assert.Len(t, comments, 3)
}

func TestWriteReportText(t *testing.T) {
	outDir := t.TempDir()

	path, err := WriteReport(sampleResults(), "text", outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a.go:2 [NOTE] NOTE context", lines[0])
}

func TestWriteReportErrors(t *testing.T) {
	outDir := t.TempDir()

	_, err := WriteReport(map[string][]Comment{}, "json", outDir)
	assert.ErrorContains(t, err, "no comments found")

	_, err = WriteReport(sampleResults(), "xml", outDir)
	assert.ErrorContains(t, err, "unsupported output format")
	assert.NoFileExists(t, filepath.Join(outDir, "comments.xml"))
}

func TestEncodeReportPropagatesWriteErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")

	// A read-only handle makes every write fail, standing in for a
	// full or broken disk.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0644)
	require.NoError(t, err)
	defer f.Close()

	assert.Error(t, encodeReport(f, Flatten(sampleResults()), "json"))
	assert.Error(t, encodeReport(f, Flatten(sampleResults()), "yaml"))
	assert.Error(t, encodeReport(f, Flatten(sampleResults()), "text"))
}

func TestWriteReportCreatesOutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "reports")

	path, err := WriteReport(sampleResults(), "json", outDir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
