package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flatten merges a per-file result map into one slice ordered by file
// path and line number.
func Flatten(results map[string][]Comment) []Comment {
	var all []Comment
	for _, list := range results {
		all = append(all, list...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].FilePath != all[j].FilePath {
			return all[i].FilePath < all[j].FilePath
		}
		return all[i].LineNumber < all[j].LineNumber
	})
	return all
}

// WriteReport saves results to disk in JSON, YAML, or plain text
// format as comments.<ext> inside outputDir, creating the directory
// if needed. It returns the path of the written file.
func WriteReport(results map[string][]Comment, format, outputDir string) (string, error) {
	all := Flatten(results)
	if len(all) == 0 {
		return "", fmt.Errorf("no comments found")
	}

	ext := strings.ToLower(format)
	switch ext {
	case "json", "yaml", "yml", "text", "txt":
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}

	outPath := filepath.Join(outputDir, "comments."+ext)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}

	// A half-written report is worse than none; drop it on failure.
	if err := encodeReport(f, all, ext); err != nil {
		f.Close()
		os.Remove(outPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(outPath)
		return "", err
	}

	return outPath, nil
}

func encodeReport(f *os.File, all []Comment, ext string) error {
	switch ext {
	case "json":
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(all); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(f)
		if err := enc.Encode(all); err != nil {
			enc.Close()
			return fmt.Errorf("failed to write YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
	case "text", "txt":
		for _, c := range all {
			if _, err := fmt.Fprintf(f, "%s:%d [%s] %s\n",
				c.FilePath, c.LineNumber, c.Tag, c.Content); err != nil {
				return fmt.Errorf("failed to write text: %w", err)
			}
		}
	}
	return nil
}
