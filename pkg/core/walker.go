package core

import (
	"os"
	"path/filepath"
	"slices"
)

// DefaultExcludeDirs are directory names skipped during collection.
var DefaultExcludeDirs = []string{".git", "node_modules", "vendor", ".tdl"}

// CollectFiles walks a directory tree and returns all supported text
// files, skipping excluded directories and binary files. An empty
// exclude list falls back to DefaultExcludeDirs.
func CollectFiles(root string, excludeDirs []string) ([]string, error) {
	if excludeDirs == nil {
		excludeDirs = DefaultExcludeDirs
	}

	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != root && slices.Contains(excludeDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := CommentCharFor(path); !ok || isBinaryFile(path) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	return out, err
}

// isBinaryFile checks for null bytes in the leading 8 KiB to decide if
// a file is binary.
func isBinaryFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 8192)
	n, _ := f.Read(buf)
	return slices.Contains(buf[:n], byte(0))
}
