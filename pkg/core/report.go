package core

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// TagCounts returns the frequency of each supported tag across the
// given comments. Every supported tag is present in the result, with
// zero for tags that never occurred.
func TagCounts(comments []Comment) map[string]int {
	counts := make(map[string]int, len(SupportedTags))
	for _, tag := range SupportedTags {
		counts[tag] = 0
	}
	for _, c := range comments {
		tag := strings.ToUpper(c.Tag)
		if _, ok := counts[tag]; ok {
			counts[tag]++
		}
	}
	return counts
}

// LoadSavedComments reads a comments.json report written by a previous
// scan.
func LoadSavedComments(path string) ([]Comment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read saved report: %w", err)
	}

	var comments []Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, fmt.Errorf("failed to parse saved report %s: %w", path, err)
	}
	return comments, nil
}

// FilterCounts keeps only the requested tags in a count map. An empty
// filter (or "all") returns the map unchanged.
func FilterCounts(counts map[string]int, tagFilter string) map[string]int {
	filter := strings.ToLower(strings.TrimSpace(tagFilter))
	if filter == "" || filter == "all" {
		return counts
	}

	out := make(map[string]int)
	for _, t := range strings.Split(tagFilter, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if n, ok := counts[t]; ok {
			out[t] = n
		}
	}
	return out
}
