package core

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// maxScanCapacity caps the line scanner buffer at 1 MiB.
const maxScanCapacity = 1024 * 1024

var issueRegex = regexp.MustCompile(`^Issue:(.+)`)

// Options controls a single extraction pass.
type Options struct {
	// Tags restricts matching to the listed tags. Empty means all
	// supported tags.
	Tags []string
	// Blame annotates each comment with git blame metadata. Shells out
	// per matched line, so it is opt-in.
	Blame bool
}

// normalizeExt resolves the lookup key for a path: the lowercased
// extension, or the basename for extension-less files like Makefile.
func normalizeExt(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = strings.ToLower(filepath.Base(path))
	}
	return ext
}

// ExtractComments scans one file line by line for tagged comments.
// Unsupported file types yield no comments and no error.
func ExtractComments(path string, opts Options) ([]Comment, error) {
	char, ok := CommentCharFor(path)
	if !ok {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	tagSet := tagSetFrom(opts.Tags)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxScanCapacity)

	var out []Comment
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		pos := strings.Index(line, char)
		if pos == -1 {
			continue
		}
		text := strings.TrimSpace(line[pos+len(char):])

		// An "Issue: <url>" comment directly below a tagged comment
		// links it to an already-filed tracking issue.
		if m := issueRegex.FindStringSubmatch(text); m != nil {
			if n := len(out); n > 0 && out[n-1].LineNumber == lineNum-1 {
				out[n-1].IssueURL = strings.TrimSpace(m[1])
			}
			continue
		}

		tag := findTag(text, tagSet)
		if tag == "" {
			continue
		}
		c := Comment{
			Tag:        tag,
			Content:    text,
			FilePath:   path,
			LineNumber: lineNum,
		}
		if opts.Blame {
			annotateBlame(&c)
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return out, nil
}

// tagSetFrom builds the lookup set for the requested tags, defaulting
// to every supported tag.
func tagSetFrom(tags []string) map[string]struct{} {
	if len(tags) == 0 {
		set := make(map[string]struct{}, len(supportedTagsLookup))
		for tag := range supportedTagsLookup {
			set[tag] = struct{}{}
		}
		return set
	}
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		trimmed := strings.ToUpper(strings.TrimSpace(t))
		if trimmed != "" {
			set[trimmed] = struct{}{}
		}
	}
	return set
}

// ParseTags splits a comma-separated tag list into its entries.
// Whitespace around entries is dropped; an empty input returns nil.
func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// FilterUntracked returns the comments that are not yet linked to a
// tracking issue.
func FilterUntracked(comments []Comment) []Comment {
	var untracked []Comment
	for _, c := range comments {
		if c.IssueURL == "" {
			untracked = append(untracked, c)
		}
	}
	return untracked
}

// findTag returns the first requested tag present in the text as a
// whole word, matched case-insensitively.
func findTag(text string, tags map[string]struct{}) string {
	upper := strings.ToUpper(text)
	for t := range tags {
		re, ok := tagPatterns[t]
		if !ok {
			// Custom tags outside the supported set are compiled on
			// demand.
			re = regexp.MustCompile(`\b` + regexp.QuoteMeta(t) + `\b`)
		}
		if re.MatchString(upper) {
			return t
		}
	}
	return ""
}
