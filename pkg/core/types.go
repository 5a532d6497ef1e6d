package core

import (
	"regexp"
	"strings"
)

// Comment represents one tagged comment (TODO, FIXME, etc.) found in a
// source file, along with optional git blame metadata for the line.
type Comment struct {
	Tag           string `json:"tag" yaml:"tag"`
	Content       string `json:"content" yaml:"content"`
	FilePath      string `json:"file" yaml:"file"`
	LineNumber    int    `json:"line" yaml:"line"`
	CreationStamp string `json:"stamp,omitempty" yaml:"stamp,omitempty"`
	Author        string `json:"author,omitempty" yaml:"author,omitempty"`
	Commit        string `json:"commit,omitempty" yaml:"commit,omitempty"`
	// IssueURL links a comment to the tracking issue filed for it,
	// parsed from an "Issue: <url>" comment on the following line.
	IssueURL string `json:"issue,omitempty" yaml:"issue,omitempty"`
}

// SupportedTags lists the comment tags the scanner recognizes.
var SupportedTags = []string{"TODO", "FIXME", "NOTE", "HACK", "BUG", "OPTIMIZE", "DEPRECATE"}

// singleLineCommentMap maps a single-line comment delimiter to the file
// extensions (or extension-less basenames like "makefile") that use it.
var singleLineCommentMap = map[string][]string{
	"//": {
		".go", ".java", ".c", ".cpp", ".h", ".hpp", ".cs", ".swift", ".kt", ".rs", ".scala",
		".ts", ".js", ".jsx", ".tsx",
	},
	"#": {
		".py", ".rb", ".sh", ".bash", ".zsh", ".yml", ".yaml", ".toml", ".pl", ".pm", ".mk",
		"makefile", "dockerfile", ".ini",
	},
	";":  {".lisp", ".clj", ".scm", ".s", ".asm"},
	"--": {".lua", ".hs", ".sql", ".adb"},
	"'":  {".vb", ".vbs"},
	"..": {".rst"},
}

var (
	supportedTagsLookup = make(map[string]struct{})
	extensionToChar     = make(map[string]string)

	// tagPatterns holds a word-boundary matcher per supported tag,
	// compiled once.
	tagPatterns = make(map[string]*regexp.Regexp)
)

func init() {
	for _, tag := range SupportedTags {
		supportedTagsLookup[tag] = struct{}{}
		tagPatterns[tag] = regexp.MustCompile(`\b` + regexp.QuoteMeta(tag) + `\b`)
	}
	for char, exts := range singleLineCommentMap {
		for _, ext := range exts {
			extensionToChar[strings.ToLower(ext)] = char
		}
	}
}

// CommentCharFor returns the single-line comment delimiter for a file,
// resolved by extension or by basename for files like Makefile.
// The second return value is false for unsupported file types.
func CommentCharFor(path string) (string, bool) {
	char, ok := extensionToChar[normalizeExt(path)]
	return char, ok
}
