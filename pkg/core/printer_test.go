package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyPrintPlain(t *testing.T) {
	var buf bytes.Buffer
	PrettyPrint(&buf, sampleResults(), false)
	out := buf.String()

	// Files come out sorted, comments line-sorted inside each file.
	aIdx := strings.Index(out, "File: a.go")
	bIdx := strings.Index(out, "File: b.go")
	assert.GreaterOrEqual(t, aIdx, 0)
	assert.Less(t, aIdx, bIdx)

	noteIdx := strings.Index(out, "NOTE context")
	fixmeIdx := strings.Index(out, "FIXME now")
	assert.Less(t, noteIdx, fixmeIdx)
}

func TestPrettyPrintEmptyFileEntry(t *testing.T) {
	var buf bytes.Buffer
	PrettyPrint(&buf, map[string][]Comment{"empty.go": {}}, false)
	assert.Contains(t, buf.String(), "No tagged comments found")
}

func TestPrettyPrintColor(t *testing.T) {
	var buf bytes.Buffer
	PrettyPrint(&buf, sampleResults(), true)

	// Styling depends on the terminal profile; the content must be
	// present either way.
	assert.Contains(t, buf.String(), "TODO later")
	assert.Contains(t, buf.String(), "File: a.go")
}
