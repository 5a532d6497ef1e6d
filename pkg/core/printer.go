package core

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

var (
	fileStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	tagStyles = map[string]lipgloss.Style{
		"TODO":      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),  // yellow
		"FIXME":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),  // red
		"NOTE":      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),  // cyan
		"HACK":      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),  // magenta
		"BUG":       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // bright red
		"OPTIMIZE":  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),  // green
		"DEPRECATE": lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // grey
	}
)

// PrettyPrint writes the results grouped per file with line-sorted
// comments, colorized per tag when color is enabled.
func PrettyPrint(w io.Writer, results map[string][]Comment, color bool) {
	files := make([]string, 0, len(results))
	for f := range results {
		files = append(files, f)
	}
	sort.Strings(files)

	for _, file := range files {
		list := results[file]
		if color {
			fmt.Fprintf(w, "%s\n", fileStyle.Render("File: "+file))
		} else {
			fmt.Fprintf(w, "File: %s\n", file)
		}
		if len(list) == 0 {
			fmt.Fprintln(w, "    No tagged comments found")
			continue
		}
		sort.Slice(list, func(i, j int) bool { return list[i].LineNumber < list[j].LineNumber })
		for _, c := range list {
			line := fmt.Sprintf("%-5d", c.LineNumber)
			if color {
				style, ok := tagStyles[c.Tag]
				if !ok {
					style = lipgloss.NewStyle()
				}
				fmt.Fprintf(w, "    %s %s\n", line, style.Render(c.Content))
			} else {
				fmt.Fprintf(w, "    %s %s\n", line, c.Content)
			}
		}
		fmt.Fprintln(w)
	}
}
