// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todolist/internal/service"
)

// detailIndent lines up description and deadline under the task name.
const detailIndent = "      "

// FormatTask formats a task for the list command.
// Format: "{ID:>4}  {NAME}\n" followed by the description and
// "due {DEADLINE}" on indented lines when present.
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%4d  %s\n", task.ID, normalizeName(task.Name))
	if desc := normalizeLine(task.Task); desc != "" {
		fmt.Fprintf(w, "%s%s\n", detailIndent, desc)
	}
	if deadline := normalizeLine(task.Deadline); deadline != "" {
		fmt.Fprintf(w, "%sdue %s\n", detailIndent, deadline)
	}
}

// normalizeName normalizes a task name for display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeName(name string) string {
	name = normalizeLine(name)
	if name == "" {
		return "(untitled)"
	}
	return name
}

// normalizeLine flattens s to a single line and trims surrounding space.
func normalizeLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
