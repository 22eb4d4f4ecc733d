// Package cli implements the command-line interface.
// This file provides pipe-friendly output helpers for commands that return lists.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// PipeableItem represents an item that can be output in pipe-friendly format.
// Commands that return lists should use this for consistent pipe/fzf integration.
type PipeableItem struct {
	Num      int    // 1-indexed result number for reference
	ID       string // The unique identifier (used by downstream commands)
	Content  string // Human-readable description
	Location string // Short context hint (e.g., last-updated date)
}

// pipeFormatOverride stores explicit --pipe/--no-pipe flag values.
// nil means use auto-detection.
var pipeFormatOverride *bool

// SetPipeFormat sets an explicit pipe format override.
// Pass nil to use auto-detection.
func SetPipeFormat(usePipe *bool) {
	pipeFormatOverride = usePipe
}

// IsPipedOutput returns true if stdout is being piped (not a TTY).
func IsPipedOutput() bool {
	return !isatty.IsTerminal(os.Stdout.Fd())
}

// ShouldUsePipeFormat returns true if output should use pipe-friendly format.
// Priority: explicit --pipe/--no-pipe flag > auto-detection based on TTY.
// JSON output mode always returns false (JSON has its own format).
func ShouldUsePipeFormat() bool {
	if isJSONOutput() {
		return false
	}
	if pipeFormatOverride != nil {
		return *pipeFormatOverride
	}
	return IsPipedOutput()
}

// WritePipeableList writes items in pipe-friendly tab-separated format.
// Format: Num<tab>ID<tab>Content<tab>Location
// This format works well with fzf and cut for downstream processing.
func WritePipeableList(w io.Writer, items []PipeableItem) {
	for _, item := range items {
		// Sanitize content - remove tabs and newlines
		content := strings.ReplaceAll(item.Content, "\t", " ")
		content = strings.ReplaceAll(content, "\n", " ")

		location := strings.ReplaceAll(item.Location, "\t", " ")

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.Num, item.ID, content, location)
	}
}
