// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"camlc/internal/lastquery"
	"camlc/internal/ui"
)

var lastRawFlag bool

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the most recently compiled view definition",
	Long: `Show the document produced by the most recent compile, along with
when it ran and which settings it came from.

Use --raw to print only the document, e.g. for piping:
  camlc last --raw | xmllint --format -`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lq, err := lastquery.Read(stateDir())
		if err != nil {
			if errors.Is(err, lastquery.ErrNoLastQuery) {
				return handleErrorMsg(ErrNoLastQuery,
					"nothing compiled yet",
					"Run 'camlc compile <settings-file>' first")
			}
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			outputSuccess(lq, nil)
			return nil
		}

		if lastRawFlag || IsPipedOutput() {
			fmt.Println(lq.Document)
			return nil
		}

		fmt.Printf("%s %s\n", ui.Header("Last Compile"), ui.Hint(fmt.Sprintf("(%s)", formatTimeAgo(lq.Timestamp))))
		fmt.Printf("source: %s\n\n", ui.FilePath(lq.Source))
		fmt.Println(lq.Document)
		return nil
	},
}

// formatTimeAgo formats a timestamp as a human-readable "X ago" string.
func formatTimeAgo(t time.Time) string {
	diff := time.Since(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(diff.Hours() / 24)
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

func init() {
	lastCmd.Flags().BoolVar(&lastRawFlag, "raw", false, "Print only the document")

	rootCmd.AddCommand(lastCmd)
}
