// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"camlc/internal/caml"
	"camlc/internal/dates"
	"camlc/internal/lastquery"
	"camlc/internal/library"
	"camlc/internal/settings"
	"camlc/internal/ui"
)

var (
	compileAtFlag    string
	compileSavedFlag string
	compileSaveFlag  string
)

var compileCmd = &cobra.Command{
	Use:   "compile [settings-file]",
	Short: "Compile query settings into a CAML view definition",
	Long: `Compile a YAML settings file into the CAML view XML.

The settings file describes filters, ordering, row limits, view fields and
folder scope. Pass "-" (or no argument when piping) to read settings from
stdin, or --saved to compile a query stored in the library.

Examples:
  camlc compile query.yaml
  cat query.yaml | camlc compile
  camlc compile query.yaml --page-url "https://example.org/page?id=42"
  camlc compile --saved weekly-report
  camlc compile query.yaml --at 2024-03-10T08:15:30 --save weekly-report`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, source, err := resolveSettingsInput(args)
		if err != nil || s == nil {
			// In JSON mode the error envelope is already written and err is nil.
			return err
		}

		now := time.Now()
		if compileAtFlag != "" {
			at, err := dates.Parse(compileAtFlag)
			if err != nil {
				return handleErrorMsg(ErrInvalidInput,
					fmt.Sprintf("cannot parse --at time: %s", compileAtFlag),
					"Use an ISO timestamp like 2024-03-10T08:15:30 or a date like 2024-03-10")
			}
			now = at
		}

		doc := caml.NewForPage(now, effectivePageURL()).Compile(s)
		warnings := problemWarnings(s.Validate())

		if compileSaveFlag != "" {
			if err := saveToLibrary(compileSaveFlag, s); err != nil {
				return err
			}
		}

		recordLastQuery(source, now, doc)

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"source":   source,
				"document": doc,
			}, warnings, nil)
			return nil
		}

		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, ui.Warningf("%s", w.Message))
		}
		fmt.Println(doc)
		if !IsPipedOutput() && compileSaveFlag != "" {
			fmt.Fprintln(os.Stderr, ui.Successf("saved as %s", ui.QueryName(compileSaveFlag)))
		}
		return nil
	},
}

// resolveSettingsInput loads settings from the file argument, stdin, or the
// saved-query library, returning a short source label for the record.
func resolveSettingsInput(args []string) (*settings.QuerySettings, string, error) {
	if compileSavedFlag != "" {
		lib, err := openLibrary()
		if err != nil {
			return nil, "", handleError(ErrDatabaseError, err, "")
		}
		defer lib.Close()

		s, err := lib.Get(compileSavedFlag)
		if err != nil {
			if errors.Is(err, library.ErrQueryNotFound) {
				return nil, "", handleErrorMsg(ErrQueryNotFound,
					fmt.Sprintf("no saved query named '%s'", compileSavedFlag),
					"Run 'camlc library list' to see saved queries")
			}
			return nil, "", handleError(ErrDatabaseError, err, "")
		}
		return s, compileSavedFlag, nil
	}

	path := "-"
	if len(args) > 0 {
		path = args[0]
	} else if stdinIsTerminal() {
		return nil, "", handleErrorMsg(ErrMissingArgument,
			"no settings file given and stdin is a terminal",
			"Pass a settings file, pipe YAML on stdin, or use --saved <name>")
	}

	if path == "-" {
		data, err := readAllStdin()
		if err != nil {
			return nil, "", handleError(ErrFileReadError, err, "")
		}
		s, err := settings.Parse(data)
		if err != nil {
			return nil, "", handleError(ErrSettingsInvalid, err, "")
		}
		return s, "stdin", nil
	}

	s, err := settings.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", handleErrorMsg(ErrSettingsNotFound,
				fmt.Sprintf("settings file not found: %s", path), "")
		}
		return nil, "", handleError(ErrSettingsInvalid, err, "")
	}
	return s, path, nil
}

// problemWarnings converts advisory settings problems into response warnings.
func problemWarnings(problems []settings.Problem) []Warning {
	if len(problems) == 0 {
		return nil
	}
	warnings := make([]Warning, len(problems))
	for i, p := range problems {
		warnings[i] = Warning{
			Code:        WarnSettingsProblem,
			Message:     p.Message,
			FilterIndex: p.FilterIndex,
		}
	}
	return warnings
}

// recordLastQuery persists the compile outcome for 'camlc last'.
// Failures are non-fatal: the document already went to stdout.
func recordLastQuery(source string, at time.Time, doc string) {
	if err := lastquery.Write(stateDir(), &lastquery.LastQuery{
		Source:    source,
		Timestamp: at,
		Document:  doc,
	}); err != nil && !isJSONOutput() {
		fmt.Fprintln(os.Stderr, ui.Warningf("could not record last query: %v", err))
	}
}

func saveToLibrary(name string, s *settings.QuerySettings) error {
	lib, err := openLibrary()
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}
	defer lib.Close()

	if _, err := lib.Save(name, s); err != nil {
		return handleError(ErrDatabaseError, err, "")
	}
	return nil
}

func init() {
	compileCmd.Flags().StringVar(&compileAtFlag, "at", "", "Freeze the clock for [Today] expressions (ISO timestamp)")
	compileCmd.Flags().StringVar(&compileSavedFlag, "saved", "", "Compile a saved query from the library")
	compileCmd.Flags().StringVar(&compileSaveFlag, "save", "", "Save the settings to the library under this name")

	rootCmd.AddCommand(compileCmd)
}
