package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"camlc/internal/settings"
	"camlc/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <settings-file>",
	Short: "Validate a settings file without compiling it",
	Long: `Check a YAML settings file for problems the compiler would tolerate
silently: duplicate filter indexes, operators that don't fit the field type,
row limits without a count, and the like.

The compiler never fails on these; check surfaces them before deployment.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(args[0])
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return handleErrorMsg(ErrSettingsNotFound,
					fmt.Sprintf("settings file not found: %s", args[0]), "")
			}
			return handleError(ErrSettingsInvalid, err, "")
		}

		problems := s.Validate()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":     args[0],
				"ok":       len(problems) == 0,
				"problems": problems,
			}, &Meta{Count: len(problems)})
			return nil
		}

		if len(problems) == 0 {
			fmt.Println(ui.Successf("%s: no problems found", ui.FilePath(args[0])))
			return nil
		}

		fmt.Printf("%s\n", ui.Header(args[0]))
		for _, p := range problems {
			fmt.Println(ui.Warningf("%s", p.String()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
