// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"camlc/internal/library"
	"camlc/internal/settings"
	"camlc/internal/ui"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the saved-query library",
	Long: `The library stores named query settings in a local database so they
can be recompiled without keeping the YAML files around.

Names are slugified: "Weekly Report" and "weekly-report" refer to the
same entry.`,
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <name> <settings-file>",
	Short: "Save a settings file under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(args[1])
		if err != nil {
			return handleError(ErrSettingsInvalid, err, "")
		}

		lib, err := openLibrary()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer lib.Close()

		name, err := lib.Save(args[0], s)
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"name": name}, nil)
			return nil
		}
		fmt.Println(ui.Successf("saved %s", ui.QueryName(name)))
		return nil
	},
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the settings of a saved query as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer lib.Close()

		s, err := lib.Get(args[0])
		if err != nil {
			if errors.Is(err, library.ErrQueryNotFound) {
				return handleErrorMsg(ErrQueryNotFound,
					fmt.Sprintf("no saved query named '%s'", args[0]),
					"Run 'camlc library list' to see saved queries")
			}
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"name":     args[0],
				"settings": s,
			}, nil)
			return nil
		}

		data, err := settings.Marshal(s)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		os.Stdout.Write(data)
		return nil
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved queries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer lib.Close()

		entries, err := lib.List()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"queries": entries}, &Meta{Count: len(entries)})
			return nil
		}

		if len(entries) == 0 {
			fmt.Println(ui.Hint("library is empty"))
			return nil
		}

		if ShouldUsePipeFormat() {
			items := make([]PipeableItem, len(entries))
			for i, e := range entries {
				items[i] = PipeableItem{
					Num:      i + 1,
					ID:       e.Name,
					Content:  describeFilterCount(e.Filters),
					Location: e.UpdatedAt.Format("2006-01-02"),
				}
			}
			WritePipeableList(os.Stdout, items)
			return nil
		}

		fmt.Printf("%s\n", ui.Header("Saved Queries"))
		for _, e := range entries {
			fmt.Printf("  %-24s  %s  %s\n",
				ui.QueryName(e.Name),
				ui.Hint(e.UpdatedAt.Format("2006-01-02")),
				describeFilterCount(e.Filters))
		}
		return nil
	},
}

var libraryRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer lib.Close()

		if err := lib.Delete(args[0]); err != nil {
			if errors.Is(err, library.ErrQueryNotFound) {
				return handleErrorMsg(ErrQueryNotFound,
					fmt.Sprintf("no saved query named '%s'", args[0]), "")
			}
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"deleted": args[0]}, nil)
			return nil
		}
		fmt.Println(ui.Successf("deleted %s", ui.QueryName(args[0])))
		return nil
	},
}

// describeFilterCount gives the short summary shown in listings.
func describeFilterCount(n int) string {
	if n == 1 {
		return "1 filter"
	}
	return fmt.Sprintf("%d filters", n)
}

func init() {
	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryRmCmd)

	rootCmd.AddCommand(libraryCmd)
}
