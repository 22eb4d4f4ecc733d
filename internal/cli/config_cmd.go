package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"camlc/internal/config"
	"camlc/internal/ui"
)

var (
	configSetPageURL     string
	configSetLibrary     string
	configSetUIAccent    string
	configSetUICodeTheme string

	configUnsetPageURL     bool
	configUnsetLibrary     bool
	configUnsetUIAccent    bool
	configUnsetUICodeTheme bool
)

func configData(cfg *config.Config, path string, exists bool) map[string]interface{} {
	return map[string]interface{}{
		"config_path": path,
		"exists":      exists,
		"page_url":    strings.TrimSpace(cfg.PageURL),
		"library":     cfg.LibraryPath(),
		"ui": map[string]interface{}{
			"accent":     strings.TrimSpace(cfg.UI.Accent),
			"code_theme": strings.TrimSpace(cfg.UI.CodeTheme),
		},
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change global configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := getConfigPath()
		exists := true
		if _, err := os.Stat(path); os.IsNotExist(err) {
			exists = false
		}

		if isJSONOutput() {
			outputSuccess(configData(getConfig(), path, exists), nil)
			return nil
		}

		fmt.Printf("config: %s\n", ui.FilePath(path))
		if !exists {
			fmt.Println(ui.Hint("(not created yet; 'camlc config set' writes it)"))
		}
		if v := strings.TrimSpace(getConfig().PageURL); v != "" {
			fmt.Printf("page_url: %s\n", v)
		}
		fmt.Printf("library: %s\n", ui.FilePath(getConfig().LibraryPath()))
		if v := strings.TrimSpace(getConfig().UI.Accent); v != "" {
			fmt.Printf("ui.accent: %s\n", v)
		}
		if v := strings.TrimSpace(getConfig().UI.CodeTheme); v != "" {
			fmt.Printf("ui.code_theme: %s\n", v)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long: `Set or clear global configuration values.

Examples:
  camlc config set --page-url "https://example.org/view?customer=42"
  camlc config set --library /path/to/library.db
  camlc config set --ui-accent "#7C3AED" --ui-code-theme dracula
  camlc config set --unset-page-url`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		updated := getConfig()
		changed := false

		apply := func(set string, unset bool, target *string) {
			if unset {
				*target = ""
				changed = true
			} else if set != "" {
				*target = set
				changed = true
			}
		}

		apply(configSetPageURL, configUnsetPageURL, &updated.PageURL)
		apply(configSetLibrary, configUnsetLibrary, &updated.Library)
		apply(configSetUIAccent, configUnsetUIAccent, &updated.UI.Accent)
		apply(configSetUICodeTheme, configUnsetUICodeTheme, &updated.UI.CodeTheme)

		if !changed {
			return handleErrorMsg(ErrMissingArgument,
				"nothing to change",
				"Pass at least one --<key> or --unset-<key> flag")
		}

		if err := config.SaveTo(getConfigPath(), updated); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(configData(updated, getConfigPath(), true), nil)
			return nil
		}
		fmt.Println(ui.Successf("wrote %s", ui.FilePath(getConfigPath())))
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&configSetPageURL, "page-url", "", "Default page URL for runtime parameters")
	configSetCmd.Flags().StringVar(&configSetLibrary, "library", "", "Saved-query database path")
	configSetCmd.Flags().StringVar(&configSetUIAccent, "ui-accent", "", "Accent color (ANSI code or hex)")
	configSetCmd.Flags().StringVar(&configSetUICodeTheme, "ui-code-theme", "", "Chroma theme for rendered code blocks")
	configSetCmd.Flags().BoolVar(&configUnsetPageURL, "unset-page-url", false, "Clear the default page URL")
	configSetCmd.Flags().BoolVar(&configUnsetLibrary, "unset-library", false, "Clear the library path override")
	configSetCmd.Flags().BoolVar(&configUnsetUIAccent, "unset-ui-accent", false, "Clear the accent color")
	configSetCmd.Flags().BoolVar(&configUnsetUICodeTheme, "unset-ui-code-theme", false, "Clear the code theme")

	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
