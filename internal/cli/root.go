// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"camlc/internal/config"
	"camlc/internal/ui"
)

var (
	// Global flags
	configPath  string
	pageURLFlag string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "camlc",
	Short: "camlc - compile query settings into CAML view definitions",
	Long: `camlc compiles structured query settings (filters, ordering, paging,
view fields, folder scope) into the CAML view XML consumed by list-query
engines.

Settings are plain YAML files; compiled documents go to stdout so they can
be piped into deployment tooling.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch config
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			if isJSONOutput() {
				// handleError would return nil here and let the command
				// run without config; emit the envelope and stop instead.
				outputErrorFromErr(ErrConfigInvalid, err, "Fix the config file and try again")
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
				return err
			}
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&pageURLFlag, "page-url", "", "Page URL whose query string resolves runtime parameters")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// getConfigPath returns the resolved global config path.
func getConfigPath() string {
	return resolvedConfigPath
}

// effectivePageURL returns the page URL for parameter substitution:
// the --page-url flag wins over the configured default.
func effectivePageURL() string {
	if pageURLFlag != "" {
		return pageURLFlag
	}
	return getConfig().PageURL
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	var loadedCfg *config.Config
	var err error
	resolvedPath := config.DefaultPath()
	if strings.TrimSpace(configPath) != "" {
		resolvedPath = configPath
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}
	return loadedCfg, resolvedPath, nil
}
