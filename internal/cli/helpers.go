package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"camlc/internal/library"
)

// stdinIsTerminal reports whether stdin is attached to a terminal.
// Overridable for tests.
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}

func readAllStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

// stateDir is where camlc keeps per-user state such as the last compiled
// query. It sits next to the resolved config file.
func stateDir() string {
	if resolvedConfigPath != "" {
		return filepath.Dir(resolvedConfigPath)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "camlc")
	}
	return "."
}

// openLibrary opens the saved-query database at the configured path.
func openLibrary() (*library.Library, error) {
	return library.Open(getConfig().LibraryPath())
}
