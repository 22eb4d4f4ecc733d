// Package lastquery persists the most recent compilation so it can be
// reprinted without re-reading the source settings.
package lastquery

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"camlc/internal/atomicfile"
)

// ErrNoLastQuery indicates no compilation has been recorded yet.
var ErrNoLastQuery = errors.New("no last compilation available")

// LastQuery records the outcome of the most recent compile.
type LastQuery struct {
	// Source is the settings file path or saved-query name that was compiled.
	Source string `json:"source"`

	// Timestamp is when the compilation ran.
	Timestamp time.Time `json:"timestamp"`

	// Document is the compiled view definition.
	Document string `json:"document"`
}

// Path returns the state file location under stateDir.
func Path(stateDir string) string {
	return filepath.Join(stateDir, "last-query.json")
}

// Write records lq under stateDir.
func Write(stateDir string, lq *LastQuery) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(lq, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal last compilation: %w", err)
	}

	if err := atomicfile.WriteFile(Path(stateDir), data, 0644); err != nil {
		return fmt.Errorf("failed to write last compilation: %w", err)
	}
	return nil
}

// Read loads the recorded compilation from stateDir.
// Returns ErrNoLastQuery when none has been recorded.
func Read(stateDir string) (*LastQuery, error) {
	data, err := os.ReadFile(Path(stateDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoLastQuery
		}
		return nil, fmt.Errorf("failed to read last compilation: %w", err)
	}

	var lq LastQuery
	if err := json.Unmarshal(data, &lq); err != nil {
		return nil, fmt.Errorf("failed to parse last compilation: %w", err)
	}
	return &lq, nil
}
