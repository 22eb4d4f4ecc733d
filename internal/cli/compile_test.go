package cli

import (
	"os"
	"path/filepath"
	"testing"

	"camlc/internal/settings"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing settings file: %v", err)
	}
	return path
}

func TestResolveSettingsInputFromFile(t *testing.T) {
	t.Cleanup(func() {
		compileSavedFlag = ""
		jsonOutput = false
	})
	compileSavedFlag = ""
	jsonOutput = false

	path := writeSettingsFile(t, `
filters:
  - index: 1
    field: Status
    type: choice
    operator: eq
    value: Active
order_by: Modified
`)

	s, source, err := resolveSettingsInput([]string{path})
	if err != nil {
		t.Fatalf("resolveSettingsInput() error = %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if len(s.Filters) != 1 || s.Filters[0].Field != "Status" {
		t.Errorf("unexpected settings: %+v", s)
	}
	if s.OrderBy != "Modified" {
		t.Errorf("OrderBy = %q, want Modified", s.OrderBy)
	}
}

func TestResolveSettingsInputMissingFile(t *testing.T) {
	t.Cleanup(func() {
		compileSavedFlag = ""
		jsonOutput = false
	})
	compileSavedFlag = ""
	jsonOutput = false

	_, _, err := resolveSettingsInput([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("expected error for missing settings file")
	}
}

func TestResolveSettingsInputRejectsTerminalStdin(t *testing.T) {
	prev := stdinIsTerminal
	t.Cleanup(func() {
		stdinIsTerminal = prev
		jsonOutput = false
	})
	stdinIsTerminal = func() bool { return true }
	jsonOutput = false

	_, _, err := resolveSettingsInput(nil)
	if err == nil {
		t.Fatal("expected error when stdin is a terminal and no file given")
	}
}

func TestProblemWarnings(t *testing.T) {
	if got := problemWarnings(nil); got != nil {
		t.Errorf("expected nil warnings for no problems, got %v", got)
	}

	warnings := problemWarnings([]settings.Problem{
		{FilterIndex: 2, Message: "empty field name"},
	})
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Code != WarnSettingsProblem {
		t.Errorf("Code = %q, want %q", warnings[0].Code, WarnSettingsProblem)
	}
	if warnings[0].FilterIndex != 2 {
		t.Errorf("FilterIndex = %d, want 2", warnings[0].FilterIndex)
	}
}

func TestDescribeFilterCount(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0 filters"},
		{1, "1 filter"},
		{3, "3 filters"},
	}
	for _, tc := range cases {
		if got := describeFilterCount(tc.n); got != tc.want {
			t.Errorf("describeFilterCount(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
