package slugs

import "testing"

func TestQueryName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Open Tasks", "open-tasks"},
		{"open-tasks", "open-tasks"},
		{"Q1 / Finance", "q1-finance"},
		{"  Überfällig  ", "ueberfaellig"},
	}

	for _, tt := range tests {
		if got := QueryName(tt.input); got != tt.want {
			t.Errorf("QueryName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
