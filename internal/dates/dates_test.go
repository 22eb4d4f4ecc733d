package dates

import (
	"testing"
	"time"
)

func TestCanonical(t *testing.T) {
	got := Canonical(time.Date(2024, 1, 15, 9, 30, 5, 0, time.UTC))
	if got != "2024-01-15T09:30:05Z" {
		t.Fatalf("Canonical = %q", got)
	}
}

func TestCanonicalNoZoneConversion(t *testing.T) {
	// The trailing Z is a literal; the time renders in its own location.
	loc := time.FixedZone("plus5", 5*3600)
	got := Canonical(time.Date(2024, 6, 1, 14, 0, 0, 0, loc))
	if got != "2024-06-01T14:00:00Z" {
		t.Fatalf("Canonical = %q", got)
	}
}

func TestReformat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "canonical round trip",
			input: "2024-01-15T00:00:00Z",
			want:  "2024-01-15T00:00:00Z",
			ok:    true,
		},
		{
			name:  "seconds without zone",
			input: "2024-01-15T10:30:45",
			want:  "2024-01-15T10:30:45Z",
			ok:    true,
		},
		{
			name:  "minutes only",
			input: "2024-01-15T10:30",
			want:  "2024-01-15T10:30:00Z",
			ok:    true,
		},
		{
			name:  "bare date",
			input: "2024-01-15",
			want:  "2024-01-15T00:00:00Z",
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			input: " 2024-01-15 ",
			want:  "2024-01-15T00:00:00Z",
			ok:    true,
		},
		{
			name:  "unparseable passes through",
			input: "not-a-date",
			want:  "not-a-date",
			ok:    false,
		},
		{
			name:  "empty passes through",
			input: "",
			want:  "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Reformat(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("Reformat(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
