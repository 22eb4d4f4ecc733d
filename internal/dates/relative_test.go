package dates

import (
	"testing"
	"time"
)

func TestResolveExpression(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 15, 30, 0, time.UTC)

	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "bracketed offset plus",
			expr: "[Today]+5",
			want: "2024-03-15T08:15:30Z",
		},
		{
			name: "bracketed offset minus",
			expr: "[Today]-10",
			want: "2024-02-29T08:15:30Z",
		},
		{
			name: "bare marker",
			expr: "[Today]",
			want: "2024-03-10T08:15:30Z",
		},
		{
			name: "unbracketed marker",
			expr: "Today",
			want: "2024-03-10T08:15:30Z",
		},
		{
			name: "whitespace around sign",
			expr: "[Today] + 3",
			want: "2024-03-13T08:15:30Z",
		},
		{
			name: "bracketed day count",
			expr: "Today+[7]",
			want: "2024-03-17T08:15:30Z",
		},
		{
			name: "offset and remaining marker",
			expr: "[Today]+1 to [Today]",
			want: "2024-03-11T08:15:30Z to 2024-03-10T08:15:30Z",
		},
		{
			name: "only first offset resolved",
			expr: "[Today]+1 [Today]+2",
			// The second marker loses its offset form once the first match
			// is consumed; the literal pass still replaces it.
			want: "2024-03-11T08:15:30Z 2024-03-10T08:15:30Z+2",
		},
		{
			name: "no marker passes through",
			expr: "2024-01-01",
			want: "2024-01-01",
		},
		{
			name: "empty",
			expr: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveExpression(tt.expr, now); got != tt.want {
				t.Fatalf("ResolveExpression(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestHasTodayMarker(t *testing.T) {
	if !HasTodayMarker("[Today]+5") {
		t.Fatalf("expected marker to be detected")
	}
	if HasTodayMarker("2024-01-01") {
		t.Fatalf("expected no marker")
	}
}
