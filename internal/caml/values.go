package caml

import (
	"strings"

	"camlc/internal/dates"
	"camlc/internal/settings"
)

// formatValue renders a condition's comparison value as text. Total: bad
// input degrades to passthrough or empty, never to an error.
//
// Datetime fields resolve a relative date expression when one is present,
// otherwise reformat the value into the engine's canonical form, keeping
// the original text when it does not parse. All other field types go
// through page-parameter substitution.
func (c *Compiler) formatValue(f settings.FilterCondition) string {
	if f.FieldType == settings.FieldTypeDatetime {
		if strings.TrimSpace(f.Expression) != "" {
			return dates.ResolveExpression(f.Expression, c.now)
		}
		if f.Value == "" {
			return ""
		}
		out, _ := dates.Reformat(f.Value)
		return out
	}

	return c.substituteParams(f.Value)
}
