package settings

import "fmt"

// Problem is an advisory validation finding. Problems never block
// compilation; the compiler degrades gracefully instead.
type Problem struct {
	FilterIndex int    `json:"filter_index,omitempty"`
	Message     string `json:"message"`
}

func (p Problem) String() string {
	if p.FilterIndex != 0 {
		return fmt.Sprintf("filter %d: %s", p.FilterIndex, p.Message)
	}
	return p.Message
}

// Validate checks a settings document for conditions that are legal input
// but almost certainly not what the author meant.
func (s *QuerySettings) Validate() []Problem {
	var problems []Problem

	if s.LimitEnabled && s.ItemLimit <= 0 {
		problems = append(problems, Problem{
			Message: fmt.Sprintf("limit is enabled but item_limit is %d", s.ItemLimit),
		})
	}

	seen := make(map[int]bool, len(s.Filters))
	for _, f := range s.Filters {
		if seen[f.Index] {
			problems = append(problems, Problem{
				FilterIndex: f.Index,
				Message:     "duplicate filter index; compile order is undefined between duplicates",
			})
		}
		seen[f.Index] = true

		if f.Field == "" {
			problems = append(problems, Problem{
				FilterIndex: f.Index,
				Message:     "empty field name",
			})
		}

		problems = append(problems, checkOperator(f)...)
	}

	return problems
}

// checkOperator flags operator/field-type pairings the engine rejects or
// silently misreads.
func checkOperator(f FilterCondition) []Problem {
	var problems []Problem

	switch f.FieldType {
	case FieldTypeTaxonomy:
		if !f.Operator.Unary() && f.Operator != OperatorContainsAny && f.Operator != OperatorContainsAll {
			problems = append(problems, Problem{
				FilterIndex: f.Index,
				Message:     fmt.Sprintf("operator %q on a taxonomy field compiles as a set-membership test", f.Operator),
			})
		}
		if f.Operator == OperatorContainsAll && len(f.Terms) == 0 {
			problems = append(problems, Problem{
				FilterIndex: f.Index,
				Message:     "containsall with no terms contributes nothing to the query",
			})
		}
	case FieldTypeUser:
		if f.Me && len(f.Persons) > 0 {
			problems = append(problems, Problem{
				FilterIndex: f.Index,
				Message:     "me is set; the persons list is ignored",
			})
		}
	default:
		if f.Operator == OperatorContainsAny || f.Operator == OperatorContainsAll {
			problems = append(problems, Problem{
				FilterIndex: f.Index,
				Message:     fmt.Sprintf("operator %q is only meaningful for taxonomy and user fields", f.Operator),
			})
		}
		if f.Expression != "" && f.FieldType != FieldTypeDatetime {
			problems = append(problems, Problem{
				FilterIndex: f.Index,
				Message:     "date expression is ignored on non-datetime fields",
			})
		}
	}

	return problems
}
