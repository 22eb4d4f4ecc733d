package caml

import (
	"fmt"
	"strings"

	"camlc/internal/settings"
)

// syntheticIndex marks compiler-created conditions. Their ordering comes
// from slice position, never from Index.
const syntheticIndex = -1

// compileFilters folds an ascending-sorted condition list into nested
// boolean-join markup.
//
// The list is walked in reverse, last condition first. Each fragment is
// prepended to the accumulated string; from the second condition processed
// onward the combined string is wrapped in a join element named by the
// current condition's Join. The result is a right-associative fold over the
// author order: with mixed joins the grouping this produces is load-bearing
// and must not be "simplified" into a flat left-to-right concatenation.
//
// A condition that emits nothing (a taxonomy filter with no terms) still
// counts toward the pairwise wrapping.
func (c *Compiler) compileFilters(conds []settings.FilterCondition) string {
	var acc string
	processed := 0

	for i := len(conds) - 1; i >= 0; i-- {
		cond := conds[i]
		acc = c.compileCondition(cond) + acc
		processed++
		if processed >= 2 {
			tag := joinTag(cond.Join)
			acc = "<" + tag + ">" + acc + "</" + tag + ">"
		}
	}

	return acc
}

// compileCondition renders a single condition, dispatching on operator
// arity first and field type second.
func (c *Compiler) compileCondition(f settings.FilterCondition) string {
	if f.Operator.Unary() {
		tag := operatorTag(f.Operator)
		return fmt.Sprintf(`<%s><FieldRef Name="%s"/></%s>`, tag, f.Field, tag)
	}

	switch f.FieldType {
	case settings.FieldTypeTaxonomy:
		return c.compileTaxonomy(f)
	case settings.FieldTypeUser:
		return c.compilePerson(f)
	default:
		return c.compileScalar(f)
	}
}

// compileScalar renders a binary comparison for plain field types.
func (c *Compiler) compileScalar(f settings.FilterCondition) string {
	tag := operatorTag(f.Operator)
	return fmt.Sprintf(`<%s><FieldRef Name="%s"/>%s</%s>`, tag, f.Field, c.valueElement(f), tag)
}

// compileTaxonomy renders a managed-term filter as a term-key membership
// test. ContainsAll is expanded into one single-term membership test per
// term and refolded through compileFilters so the terms AND together.
func (c *Compiler) compileTaxonomy(f settings.FilterCondition) string {
	if len(f.Terms) == 0 {
		return ""
	}
	if f.Operator == settings.OperatorContainsAll {
		return c.compileFilters(expandTerms(f))
	}

	ids := make([]int, len(f.Terms))
	for i, term := range f.Terms {
		ids[i] = term.WssID
	}
	return membershipElement(f.Field, ids)
}

// compilePerson renders a site-user filter. The Me shorthand compares
// against the engine's current-user sentinel and ignores the persons list;
// otherwise the behavior mirrors compileTaxonomy over person IDs.
func (c *Compiler) compilePerson(f settings.FilterCondition) string {
	if f.Me {
		return fmt.Sprintf(`<Eq><FieldRef Name="%s" LookupId="TRUE"/><Value Type="Integer"><UserID/></Value></Eq>`, f.Field)
	}
	if len(f.Persons) == 0 {
		return ""
	}
	if f.Operator == settings.OperatorContainsAll {
		return c.compileFilters(expandPersons(f))
	}

	ids := make([]int, len(f.Persons))
	for i, p := range f.Persons {
		ids[i] = p.ID
	}
	return membershipElement(f.Field, ids)
}

// expandTerms builds one synthetic single-term ContainsAny condition per
// term, joined with And.
func expandTerms(f settings.FilterCondition) []settings.FilterCondition {
	out := make([]settings.FilterCondition, 0, len(f.Terms))
	for _, term := range f.Terms {
		out = append(out, settings.FilterCondition{
			Index:     syntheticIndex,
			Field:     f.Field,
			FieldType: f.FieldType,
			Operator:  settings.OperatorContainsAny,
			Terms:     []settings.TermRef{term},
			Join:      settings.JoinAnd,
		})
	}
	return out
}

// expandPersons is expandTerms for person references.
func expandPersons(f settings.FilterCondition) []settings.FilterCondition {
	out := make([]settings.FilterCondition, 0, len(f.Persons))
	for _, p := range f.Persons {
		out = append(out, settings.FilterCondition{
			Index:     syntheticIndex,
			Field:     f.Field,
			FieldType: f.FieldType,
			Operator:  settings.OperatorContainsAny,
			Persons:   []settings.PersonRef{p},
			Join:      settings.JoinAnd,
		})
	}
	return out
}

// membershipElement renders a lookup-mode set-membership test over numeric
// identifiers.
func membershipElement(field string, ids []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<In><FieldRef Name="%s" LookupId="TRUE"/><Values>`, field)
	for _, id := range ids {
		fmt.Fprintf(&b, `<Value Type="Integer">%d</Value>`, id)
	}
	b.WriteString("</Values></In>")
	return b.String()
}

// valueElement renders the typed value element of a binary comparison.
// Lookup fields serialize with Type="Text"; datetime fields carry the
// IncludeTimeValue attribute.
func (c *Compiler) valueElement(f settings.FilterCondition) string {
	if f.FieldType == settings.FieldTypeDatetime {
		return fmt.Sprintf(`<Value Type="DateTime" IncludeTimeValue="%s">%s</Value>`,
			camlBool(f.IncludeTime), c.formatValue(f))
	}
	return fmt.Sprintf(`<Value Type="%s">%s</Value>`, valueType(f.FieldType), c.formatValue(f))
}

// valueType maps a field type to the Type attribute of its value element.
func valueType(ft settings.FieldType) string {
	switch ft {
	case settings.FieldTypeNote:
		return "Note"
	case settings.FieldTypeNumber:
		return "Number"
	case settings.FieldTypeCounter:
		return "Counter"
	case settings.FieldTypeBoolean:
		return "Boolean"
	case settings.FieldTypeChoice:
		return "Choice"
	case settings.FieldTypeDatetime:
		return "DateTime"
	case settings.FieldTypeText, settings.FieldTypeLookup:
		return "Text"
	default:
		return "Text"
	}
}

// operatorTag maps an operator to its CAML element name.
func operatorTag(op settings.FilterOperator) string {
	switch op {
	case settings.OperatorNeq:
		return "Neq"
	case settings.OperatorGt:
		return "Gt"
	case settings.OperatorGeq:
		return "Geq"
	case settings.OperatorLt:
		return "Lt"
	case settings.OperatorLeq:
		return "Leq"
	case settings.OperatorContains:
		return "Contains"
	case settings.OperatorBeginsWith:
		return "BeginsWith"
	case settings.OperatorIsNull:
		return "IsNull"
	case settings.OperatorIsNotNull:
		return "IsNotNull"
	case settings.OperatorContainsAny, settings.OperatorContainsAll:
		return "In"
	default:
		return "Eq"
	}
}

// joinTag maps a join operator to its CAML element name.
func joinTag(j settings.FilterJoin) string {
	if j == settings.JoinOr {
		return "Or"
	}
	return "And"
}

// camlBool renders a bool as the dialect's TRUE/FALSE attribute value.
func camlBool(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}
