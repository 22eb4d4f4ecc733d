// Package settings defines the query settings model that camlc compiles.
//
// A settings document describes what to fetch from a list: which filters to
// apply, how to sort, how many items to return, which fields to project and
// whether to recurse into folders. The model is authored in YAML and is
// read-only once handed to the compiler.
package settings

// FieldType identifies the list-field type a filter condition targets.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNote     FieldType = "note"
	FieldTypeNumber   FieldType = "number"
	FieldTypeCounter  FieldType = "counter"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeChoice   FieldType = "choice"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeLookup   FieldType = "lookup"
	FieldTypeTaxonomy FieldType = "taxonomy"
	FieldTypeUser     FieldType = "user"
)

// fieldTypes is the closed set of supported field types.
var fieldTypes = map[FieldType]struct{}{
	FieldTypeText:     {},
	FieldTypeNote:     {},
	FieldTypeNumber:   {},
	FieldTypeCounter:  {},
	FieldTypeBoolean:  {},
	FieldTypeChoice:   {},
	FieldTypeDatetime: {},
	FieldTypeLookup:   {},
	FieldTypeTaxonomy: {},
	FieldTypeUser:     {},
}

// Valid reports whether ft is a supported field type.
func (ft FieldType) Valid() bool {
	_, ok := fieldTypes[ft]
	return ok
}

// FilterOperator is the comparison applied by a filter condition.
type FilterOperator string

const (
	OperatorEq          FilterOperator = "eq"
	OperatorNeq         FilterOperator = "neq"
	OperatorGt          FilterOperator = "gt"
	OperatorGeq         FilterOperator = "geq"
	OperatorLt          FilterOperator = "lt"
	OperatorLeq         FilterOperator = "leq"
	OperatorContains    FilterOperator = "contains"
	OperatorBeginsWith  FilterOperator = "beginswith"
	OperatorIsNull      FilterOperator = "isnull"
	OperatorIsNotNull   FilterOperator = "isnotnull"
	OperatorContainsAny FilterOperator = "containsany"
	OperatorContainsAll FilterOperator = "containsall"
)

var filterOperators = map[FilterOperator]struct{}{
	OperatorEq:          {},
	OperatorNeq:         {},
	OperatorGt:          {},
	OperatorGeq:         {},
	OperatorLt:          {},
	OperatorLeq:         {},
	OperatorContains:    {},
	OperatorBeginsWith:  {},
	OperatorIsNull:      {},
	OperatorIsNotNull:   {},
	OperatorContainsAny: {},
	OperatorContainsAll: {},
}

// Valid reports whether op is a supported operator.
func (op FilterOperator) Valid() bool {
	_, ok := filterOperators[op]
	return ok
}

// Unary reports whether op takes no comparison value.
func (op FilterOperator) Unary() bool {
	return op == OperatorIsNull || op == OperatorIsNotNull
}

// FilterJoin is the boolean operator that combines a condition with the
// previously accumulated filter result.
type FilterJoin string

const (
	JoinAnd FilterJoin = "and"
	JoinOr  FilterJoin = "or"
)

// Valid reports whether j is a supported join operator.
func (j FilterJoin) Valid() bool {
	return j == JoinAnd || j == JoinOr
}

// TermRef is a managed-term reference carried by taxonomy filter values.
type TermRef struct {
	// Label is the display text of the term. It is not emitted into markup;
	// the engine matches on the numeric key.
	Label string `yaml:"label,omitempty"`

	// WssID is the numeric term key in the list's hidden taxonomy table.
	WssID int `yaml:"wssid"`
}

// PersonRef is a site-user reference carried by person filter values.
type PersonRef struct {
	// Display is the user's display name, for authoring convenience only.
	Display string `yaml:"display,omitempty"`

	// ID is the numeric site-user identifier.
	ID int `yaml:"id"`
}

// FilterCondition is a single authored filter row.
type FilterCondition struct {
	// Index defines the author-specified compile order. Unique per set.
	Index int `yaml:"index"`

	// Field is the internal (non-display) name of the target field.
	Field string `yaml:"field"`

	// FieldType selects the sub-generator used for this condition.
	FieldType FieldType `yaml:"type"`

	// Operator is the comparison to apply.
	Operator FilterOperator `yaml:"operator"`

	// Value is the scalar comparison value for plain field types.
	Value string `yaml:"value,omitempty"`

	// Terms carries the value for taxonomy fields.
	Terms []TermRef `yaml:"terms,omitempty"`

	// Persons carries the value for user fields.
	Persons []PersonRef `yaml:"persons,omitempty"`

	// Join combines this condition with the previously accumulated result.
	Join FilterJoin `yaml:"join,omitempty"`

	// IncludeTime controls the IncludeTimeValue attribute on datetime values.
	IncludeTime bool `yaml:"include_time,omitempty"`

	// Me short-circuits a user filter to the current-user sentinel.
	Me bool `yaml:"me,omitempty"`

	// Expression is an optional relative date expression (e.g. "[Today]+5")
	// evaluated at compile time for datetime fields.
	Expression string `yaml:"expression,omitempty"`
}

// QuerySettings is the immutable input to the compiler.
type QuerySettings struct {
	// Filters is the authored filter set. Order on disk is irrelevant; the
	// compiler sorts by Index.
	Filters []FilterCondition `yaml:"filters,omitempty"`

	// OrderBy is the internal name of the sort field, empty for no sort.
	OrderBy string `yaml:"order_by,omitempty"`

	// OrderByDesc sorts descending when true.
	OrderByDesc bool `yaml:"order_by_desc,omitempty"`

	// LimitEnabled turns the row limit on.
	LimitEnabled bool `yaml:"limit_enabled,omitempty"`

	// ItemLimit is the maximum number of rows when LimitEnabled.
	ItemLimit int `yaml:"item_limit,omitempty"`

	// ViewFields lists projected fields in output order.
	ViewFields []string `yaml:"view_fields,omitempty"`

	// Recursive includes items from subfolders (RecursiveAll scope).
	Recursive bool `yaml:"recursive,omitempty"`
}
