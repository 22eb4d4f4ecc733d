// Package caml compiles query settings into a CAML view document.
//
// The compiler is pure: the wall clock and the page query string, the two
// ambient inputs the dialect can reference, are injected at construction so
// every compilation is deterministic and reentrant.
package caml

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"camlc/internal/settings"
)

// Compiler turns a settings document into a CAML view definition.
// A Compiler is immutable and safe for concurrent use.
type Compiler struct {
	now    time.Time
	params ParamLookup
}

// New creates a Compiler with an explicit clock and parameter lookup.
func New(now time.Time, params ParamLookup) *Compiler {
	return &Compiler{now: now, params: params}
}

// NewForPage creates a Compiler whose parameter lookup reads the query
// string of pageURL.
func NewForPage(now time.Time, pageURL string) *Compiler {
	return New(now, PageParams(pageURL))
}

// Compile renders the full view document. It is total: absent or invalid
// settings degrade to omitted sections, never to an error.
func (c *Compiler) Compile(s *settings.QuerySettings) string {
	if s == nil {
		s = &settings.QuerySettings{}
	}

	var doc strings.Builder

	var where string
	if len(s.Filters) > 0 {
		where = "<Where>" + c.compileFilters(sortedByIndex(s.Filters)) + "</Where>"
	}

	var orderBy string
	if s.OrderBy != "" {
		ascending := "TRUE"
		if s.OrderByDesc {
			ascending = "FALSE"
		}
		orderBy = fmt.Sprintf(`<OrderBy><FieldRef Name="%s" Ascending="%s"/></OrderBy>`, s.OrderBy, ascending)
	}

	// The engine requires the Query wrapper even when it is empty.
	doc.WriteString("<Query>" + where + orderBy + "</Query>")

	if s.LimitEnabled {
		fmt.Fprintf(&doc, "<RowLimit>%d</RowLimit>", s.ItemLimit)
	}

	if len(s.ViewFields) > 0 {
		doc.WriteString("<ViewFields>")
		for _, field := range s.ViewFields {
			fmt.Fprintf(&doc, `<FieldRef Name="%s"/>`, field)
		}
		doc.WriteString("</ViewFields>")
	}

	if s.Recursive {
		return `<View Scope="RecursiveAll">` + doc.String() + `</View>`
	}
	return "<View>" + doc.String() + "</View>"
}

// sortedByIndex returns a copy of conds in ascending author order.
func sortedByIndex(conds []settings.FilterCondition) []settings.FilterCondition {
	sorted := make([]settings.FilterCondition, len(conds))
	copy(sorted, conds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})
	return sorted
}
