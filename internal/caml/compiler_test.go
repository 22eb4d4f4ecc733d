package caml

import (
	"testing"
	"time"

	"camlc/internal/settings"
)

var testNow = time.Date(2024, time.March, 10, 8, 15, 30, 0, time.UTC)

func testCompiler() *Compiler {
	return New(testNow, nil)
}

func TestCompileEmptySettings(t *testing.T) {
	got := testCompiler().Compile(&settings.QuerySettings{})
	want := "<View><Query></Query></View>"
	if got != want {
		t.Fatalf("Compile = %q, want %q", got, want)
	}
}

func TestCompileNilSettings(t *testing.T) {
	got := testCompiler().Compile(nil)
	want := "<View><Query></Query></View>"
	if got != want {
		t.Fatalf("Compile(nil) = %q, want %q", got, want)
	}
}

func TestCompileScope(t *testing.T) {
	c := testCompiler()

	got := c.Compile(&settings.QuerySettings{Recursive: true})
	want := `<View Scope="RecursiveAll"><Query></Query></View>`
	if got != want {
		t.Fatalf("recursive Compile = %q, want %q", got, want)
	}

	got = c.Compile(&settings.QuerySettings{Recursive: false})
	want = "<View><Query></Query></View>"
	if got != want {
		t.Fatalf("non-recursive Compile = %q, want %q", got, want)
	}
}

func TestCompileOrderBy(t *testing.T) {
	c := testCompiler()

	got := c.Compile(&settings.QuerySettings{OrderBy: "Modified"})
	want := `<View><Query><OrderBy><FieldRef Name="Modified" Ascending="TRUE"/></OrderBy></Query></View>`
	if got != want {
		t.Fatalf("ascending Compile = %q, want %q", got, want)
	}

	got = c.Compile(&settings.QuerySettings{OrderBy: "Modified", OrderByDesc: true})
	want = `<View><Query><OrderBy><FieldRef Name="Modified" Ascending="FALSE"/></OrderBy></Query></View>`
	if got != want {
		t.Fatalf("descending Compile = %q, want %q", got, want)
	}
}

func TestCompileRowLimit(t *testing.T) {
	got := testCompiler().Compile(&settings.QuerySettings{LimitEnabled: true, ItemLimit: 50})
	want := "<View><Query></Query><RowLimit>50</RowLimit></View>"
	if got != want {
		t.Fatalf("Compile = %q, want %q", got, want)
	}

	// Disabled limit omits the section even when a count is set.
	got = testCompiler().Compile(&settings.QuerySettings{ItemLimit: 50})
	want = "<View><Query></Query></View>"
	if got != want {
		t.Fatalf("Compile = %q, want %q", got, want)
	}
}

func TestCompileViewFields(t *testing.T) {
	got := testCompiler().Compile(&settings.QuerySettings{
		ViewFields: []string{"Title", "Modified", "Editor"},
	})
	want := `<View><Query></Query><ViewFields><FieldRef Name="Title"/><FieldRef Name="Modified"/><FieldRef Name="Editor"/></ViewFields></View>`
	if got != want {
		t.Fatalf("Compile = %q, want %q", got, want)
	}
}

func TestCompileSortsFiltersByIndex(t *testing.T) {
	// Authored out of order; index order decides the fold.
	got := testCompiler().Compile(&settings.QuerySettings{
		Filters: []settings.FilterCondition{
			{
				Index: 2, Field: "Status", FieldType: settings.FieldTypeChoice,
				Operator: settings.OperatorEq, Value: "Open", Join: settings.JoinAnd,
			},
			{
				Index: 1, Field: "Title", FieldType: settings.FieldTypeText,
				Operator: settings.OperatorEq, Value: "Report", Join: settings.JoinAnd,
			},
		},
	})
	want := `<View><Query><Where><And>` +
		`<Eq><FieldRef Name="Title"/><Value Type="Text">Report</Value></Eq>` +
		`<Eq><FieldRef Name="Status"/><Value Type="Choice">Open</Value></Eq>` +
		`</And></Where></Query></View>`
	if got != want {
		t.Fatalf("Compile = %q, want %q", got, want)
	}
}

func TestCompileFullDocument(t *testing.T) {
	got := testCompiler().Compile(&settings.QuerySettings{
		Filters: []settings.FilterCondition{
			{
				Index: 1, Field: "Title", FieldType: settings.FieldTypeText,
				Operator: settings.OperatorBeginsWith, Value: "Q1", Join: settings.JoinAnd,
			},
		},
		OrderBy:      "Modified",
		OrderByDesc:  true,
		LimitEnabled: true,
		ItemLimit:    10,
		ViewFields:   []string{"Title", "Modified"},
		Recursive:    true,
	})
	want := `<View Scope="RecursiveAll"><Query>` +
		`<Where><BeginsWith><FieldRef Name="Title"/><Value Type="Text">Q1</Value></BeginsWith></Where>` +
		`<OrderBy><FieldRef Name="Modified" Ascending="FALSE"/></OrderBy>` +
		`</Query><RowLimit>10</RowLimit>` +
		`<ViewFields><FieldRef Name="Title"/><FieldRef Name="Modified"/></ViewFields></View>`
	if got != want {
		t.Fatalf("Compile = %q, want %q", got, want)
	}
}
