package cli

import (
	"io/fs"
	"testing"

	builtindocs "camlc/docs"
)

func TestLoadDocsIndexCoversEmbeddedTopics(t *testing.T) {
	index, err := loadDocsIndex()
	if err != nil {
		t.Fatalf("loadDocsIndex() error = %v", err)
	}

	for _, sectionID := range []string{"guide", "reference"} {
		section, ok := index[sectionID]
		if !ok {
			t.Fatalf("missing docs section %q", sectionID)
		}
		if section.Title == "" {
			t.Errorf("section %q has no title", sectionID)
		}
		if len(section.Topics) == 0 {
			t.Errorf("section %q has no topics", sectionID)
		}

		// Every indexed topic must exist in the embedded FS.
		for _, topic := range sectionTopics(sectionID, section) {
			if _, err := fs.Stat(builtindocs.FS, topic.FSPath); err != nil {
				t.Errorf("topic %s/%s: missing file %s", sectionID, topic.ID, topic.FSPath)
			}
		}
	}
}

func TestSectionTopicsSorted(t *testing.T) {
	section := docsIndexSection{
		Title: "Test",
		Topics: map[string]docsIndexTopicMeta{
			"zebra": {Title: "Z", Path: "z.md"},
			"alpha": {Title: "A", Path: "a.md"},
		},
	}

	topics := sectionTopics("test", section)
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	if topics[0].ID != "alpha" || topics[1].ID != "zebra" {
		t.Errorf("topics not sorted: %v", topics)
	}
}

func TestSearchDocsFindsExpressions(t *testing.T) {
	matches, err := searchDocs("relative date", "", 20)
	if err != nil {
		t.Fatalf("searchDocs() error = %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected at least one match for 'relative date'")
	}
	for _, m := range matches {
		if m.Section == "" || m.Topic == "" || m.Line < 1 {
			t.Errorf("incomplete match: %+v", m)
		}
	}
}

func TestSearchDocsUnknownSection(t *testing.T) {
	if _, err := searchDocs("anything", "nope", 5); err == nil {
		t.Fatal("expected error for unknown section filter")
	}
}
