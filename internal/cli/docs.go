package cli

import (
	"bufio"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	builtindocs "camlc/docs"
	"camlc/internal/ui"
)

const docsIndexPath = "index.yaml"

var (
	docsSearchLimit   int
	docsSearchSection string

	docsDisplayContext = ui.NewDisplayContext
	docsMarkdownRender = ui.RenderMarkdown
)

type docsSectionView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TopicCount int    `json:"topic_count"`
}

type docsTopicView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

type docsSearchMatch struct {
	Section string `json:"section"`
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	Line    int    `json:"line"`
	Snippet string `json:"snippet"`
}

type docsTopicRecord struct {
	Section string
	ID      string
	Title   string
	FSPath  string
}

type docsIndexSection struct {
	Title  string                        `yaml:"title"`
	Topics map[string]docsIndexTopicMeta `yaml:"topics"`
}

type docsIndexTopicMeta struct {
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
}

var docsCmd = &cobra.Command{
	Use:   "docs [section] [topic]",
	Short: "Browse bundled documentation on the view dialect",
	Long: `Browse the long-form documentation bundled with camlc: a guide to the
settings format and a reference for operators, value types and runtime
expressions.

Examples:
  camlc docs
  camlc docs guide
  camlc docs reference operators
  camlc docs search "relative date"`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := loadDocsIndex()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild camlc so bundled docs are available")
		}

		if len(args) == 0 {
			return outputDocsSections(index)
		}

		section, ok := index[args[0]]
		if !ok {
			return handleErrorMsg(ErrDocsTopicNotFound,
				fmt.Sprintf("unknown docs section: %s", args[0]),
				"Run 'camlc docs' to list sections")
		}

		topics := sectionTopics(args[0], section)
		if len(args) == 1 {
			return outputDocsTopics(args[0], section.Title, topics)
		}

		for _, t := range topics {
			if t.ID == args[1] {
				return outputDocsTopicContent(t)
			}
		}
		return handleErrorMsg(ErrDocsTopicNotFound,
			fmt.Sprintf("unknown topic '%s' in section '%s'", args[1], args[0]),
			fmt.Sprintf("Run 'camlc docs %s' to list topics", args[0]))
	},
}

var docsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search bundled documentation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return handleErrorMsg(ErrMissingArgument, "specify a search query", "Usage: camlc docs search <query>")
		}
		if docsSearchLimit < 1 {
			return handleErrorMsg(ErrInvalidInput, "--limit must be >= 1", "")
		}

		matches, err := searchDocs(query, docsSearchSection, docsSearchLimit)
		if err != nil {
			return handleError(ErrInvalidInput, err, "Run 'camlc docs' to list sections")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"query":   query,
				"matches": matches,
			}, &Meta{Count: len(matches)})
			return nil
		}

		if len(matches) == 0 {
			fmt.Printf("No docs matched %q.\n", query)
			return nil
		}

		fmt.Printf("Matches for %q (%d):\n", query, len(matches))
		for _, m := range matches {
			fmt.Printf("- %s/%s:%d %s\n", m.Section, m.Topic, m.Line, m.Snippet)
		}
		return nil
	},
}

func loadDocsIndex() (map[string]docsIndexSection, error) {
	data, err := fs.ReadFile(builtindocs.FS, docsIndexPath)
	if err != nil {
		return nil, fmt.Errorf("bundled docs index missing: %w", err)
	}
	var index map[string]docsIndexSection
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("bundled docs index invalid: %w", err)
	}
	return index, nil
}

func sectionTopics(sectionID string, section docsIndexSection) []docsTopicRecord {
	topics := make([]docsTopicRecord, 0, len(section.Topics))
	for id, meta := range section.Topics {
		topics = append(topics, docsTopicRecord{
			Section: sectionID,
			ID:      id,
			Title:   meta.Title,
			FSPath:  path.Join(sectionID, meta.Path),
		})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics
}

func outputDocsSections(index map[string]docsIndexSection) error {
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if isJSONOutput() {
		sections := make([]docsSectionView, 0, len(ids))
		for _, id := range ids {
			sections = append(sections, docsSectionView{
				ID:         id,
				Title:      index[id].Title,
				TopicCount: len(index[id].Topics),
			})
		}
		outputSuccess(map[string]interface{}{
			"sections":       sections,
			"command_docs":   "camlc help <command>",
			"navigation_tip": "camlc docs <section> <topic>",
		}, &Meta{Count: len(sections)})
		return nil
	}

	fmt.Println("Documentation sections:")
	for _, id := range ids {
		fmt.Printf("  camlc docs %-12s %s (%d topics)\n", id, index[id].Title, len(index[id].Topics))
	}
	fmt.Println()
	fmt.Println("Use 'camlc docs <section> <topic>' to open a topic,")
	fmt.Println("or 'camlc docs search <query>' to search everything.")
	return nil
}

func outputDocsTopics(sectionID, title string, topics []docsTopicRecord) error {
	if isJSONOutput() {
		items := make([]docsTopicView, 0, len(topics))
		for _, t := range topics {
			items = append(items, docsTopicView{ID: t.ID, Title: t.Title, Path: t.FSPath})
		}
		outputSuccess(map[string]interface{}{
			"section": sectionID,
			"title":   title,
			"topics":  items,
		}, &Meta{Count: len(items)})
		return nil
	}

	fmt.Printf("Topics in %s [%s]:\n", title, sectionID)
	for _, t := range topics {
		fmt.Printf("  camlc docs %s %-20s %s\n", sectionID, t.ID, t.Title)
	}
	return nil
}

func outputDocsTopicContent(topic docsTopicRecord) error {
	content, err := fs.ReadFile(builtindocs.FS, topic.FSPath)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"section": topic.Section,
			"topic":   topic.ID,
			"title":   topic.Title,
			"content": string(content),
		}, nil)
		return nil
	}

	rendered := string(content)
	display := docsDisplayContext()
	if display.IsTTY {
		if r, renderErr := docsMarkdownRender(string(content), display.TermWidth); renderErr == nil {
			rendered = r
		}
	}

	fmt.Print(rendered)
	if !strings.HasSuffix(rendered, "\n") {
		fmt.Println()
	}
	return nil
}

// searchDocs scans indexed topics line by line for a case-insensitive
// substring match, capped at limit matches.
func searchDocs(query, sectionFilter string, limit int) ([]docsSearchMatch, error) {
	index, err := loadDocsIndex()
	if err != nil {
		return nil, err
	}
	if sectionFilter != "" {
		section, ok := index[sectionFilter]
		if !ok {
			return nil, fmt.Errorf("unknown docs section: %s", sectionFilter)
		}
		index = map[string]docsIndexSection{sectionFilter: section}
	}

	needle := strings.ToLower(query)
	var matches []docsSearchMatch

	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, topic := range sectionTopics(id, index[id]) {
			content, err := fs.ReadFile(builtindocs.FS, topic.FSPath)
			if err != nil {
				continue
			}
			scanner := bufio.NewScanner(strings.NewReader(string(content)))
			line := 0
			for scanner.Scan() {
				line++
				text := scanner.Text()
				if strings.Contains(strings.ToLower(text), needle) {
					matches = append(matches, docsSearchMatch{
						Section: topic.Section,
						Topic:   topic.ID,
						Title:   topic.Title,
						Line:    line,
						Snippet: strings.TrimSpace(text),
					})
					if len(matches) >= limit {
						return matches, nil
					}
					break
				}
			}
		}
	}
	return matches, nil
}

func init() {
	docsSearchCmd.Flags().IntVar(&docsSearchLimit, "limit", 20, "Maximum number of matches")
	docsSearchCmd.Flags().StringVar(&docsSearchSection, "section", "", "Restrict search to one section")

	docsCmd.AddCommand(docsSearchCmd)
	rootCmd.AddCommand(docsCmd)
}
