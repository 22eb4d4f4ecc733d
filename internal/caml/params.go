package caml

import (
	"net/url"
	"regexp"
	"strings"
)

// ParamLookup resolves a page query-string parameter by name. A miss
// reports ok=false and substitutes as an empty fragment.
type ParamLookup func(name string) (value string, ok bool)

// pageParamPattern matches a runtime parameter marker naming a query-string
// parameter, e.g. "[PageQueryString:id]".
var pageParamPattern = regexp.MustCompile(`\[PageQueryString:\s*([^\]\s]+)\s*\]`)

// substituteParams replaces every parameter marker in text with the looked
// up value, or with nothing when the parameter is absent or no lookup is
// configured.
func (c *Compiler) substituteParams(text string) string {
	if text == "" || !strings.Contains(text, "[PageQueryString:") {
		return text
	}

	return pageParamPattern.ReplaceAllStringFunc(text, func(marker string) string {
		name := pageParamPattern.FindStringSubmatch(marker)[1]
		if c.params == nil {
			return ""
		}
		value, ok := c.params(name)
		if !ok {
			return ""
		}
		return value
	})
}

// PageParams builds a ParamLookup over the query string of pageURL. Values
// come back percent-decoded with "+" read as space. An empty or
// unparseable URL yields a lookup that always misses.
func PageParams(pageURL string) ParamLookup {
	miss := func(string) (string, bool) { return "", false }
	if pageURL == "" {
		return miss
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return miss
	}
	values := u.Query()

	return func(name string) (string, bool) {
		if vs, ok := values[name]; ok && len(vs) > 0 {
			return vs[0], true
		}
		return "", false
	}
}
