// Package slugs provides canonical slugification for saved-query names.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// QueryName converts a user-supplied saved-query name to its canonical
// slug form used as the library key.
func QueryName(name string) string {
	slugged := goslug.Make(name)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	}
	return slugged
}
