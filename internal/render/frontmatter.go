// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"

	"github.com/pdiddy/mt2hugo/pkg/types"
)

// MarshalFrontmatter renders fm as "---" delimited key/value lines in the
// fixed order title, date, draft, tags, categories, aliases.
func MarshalFrontmatter(fm types.Frontmatter) string {
	var b strings.Builder
	b.WriteString("---\n")
	writeString(&b, "title", fm.Title)
	writeString(&b, "date", fm.Date)
	writeBool(&b, "draft", fm.Draft)
	writeList(&b, "tags", fm.Tags)
	writeList(&b, "categories", fm.Categories)
	writeList(&b, "aliases", fm.Aliases)
	b.WriteString("---\n")
	return b.String()
}

func writeString(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "%s: \"%s\"\n", key, strings.ReplaceAll(value, `"`, `\"`))
}

func writeBool(b *strings.Builder, key string, value bool) {
	fmt.Fprintf(b, "%s: %t\n", key, value)
}

// writeList quotes each item after stripping surrounding whitespace and any
// double quotes already wrapping it.
func writeList(b *strings.Builder, key string, values []string) {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + strings.Trim(strings.TrimSpace(v), `"`) + `"`
	}
	fmt.Fprintf(b, "%s: [%s]\n", key, strings.Join(quoted, ", "))
}
