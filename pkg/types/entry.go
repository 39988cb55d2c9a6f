// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Well-known export field and section names.
const (
	FieldTitle    = "TITLE"
	FieldBasename = "BASENAME"
	FieldDate     = "DATE"
	FieldStatus   = "STATUS"
	FieldTags     = "TAGS"
	FieldCategory = "CATEGORY"

	SectionBody         = "BODY"
	SectionExtendedBody = "EXTENDED BODY"
)

// Entry is one post record parsed from a Movable Type export block.
type Entry struct {
	// Fields maps uppercase scalar field names (TITLE, BASENAME, DATE, ...)
	// to their trimmed values. CATEGORY is never stored here.
	Fields map[string]string `json:"fields" yaml:"fields"`

	// Categories lists every CATEGORY line in export order, duplicates kept.
	Categories []string `json:"categories" yaml:"categories"`

	// Bodies maps uppercase section names (BODY, EXTENDED BODY, ...) to
	// their assembled multi-line text.
	Bodies map[string]string `json:"bodies" yaml:"bodies"`
}

// Field returns the named scalar field, or fallback when it is absent.
func (e Entry) Field(name, fallback string) string {
	if v, ok := e.Fields[name]; ok {
		return v
	}
	return fallback
}

// HasField reports whether the scalar field was present in the export.
func (e Entry) HasField(name string) bool {
	_, ok := e.Fields[name]
	return ok
}

// Body returns the named body section, or "" when it is absent.
func (e Entry) Body(name string) string {
	return e.Bodies[name]
}

// Frontmatter is the metadata header written at the top of each post.
// Fields are serialized in declaration order.
type Frontmatter struct {
	Title      string
	Date       string
	Draft      bool
	Tags       []string
	Categories []string
	Aliases    []string
}

// RedirectRule is one nginx rewrite directive mapping a legacy URL to the
// post's new location.
type RedirectRule struct {
	// Pattern is the regex source path without anchors, e.g.
	// "/blog/tech/2010/01/hello\.html".
	Pattern string

	// Target is the absolute destination URL.
	Target string
}

// String renders the rule as a single nginx config line.
func (r RedirectRule) String() string {
	return fmt.Sprintf("rewrite ^%s$ %s permanent;", r.Pattern, r.Target)
}

// Post is the rendered form of an Entry, ready to be written.
type Post struct {
	Year     string
	Month    string
	Basename string

	// RelPath is the file path relative to the section content root:
	// <year>/<month>/posts/<basename>.md.
	RelPath string

	Frontmatter Frontmatter

	// Document is the complete file text: frontmatter, blank line, body.
	Document string

	Redirect RedirectRule
}
