// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns parsed export entries into Hugo posts: a frontmatter
// header, a Markdown body converted from the entry's HTML sections, and the
// nginx redirect rule for the post's legacy URL.
package render

import (
	"fmt"
	"path"
	"strings"

	"github.com/pdiddy/mt2hugo/pkg/types"
)

const (
	defaultTitle  = "No Title"
	defaultDate   = "2000-01-01 00:00:00"
	defaultStatus = "Publish"
	statusPublish = "publish"
	postsDir      = "posts"
)

// Options controls URL construction for rendered posts.
type Options struct {
	// Section is the Hugo content section the posts belong to.
	Section string

	// BaseURL is the new site's scheme and host, without trailing slash.
	BaseURL string

	// LegacyPrefix is the old blog's path prefix, e.g. "/blog".
	LegacyPrefix string
}

// Renderer renders entries for one section.
type Renderer struct {
	conv Converter
	opts Options
}

// New returns a Renderer that converts bodies with conv. Empty BaseURL and
// LegacyPrefix fall back to the package defaults.
func New(conv Converter, opts Options) *Renderer {
	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}
	if opts.LegacyPrefix == "" {
		opts.LegacyPrefix = types.DefaultLegacyPrefix
	}
	opts.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	opts.LegacyPrefix = strings.TrimSuffix(opts.LegacyPrefix, "/")
	return &Renderer{conv: conv, opts: opts}
}

// Render builds the Post for e. It fails only when the DATE field cannot be
// parsed or the HTML converter returns an error.
func (r *Renderer) Render(e types.Entry) (types.Post, error) {
	title := Title(e)
	basename := Basename(e)

	dt, err := ParseDate(e.Field(types.FieldDate, defaultDate))
	if err != nil {
		return types.Post{}, err
	}
	year := dt.Format("2006")
	month := dt.Format("01")

	status := e.Field(types.FieldStatus, defaultStatus)
	categories := e.Categories
	if categories == nil {
		categories = []string{}
	}

	fm := types.Frontmatter{
		Title:      title,
		Date:       dt.Format(isoLayout),
		Draft:      !strings.EqualFold(status, statusPublish),
		Tags:       SplitTags(e.Fields[types.FieldTags], e.HasField(types.FieldTags)),
		Categories: categories,
		Aliases:    []string{r.alias(basename)},
	}

	content, err := r.content(e)
	if err != nil {
		return types.Post{}, err
	}

	return types.Post{
		Year:        year,
		Month:       month,
		Basename:    basename,
		RelPath:     path.Join(year, month, postsDir, basename+".md"),
		Frontmatter: fm,
		Document:    MarshalFrontmatter(fm) + "\n" + content,
		Redirect:    r.redirect(year, month, basename),
	}, nil
}

// Title returns the entry's TITLE, or "No Title" when absent.
func Title(e types.Entry) string {
	return e.Field(types.FieldTitle, defaultTitle)
}

// Basename returns the entry's BASENAME when present (even if empty),
// otherwise the slug of its title.
func Basename(e types.Entry) string {
	if e.HasField(types.FieldBasename) {
		return e.Fields[types.FieldBasename]
	}
	return Slugify(Title(e))
}

// content converts BODY and EXTENDED BODY independently and joins them with
// a blank line when the extended part is non-empty.
func (r *Renderer) content(e types.Entry) (string, error) {
	body, err := r.conv.Convert(e.Body(types.SectionBody))
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", types.SectionBody, err)
	}
	extended, err := r.conv.Convert(e.Body(types.SectionExtendedBody))
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", types.SectionExtendedBody, err)
	}

	content := strings.TrimSpace(body)
	if ext := strings.TrimSpace(extended); ext != "" {
		content += "\n\n" + ext
	}
	return strings.TrimSpace(content), nil
}

func (r *Renderer) alias(basename string) string {
	return fmt.Sprintf("%s/%s/%s.html", r.opts.LegacyPrefix, r.opts.Section, basename)
}

func (r *Renderer) redirect(year, month, basename string) types.RedirectRule {
	return types.RedirectRule{
		Pattern: fmt.Sprintf(`%s/%s/%s/%s/%s\.html`, r.opts.LegacyPrefix, r.opts.Section, year, month, basename),
		Target:  fmt.Sprintf("%s/%s/%s/%s/%s/%s/", r.opts.BaseURL, r.opts.Section, year, month, postsDir, basename),
	}
}
