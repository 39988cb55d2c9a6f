// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// Converter transforms an HTML fragment into Markdown text.
type Converter interface {
	Convert(html string) (string, error)
}

// MarkdownConverter converts HTML with html-to-markdown. Links are kept
// inline and long lines are never hard-wrapped.
type MarkdownConverter struct {
	conv *md.Converter
}

// NewMarkdownConverter returns a converter with CommonMark output rules and
// inline link style.
func NewMarkdownConverter() *MarkdownConverter {
	opts := &md.Options{
		LinkStyle: "inlined",
	}
	return &MarkdownConverter{conv: md.NewConverter("", true, opts)}
}

// Convert returns the Markdown for html. Empty input yields "".
func (m *MarkdownConverter) Convert(html string) (string, error) {
	if html == "" {
		return "", nil
	}
	out, err := m.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to Markdown: %w", err)
	}
	return out, nil
}
