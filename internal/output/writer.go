// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output persists rendered posts into a date-partitioned content
// tree and collects their redirect rules into a single nginx config file.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mt2hugo/pkg/types"
)

// Writer writes posts under a section content root and accumulates one
// redirect rule per written post.
type Writer struct {
	root         string
	redirectPath string
	rules        []types.RedirectRule
}

// NewWriter returns a Writer that places posts under root and writes the
// redirect rules to redirectPath on Flush.
func NewWriter(root, redirectPath string) *Writer {
	return &Writer{root: root, redirectPath: redirectPath}
}

// RedirectPath returns the redirect rules file path.
func (w *Writer) RedirectPath() string { return w.redirectPath }

// WritePost writes p to root/<year>/<month>/posts/<basename>.md, replacing
// any existing file, and records its redirect rule. It returns the path
// written.
func (w *Writer) WritePost(p types.Post) (string, error) {
	mdPath := filepath.Join(w.root, filepath.FromSlash(p.RelPath))

	if err := os.MkdirAll(filepath.Dir(mdPath), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", mdPath, err)
	}
	if err := os.WriteFile(mdPath, []byte(p.Document), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", mdPath, err)
	}

	w.rules = append(w.rules, p.Redirect)
	return mdPath, nil
}

// Rules returns the redirect rules recorded so far, in write order.
func (w *Writer) Rules() []types.RedirectRule {
	return append([]types.RedirectRule(nil), w.rules...)
}

// Flush writes every recorded rule, one per line with a trailing newline,
// replacing the previous contents of the redirect file.
func (w *Writer) Flush() error {
	lines := make([]string, len(w.rules))
	for i, r := range w.rules {
		lines[i] = r.String()
	}
	data := strings.Join(lines, "\n") + "\n"

	if dir := filepath.Dir(w.redirectPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", w.redirectPath, err)
		}
	}
	if err := os.WriteFile(w.redirectPath, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing redirects %s: %w", w.redirectPath, err)
	}
	return nil
}
