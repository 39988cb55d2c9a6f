// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives a migration run: it parses a Movable Type export,
// renders every entry to a Hugo post, writes the posts, and writes the nginx
// redirect rules.
package convert

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/mt2hugo/internal/mtexport"
	"github.com/pdiddy/mt2hugo/internal/output"
	"github.com/pdiddy/mt2hugo/internal/render"
	"github.com/pdiddy/mt2hugo/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Entries   int
	Converted int
	Drafts    int
}

// Total returns the number of entries in the export.
func (r BatchResult) Total() int {
	return r.Entries
}

// Pending returns the number of entries not converted because the run
// stopped early.
func (r BatchResult) Pending() int {
	return r.Entries - r.Converted
}

// ContentRoot returns the directory posts for cfg's section are written to.
func ContentRoot(cfg types.MigrationConfig) string {
	cfg = cfg.WithDefaults()
	return filepath.Join(cfg.ContentDir, cfg.Section)
}

// Run performs a full migration for cfg. Per-entry status lines go to w and
// diagnostics to logger. The redirect file is written only after every
// entry succeeded; posts written before a failure stay on disk.
func Run(cfg types.MigrationConfig, conv render.Converter, logger *zap.Logger, w io.Writer) (BatchResult, error) {
	cfg = cfg.WithDefaults()
	if cfg.Section == "" {
		return BatchResult{}, fmt.Errorf("section is required")
	}

	if cfg.OutputHint != "" {
		logger.Debug("output folder argument is not used for paths",
			zap.String("output_folder", cfg.OutputHint),
			zap.String("content_root", ContentRoot(cfg)))
	}

	entries, err := mtexport.ParseFile(cfg.ExportPath)
	if err != nil {
		return BatchResult{}, err
	}
	logger.Info("parsed export",
		zap.String("path", cfg.ExportPath),
		zap.Int("entries", len(entries)))

	r := render.New(conv, render.Options{
		Section:      cfg.Section,
		BaseURL:      cfg.BaseURL,
		LegacyPrefix: cfg.LegacyPrefix,
	})
	wr := output.NewWriter(ContentRoot(cfg), cfg.RedirectFile)

	result, err := ConvertBatch(r, wr, entries, logger, w)
	if err != nil {
		return result, err
	}

	if err := wr.Flush(); err != nil {
		return result, err
	}
	logger.Debug("wrote redirects",
		zap.String("path", wr.RedirectPath()),
		zap.Int("rules", len(wr.Rules())))
	return result, nil
}

// ConvertBatch renders and writes entries in order, printing one status
// line per entry to w. It stops at the first failure and returns the
// partial result with the error. It does not flush redirects.
func ConvertBatch(r *render.Renderer, wr *output.Writer, entries []types.Entry, logger *zap.Logger, w io.Writer) (BatchResult, error) {
	result := BatchResult{Entries: len(entries)}
	for i, e := range entries {
		path, draft, err := convertEntry(r, wr, e, logger)
		if err != nil {
			fmt.Fprintf(w, "failed:    entry %d (%v)\n", i+1, err)
			return result, fmt.Errorf("entry %d (%q): %w", i+1, e.Field(types.FieldTitle, ""), err)
		}
		result.Converted++
		if draft {
			result.Drafts++
		}
		fmt.Fprintf(w, "converted: %s\n", path)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d drafts (total: %d)\n",
		result.Converted, result.Drafts, result.Total())
	return result, nil
}

func convertEntry(r *render.Renderer, wr *output.Writer, e types.Entry, logger *zap.Logger) (string, bool, error) {
	post, err := r.Render(e)
	if err != nil {
		return "", false, fmt.Errorf("rendering: %w", err)
	}
	path, err := wr.WritePost(post)
	if err != nil {
		return "", false, err
	}
	logger.Debug("wrote post",
		zap.String("basename", post.Basename),
		zap.String("year", post.Year),
		zap.String("month", post.Month),
		zap.Bool("draft", post.Frontmatter.Draft),
		zap.String("path", path))
	return path, post.Frontmatter.Draft, nil
}
