// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mt2hugo/internal/mtexport"
	"github.com/pdiddy/mt2hugo/internal/render"
	"github.com/pdiddy/mt2hugo/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <mt_export.txt>",
	Short: "Show how an export is parsed without writing anything",
	Long: `Inspect parses a Movable Type export and prints every entry as YAML:
the resolved title and basename, raw date and status, categories, scalar
fields, and the size of each body section. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

// inspectEntry is the YAML shape printed for each parsed entry.
type inspectEntry struct {
	Index      int               `yaml:"index"`
	Title      string            `yaml:"title"`
	Basename   string            `yaml:"basename"`
	Date       string            `yaml:"date,omitempty"`
	Status     string            `yaml:"status,omitempty"`
	Categories []string          `yaml:"categories"`
	Fields     map[string]string `yaml:"fields"`
	Bodies     []inspectBody     `yaml:"bodies,omitempty"`
}

type inspectBody struct {
	Name  string `yaml:"name"`
	Lines int    `yaml:"lines"`
	Bytes int    `yaml:"bytes"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	entries, err := mtexport.ParseFile(args[0])
	if err != nil {
		return err
	}
	return writeInspect(cmd.OutOrStdout(), entries)
}

func writeInspect(w io.Writer, entries []types.Entry) error {
	out := make([]inspectEntry, len(entries))
	for i, e := range entries {
		out[i] = inspectEntry{
			Index:      i + 1,
			Title:      render.Title(e),
			Basename:   render.Basename(e),
			Date:       e.Fields[types.FieldDate],
			Status:     e.Fields[types.FieldStatus],
			Categories: e.Categories,
			Fields:     e.Fields,
			Bodies:     bodySummary(e.Bodies),
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	fmt.Fprintf(w, "# %d entries\n", len(entries))
	return nil
}

func bodySummary(bodies map[string]string) []inspectBody {
	names := make([]string, 0, len(bodies))
	for name := range bodies {
		names = append(names, name)
	}
	sort.Strings(names)

	summary := make([]inspectBody, len(names))
	for i, name := range names {
		text := bodies[name]
		lines := 0
		if text != "" {
			lines = strings.Count(text, "\n") + 1
		}
		summary[i] = inspectBody{Name: name, Lines: lines, Bytes: len(text)}
	}
	return summary
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
