// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mtexport parses the Movable Type plain-text export format into
// Entry records.
//
// An export is a sequence of blocks separated by a line containing only
// "--------". Inside a block, "KEY: value" lines are scalar fields and a
// bare "KEY:" line opens a multi-line body section that runs until the next
// field or section line. Lines of "-----" delimit sub-sections and carry no
// content.
package mtexport

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/mt2hugo/pkg/types"
)

const (
	entrySeparator   = "\n--------\n"
	sectionSeparator = "-----"
)

// ErrInvalidUTF8 is returned when the export is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("export is not valid UTF-8")

var (
	sectionHeaderRe = regexp.MustCompile(`^[A-Z ]+:$`)
	scalarFieldRe   = regexp.MustCompile(`^[A-Z ]+:`)
)

// lineKind classifies a single export line.
type lineKind int

const (
	lineText lineKind = iota
	lineSectionHeader
	lineScalarField
	lineSeparator
)

func (k lineKind) String() string {
	switch k {
	case lineSectionHeader:
		return "section"
	case lineScalarField:
		return "field"
	case lineSeparator:
		return "separator"
	default:
		return "text"
	}
}

// classify returns the kind of line. Separator lines are recognized before
// field patterns so "-----" is never mistaken for content.
func classify(line string) lineKind {
	switch {
	case strings.TrimSpace(line) == sectionSeparator:
		return lineSeparator
	case sectionHeaderRe.MatchString(line):
		return lineSectionHeader
	case scalarFieldRe.MatchString(line):
		return lineScalarField
	default:
		return lineText
	}
}

// ParseFile reads the export at path and parses it.
func ParseFile(path string) ([]types.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing export %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads a whole export from r and returns its entries in document
// order.
func Parse(r io.Reader) ([]types.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("reading export: %w", ErrInvalidUTF8)
	}
	return ParseString(string(data)), nil
}

// ParseString splits an export into blocks and parses each one. Blocks that
// are blank after trimming, such as the tail after a trailing separator,
// produce no entry.
func ParseString(content string) []types.Entry {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var entries []types.Entry
	for _, block := range strings.Split(content, entrySeparator) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		entries = append(entries, parseBlock(block))
	}
	return entries
}

// blockParser accumulates one entry. A fresh value is used per block.
type blockParser struct {
	entry types.Entry

	// bufferKey is the open body section, or "" when none is open.
	bufferKey string
	bufferVal []string
}

func parseBlock(block string) types.Entry {
	p := &blockParser{
		entry: types.Entry{
			Fields:     map[string]string{},
			Categories: []string{},
			Bodies:     map[string]string{},
		},
	}
	for _, line := range strings.Split(block, "\n") {
		p.feed(line)
	}
	p.closeBuffer()
	return p.entry
}

func (p *blockParser) feed(line string) {
	switch classify(line) {
	case lineSeparator:
		return

	case lineSectionHeader:
		p.closeBuffer()
		p.bufferKey = strings.TrimSuffix(line, ":")

	case lineScalarField:
		p.closeBuffer()
		key, val, _ := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if key == types.FieldCategory {
			p.entry.Categories = append(p.entry.Categories, val)
			return
		}
		p.entry.Fields[key] = val

	case lineText:
		if p.bufferKey != "" {
			p.bufferVal = append(p.bufferVal, line)
		}
	}
}

func (p *blockParser) closeBuffer() {
	if p.bufferKey == "" {
		return
	}
	p.entry.Bodies[p.bufferKey] = strings.TrimSpace(strings.Join(p.bufferVal, "\n"))
	p.bufferKey = ""
	p.bufferVal = nil
}
