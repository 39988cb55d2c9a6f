// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrUnparsableDate is returned when a DATE field matches none of the
// accepted layouts.
var ErrUnparsableDate = errors.New("unrecognized date format")

// dateLayouts are tried in order against the upper-cased value. Month,
// day, hour, minute and second accept one or two digits.
var dateLayouts = []string{
	"1/2/2006 3:4:5 PM",
	"2006-1-2 15:4:5",
}

// isoLayout is the frontmatter date format (no zone, second precision).
const isoLayout = "2006-01-02T15:04:05"

// nonWordRe matches runs of characters that are not letters, digits or
// underscores.
var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Slugify lowercases title and replaces every run of non-word characters
// with a single hyphen. Leading and trailing hyphens are kept.
func Slugify(title string) string {
	return nonWordRe.ReplaceAllString(strings.ToLower(title), "-")
}

// ParseDate parses an export DATE value using the accepted layouts. The
// meridiem is matched without regard to case.
func ParseDate(value string) (time.Time, error) {
	upper := strings.ToUpper(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: %w", value, ErrUnparsableDate)
}

// SplitTags splits a TAGS value on commas without trimming the pieces.
// An absent value yields an empty list.
func SplitTags(value string, present bool) []string {
	if !present {
		return []string{}
	}
	return strings.Split(value, ",")
}
