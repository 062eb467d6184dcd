package models

import (
	"strings"
	"time"
)

// dateLayouts are tried in order against the separator-unified raw date.
// Month-first resolves ambiguous short dates, matching common statement usage.
var dateLayouts = []string{
	"2006/1/2",
	"1/2/2006",
	"1/2/06",
}

// NormalizeDate converts a raw matched date string to canonical YYYY-MM-DD.
// Slash and dash separators are treated uniformly. If the text cannot be
// parsed as a date the original string is returned verbatim; normalization
// never fails.
func NormalizeDate(raw string) string {
	unified := strings.ReplaceAll(raw, "-", "/")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, unified); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}
