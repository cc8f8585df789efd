package scan

import (
	"path/filepath"
	"strings"

	"bulkrenamer/internal/plan"
)

// FilterMode selects how a filter value matches a filename.
type FilterMode string

const (
	FilterContains   FilterMode = "contains"
	FilterStartsWith FilterMode = "starts with"
	FilterEndsWith   FilterMode = "ends with"
	FilterExtension  FilterMode = "extension"
)

// FilterModes lists the modes in menu order.
var FilterModes = []FilterMode{FilterContains, FilterStartsWith, FilterEndsWith, FilterExtension}

// Filter narrows the scanned listing by filename. An empty value matches
// everything.
type Filter struct {
	ID    int
	Mode  FilterMode
	Value string
}

// ApplyFilters returns the entries matching the filter set. With matchAll
// every filter must match (AND); otherwise one match suffices (OR). An
// empty filter set keeps everything.
func ApplyFilters(entries []plan.FileEntry, filters []Filter, matchAll, caseSensitive bool) []plan.FileEntry {
	if len(filters) == 0 {
		return entries
	}
	out := make([]plan.FileEntry, 0, len(entries))
	for _, e := range entries {
		if matches(e.Name, filters, matchAll, caseSensitive) {
			out = append(out, e)
		}
	}
	return out
}

func matches(filename string, filters []Filter, matchAll, caseSensitive bool) bool {
	name := filename
	if !caseSensitive {
		name = strings.ToLower(name)
	}

	one := func(f Filter) bool {
		val := strings.TrimSpace(f.Value)
		if val == "" {
			return true
		}
		if !caseSensitive {
			val = strings.ToLower(val)
		}

		switch f.Mode {
		case FilterStartsWith:
			return strings.HasPrefix(name, val)
		case FilterEndsWith:
			return strings.HasSuffix(name, val)
		case FilterExtension:
			ext := filepath.Ext(filename)
			if !strings.HasPrefix(val, ".") {
				val = "." + val
			}
			if !caseSensitive {
				ext = strings.ToLower(ext)
			}
			return ext == val
		default:
			return strings.Contains(name, val)
		}
	}

	if matchAll {
		for _, f := range filters {
			if !one(f) {
				return false
			}
		}
		return true
	}
	for _, f := range filters {
		if one(f) {
			return true
		}
	}
	return false
}
