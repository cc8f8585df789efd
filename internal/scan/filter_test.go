package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bulkrenamer/internal/plan"
)

func entriesNamed(names ...string) []plan.FileEntry {
	out := make([]plan.FileEntry, len(names))
	for i, n := range names {
		out[i] = plan.FileEntry{Name: n, Dir: "/tmp"}
	}
	return out
}

func filtered(t *testing.T, filters []Filter, matchAll, caseSensitive bool, names ...string) []string {
	t.Helper()
	kept := ApplyFilters(entriesNamed(names...), filters, matchAll, caseSensitive)
	out := make([]string, len(kept))
	for i, e := range kept {
		out[i] = e.Name
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	names := []string{"The Whale.mkv", "whale sounds.mp3", "notes.txt"}

	tests := []struct {
		name          string
		filters       []Filter
		matchAll      bool
		caseSensitive bool
		want          []string
	}{
		{
			name: "no filters keeps all",
			want: names,
		},
		{
			name:    "contains case-insensitive",
			filters: []Filter{{Mode: FilterContains, Value: "whale"}},
			want:    []string{"The Whale.mkv", "whale sounds.mp3"},
		},
		{
			name:          "contains case-sensitive",
			filters:       []Filter{{Mode: FilterContains, Value: "whale"}},
			caseSensitive: true,
			want:          []string{"whale sounds.mp3"},
		},
		{
			name:    "starts with",
			filters: []Filter{{Mode: FilterStartsWith, Value: "the"}},
			want:    []string{"The Whale.mkv"},
		},
		{
			name:    "extension without dot",
			filters: []Filter{{Mode: FilterExtension, Value: "mp3"}},
			want:    []string{"whale sounds.mp3"},
		},
		{
			name:     "AND of two filters",
			filters:  []Filter{{Mode: FilterContains, Value: "whale"}, {Mode: FilterExtension, Value: ".mkv"}},
			matchAll: true,
			want:     []string{"The Whale.mkv"},
		},
		{
			name:    "OR of two filters",
			filters: []Filter{{Mode: FilterExtension, Value: "txt"}, {Mode: FilterExtension, Value: "mp3"}},
			want:    []string{"whale sounds.mp3", "notes.txt"},
		},
		{
			name:    "blank value matches everything",
			filters: []Filter{{Mode: FilterContains, Value: "  "}},
			want:    names,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filtered(t, tt.filters, tt.matchAll, tt.caseSensitive, names...)
			assert.Equal(t, tt.want, got)
		})
	}
}
