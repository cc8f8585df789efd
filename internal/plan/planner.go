package plan

import (
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"bulkrenamer/internal/engine"
)

// Build computes the full rename plan for entries under the given rule
// pipeline. Checks run per entry in order: illegal name, duplicate target
// within the plan, target already on disk. An entry whose proposed name
// equals its original stays Ok; commit treats it as a no-op.
func Build(entries []FileEntry, rules []engine.Rule) []Entry {
	out := make([]Entry, len(entries))
	claims := make(map[string]int, len(entries))

	for i, f := range entries {
		p := engine.ApplyAll(rules, f.Name)
		out[i] = Entry{Source: f, Proposed: p, Status: StatusOk}
		claims[normalizeName(p)]++
	}

	for i := range out {
		e := &out[i]

		if reason := invalidNameReason(e.Proposed); reason != "" {
			e.Status = StatusIllegalCharacter
			e.Reason = reason
			continue
		}

		// Renaming a file to its own current name is a no-op, never a
		// conflict.
		if !e.Changed() {
			continue
		}

		if claims[normalizeName(e.Proposed)] > 1 {
			e.Status = StatusDuplicateTarget
			e.Reason = "another file maps to the same name"
		}
	}

	// On-disk check. A target counts as vacated only when the entry that
	// currently holds the name will genuinely be renamed — an entry flagged
	// above keeps its file in place and frees nothing. Flagging an entry
	// here shrinks the vacated set in turn, so iterate until stable.
	for changed := true; changed; {
		changed = false
		vacated := vacatedSources(out)

		for i := range out {
			e := &out[i]
			if e.Status != StatusOk || !e.Changed() {
				continue
			}
			if targetOccupied(e.Source.Path(), e.ProposedPath(), vacated) {
				e.Status = StatusTargetExists
				e.Reason = "a file with this name already exists"
				changed = true
			}
		}
	}

	return out
}

// vacatedSources collects the normalized paths freed by entries that will
// actually be renamed.
func vacatedSources(entries []Entry) map[string]bool {
	vacated := make(map[string]bool)
	for _, e := range entries {
		if e.Status == StatusOk && e.Changed() {
			vacated[normalizePath(e.Source.Path())] = true
		}
	}
	return vacated
}

// targetOccupied reports whether target exists on disk as a file other than
// the source itself and is not vacated by another rename in the same plan.
func targetOccupied(source, target string, vacated map[string]bool) bool {
	if samePathRelaxed(source, target) {
		return false
	}
	if _, err := os.Stat(target); err != nil {
		return false
	}
	return !vacated[normalizePath(target)]
}

// isCaseInsensitiveFS reports whether the host filesystem is assumed to
// fold case (Windows, macOS default volumes).
func isCaseInsensitiveFS() bool {
	return goruntime.GOOS == "windows" || goruntime.GOOS == "darwin"
}

func normalizeName(name string) string {
	if isCaseInsensitiveFS() {
		return strings.ToLower(name)
	}
	return name
}

func normalizePath(p string) string {
	p = filepath.Clean(p)
	if isCaseInsensitiveFS() {
		return strings.ToLower(p)
	}
	return p
}

func samePathRelaxed(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if a == b {
		return true
	}
	if isCaseInsensitiveFS() {
		return strings.EqualFold(a, b)
	}
	return false
}
