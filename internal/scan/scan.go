// Package scan lists the files of one folder and narrows them with simple
// name filters. Listings are non-recursive and fully materialized before
// any rename touches the folder.
package scan

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"bulkrenamer/internal/plan"
)

// List returns the regular files directly inside dir in natural sort order.
// Subdirectories are not descended into.
func List(dir string) ([]plan.FileEntry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}

	var entries []plan.FileEntry
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		entries = append(entries, plan.FileEntry{Name: de.Name(), Dir: dir})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return naturalLess(entries[i].Name, entries[j].Name)
	})
	return entries, nil
}

// naturalLess orders strings so that embedded digit runs compare
// numerically: "photo2" sorts before "photo10".
func naturalLess(a, b string) bool {
	ai, bi, la, lb := 0, 0, len(a), len(b)
	for ai < la && bi < lb {
		ra, rb := a[ai], b[bi]
		isDigitA, isDigitB := ra >= '0' && ra <= '9', rb >= '0' && rb <= '9'

		if isDigitA && isDigitB {
			startA, startB := ai, bi
			for ai < la && a[ai] >= '0' && a[ai] <= '9' {
				ai++
			}
			for bi < lb && b[bi] >= '0' && b[bi] <= '9' {
				bi++
			}

			numA := strings.TrimLeft(a[startA:ai], "0")
			numB := strings.TrimLeft(b[startB:bi], "0")

			if len(numA) != len(numB) {
				return len(numA) < len(numB)
			}
			if numA != numB {
				return numA < numB
			}
			// Equal values; fewer leading zeros first.
			lenA, lenB := ai-startA, bi-startB
			if lenA != lenB {
				return lenA < lenB
			}
			continue
		}

		raLower, rbLower := toLowerByte(ra), toLowerByte(rb)
		if raLower != rbLower {
			return raLower < rbLower
		}
		ai++
		bi++
	}
	return la < lb
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}
