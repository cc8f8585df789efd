package plan

import "fmt"

// Summary aggregates a plan for the confirmation step.
type Summary struct {
	Total      int
	Renamable  int
	Unchanged  int
	Illegal    []string
	Duplicates []string
	Exists     []string
}

// Summarize tallies plan entries by status for display.
func Summarize(entries []Entry) Summary {
	var sum Summary
	sum.Total = len(entries)

	for _, e := range entries {
		line := fmt.Sprintf("%s → %s", e.Source.Name, e.Proposed)
		switch e.Status {
		case StatusIllegalCharacter:
			sum.Illegal = append(sum.Illegal, line+" ("+e.Reason+")")
		case StatusDuplicateTarget:
			sum.Duplicates = append(sum.Duplicates, line)
		case StatusTargetExists:
			sum.Exists = append(sum.Exists, line)
		default:
			if e.Changed() {
				sum.Renamable++
			} else {
				sum.Unchanged++
			}
		}
	}
	return sum
}
