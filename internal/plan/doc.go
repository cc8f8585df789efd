// Package plan builds and validates rename plans, and commits them.
//
// Build pairs every scanned file with its proposed name and a validation
// status: names with illegal characters, two sources mapping to the same
// target, or targets that already exist on disk are flagged per entry and
// excluded from commit. Plans are always recomputed from scratch; nothing
// in this package patches a stale plan.
//
// Commit renames the Ok entries in two phases: every source moves to a
// unique temporary name first, then each temporary moves to its final
// name. This keeps rename chains within one plan (a.txt -> b.txt while
// b.txt -> c.txt) from overwriting a file that has not moved yet. A
// failure on one entry never aborts the rest of the batch, and there is no
// rollback of entries already renamed.
package plan
