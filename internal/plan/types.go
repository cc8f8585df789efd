package plan

import "path/filepath"

// Status classifies one plan entry after validation.
type Status string

const (
	StatusOk               Status = "ok"
	StatusIllegalCharacter Status = "illegal character"
	StatusDuplicateTarget  Status = "duplicate target"
	StatusTargetExists     Status = "target exists"
)

// FileEntry is one file under consideration: its name and the directory it
// lives in. The name is fixed once the folder is scanned.
type FileEntry struct {
	Name string
	Dir  string
}

// Path returns the full path of the entry.
func (f FileEntry) Path() string {
	return filepath.Join(f.Dir, f.Name)
}

// Entry pairs a source file with its proposed name and validation status.
type Entry struct {
	Source   FileEntry
	Proposed string
	Status   Status
	Reason   string
}

// ProposedPath returns the full path the entry would be renamed to.
func (e Entry) ProposedPath() string {
	return filepath.Join(e.Source.Dir, e.Proposed)
}

// Changed reports whether committing the entry would touch the filesystem.
func (e Entry) Changed() bool {
	return e.Proposed != e.Source.Name
}

// ResultKind classifies one entry's outcome in a commit report.
type ResultKind string

const (
	ResultRenamed   ResultKind = "renamed"
	ResultUnchanged ResultKind = "unchanged"
	ResultSkipped   ResultKind = "skipped"
	ResultFailed    ResultKind = "failed"
)

// Result records the commit outcome for one entry. Err is non-nil only for
// ResultFailed.
type Result struct {
	Entry Entry
	Kind  ResultKind
	Err   error
}

// Report summarizes one commit run.
type Report struct {
	Renamed   int
	Unchanged int
	Skipped   int // excluded by validation status
	Failed    int
	Results   []Result
}
