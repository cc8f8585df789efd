// Package session tracks one run of the app as an explicit state machine:
// Idle → Scanned → Previewed → Committed. State is an immutable value;
// every user action produces a fresh copy, and any change to the folder,
// filters, or rules drops back to Scanned and discards the plan, so a
// stale preview can never leak into a commit.
package session

import (
	"bulkrenamer/internal/engine"
	"bulkrenamer/internal/plan"
	"bulkrenamer/internal/scan"
)

// Phase is the lifecycle position of a session.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseScanned   Phase = "scanned"
	PhasePreviewed Phase = "previewed"
	PhaseCommitted Phase = "committed"
)

// State is one immutable snapshot of the session. Transition methods return
// a new value; the receiver is never mutated.
type State struct {
	Phase   Phase
	Folder  string
	Entries []plan.FileEntry
	Filters []scan.Filter
	Rules   []engine.Rule
	Plan    []plan.Entry
	Report  *plan.Report
}

// Initial returns the Idle state.
func Initial() State {
	return State{Phase: PhaseIdle}
}

// WithFolder records a freshly scanned folder and discards any prior plan.
func (s State) WithFolder(folder string, entries []plan.FileEntry) State {
	s.Folder = folder
	s.Entries = entries
	s.Plan = nil
	s.Report = nil
	s.Phase = PhaseScanned
	return s
}

// WithRules replaces the rule pipeline and discards any prior plan.
func (s State) WithRules(rules []engine.Rule) State {
	s.Rules = rules
	return s.invalidated()
}

// WithFilters replaces the filter set and discards any prior plan.
func (s State) WithFilters(filters []scan.Filter) State {
	s.Filters = filters
	return s.invalidated()
}

// WithPlan records a freshly computed plan.
func (s State) WithPlan(p []plan.Entry) State {
	s.Plan = p
	s.Report = nil
	s.Phase = PhasePreviewed
	return s
}

// WithReport records the commit outcome.
func (s State) WithReport(r plan.Report) State {
	s.Report = &r
	s.Phase = PhaseCommitted
	return s
}

func (s State) invalidated() State {
	s.Plan = nil
	s.Report = nil
	if s.Phase != PhaseIdle {
		s.Phase = PhaseScanned
	}
	return s
}

// Selected returns the scanned entries narrowed by the current filters.
func (s State) Selected(matchAll, caseSensitive bool) []plan.FileEntry {
	return scan.ApplyFilters(s.Entries, s.Filters, matchAll, caseSensitive)
}

// CanCommit reports whether the current plan has at least one entry that a
// commit would actually rename.
func (s State) CanCommit() bool {
	if s.Phase != PhasePreviewed {
		return false
	}
	for _, e := range s.Plan {
		if e.Status == plan.StatusOk && e.Changed() {
			return true
		}
	}
	return false
}
