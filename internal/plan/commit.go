package plan

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"bulkrenamer/internal/logging"
)

// Commit renames every Ok entry of the plan. Entries excluded by validation
// are counted as skipped, unchanged names as no-ops. A filesystem failure on
// one entry is recorded and the batch continues; completed renames are never
// rolled back.
//
// Renames run in two phases: every source first moves to a unique temporary
// name, then each temporary moves to its final name. This keeps a rename
// chain safe (a.txt → b.txt while b.txt → c.txt in the same plan) — with
// direct renames in listing order, os.Rename would silently replace the
// still-present b.txt and lose its content. A final name that is occupied at
// phase two (a vacating rename failed, or the file appeared after preview)
// fails that entry and restores its source instead of overwriting.
func Commit(entries []Entry) Report {
	log := logging.L()
	results := make([]Result, len(entries))

	rep := Report{}
	var work []int

	for i, e := range entries {
		switch {
		case e.Status != StatusOk:
			rep.Skipped++
			results[i] = Result{Entry: e, Kind: ResultSkipped}
		case !e.Changed():
			rep.Unchanged++
			results[i] = Result{Entry: e, Kind: ResultUnchanged}
		default:
			work = append(work, i)
		}
	}

	fail := func(i int, err error) {
		rep.Failed++
		results[i] = Result{Entry: entries[i], Kind: ResultFailed, Err: err}
		log.Warn("rename failed",
			zap.String("from", entries[i].Source.Name),
			zap.String("to", entries[i].Proposed),
			zap.Error(err))
	}

	// Phase 1: vacate every source to a temporary name.
	suffix := fmt.Sprintf(".~renametmp~%d", time.Now().UnixNano())
	tmp := make(map[int]string, len(work))
	for _, i := range work {
		e := entries[i]
		t := e.Source.Path() + suffix
		for n := 0; pathExists(t); n++ {
			t = fmt.Sprintf("%s%s%d", e.Source.Path(), suffix, n)
		}
		if err := os.Rename(e.Source.Path(), t); err != nil {
			fail(i, fmt.Errorf("rename %s: %w", e.Source.Name, err))
			continue
		}
		tmp[i] = t
	}

	// Phase 2: move temporaries to their final names.
	for _, i := range work {
		t, ok := tmp[i]
		if !ok {
			continue
		}
		e := entries[i]

		if pathExists(e.ProposedPath()) {
			_ = os.Rename(t, e.Source.Path())
			fail(i, fmt.Errorf("rename %s: target %s exists on disk", e.Source.Name, e.Proposed))
			continue
		}
		if err := os.Rename(t, e.ProposedPath()); err != nil {
			_ = os.Rename(t, e.Source.Path())
			fail(i, fmt.Errorf("rename %s: %w", e.Source.Name, err))
			continue
		}
		rep.Renamed++
		results[i] = Result{Entry: e, Kind: ResultRenamed}
		log.Info("renamed",
			zap.String("from", e.Source.Name),
			zap.String("to", e.Proposed))
	}

	rep.Results = results
	log.Info("commit finished",
		zap.Int("renamed", rep.Renamed),
		zap.Int("unchanged", rep.Unchanged),
		zap.Int("skipped", rep.Skipped),
		zap.Int("failed", rep.Failed))
	return rep
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
