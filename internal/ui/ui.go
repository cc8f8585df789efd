// Package ui wires the fyne widgets to the session state machine. All
// callbacks run on the single event thread; each one replaces the current
// session snapshot and re-renders, so no plan survives an input change.
package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"bulkrenamer/internal/engine"
	"bulkrenamer/internal/logging"
	"bulkrenamer/internal/plan"
	"bulkrenamer/internal/scan"
	"bulkrenamer/internal/session"
)

const pageSize = 10

// ruleInput is the mutable form row behind one engine.Rule.
type ruleInput struct {
	id int
	op engine.Op
	a  string
	b  string
}

type controller struct {
	win   fyne.Window
	state session.State

	matchAll      bool
	caseSensitive bool
	filters       []scan.Filter
	nextFilterID  int

	ruleInputs []ruleInput
	nextRuleID int

	page int

	folderLabel   *widget.Label
	resultsHeader *widget.Label
	previewBox    *fyne.Container
	pageLabel     *widget.Label
	prevBtn       *widget.Button
	nextBtn       *widget.Button
	applyBtn      *widget.Button
	filtersBox    *fyne.Container
	rulesBox      *fyne.Container
}

// Build assembles the main window content.
func Build(win fyne.Window) fyne.CanvasObject {
	c := &controller{
		win:      win,
		state:    session.Initial(),
		matchAll: true,
	}
	return c.layout()
}

func (c *controller) layout() fyne.CanvasObject {
	c.folderLabel = widget.NewLabel("Folder: (none)")
	c.folderLabel.Truncation = fyne.TextTruncateEllipsis

	c.resultsHeader = widget.NewLabel("No folder selected.")
	c.resultsHeader.TextStyle = fyne.TextStyle{Bold: true}

	c.previewBox = container.NewVBox()

	c.prevBtn = widget.NewButton("Previous", func() { c.page--; c.render() })
	c.nextBtn = widget.NewButton("Next", func() { c.page++; c.render() })
	c.pageLabel = widget.NewLabel("Page 1/1")
	c.pageLabel.Alignment = fyne.TextAlignCenter

	previewBtn := widget.NewButtonWithIcon("Preview", theme.SearchIcon(), c.onPreview)
	c.applyBtn = widget.NewButtonWithIcon("Rename Files", theme.ConfirmIcon(), c.onApply)
	c.applyBtn.Disable()

	c.filtersBox = container.NewVBox()
	c.rulesBox = container.NewVBox()

	top := container.NewBorder(nil, nil,
		container.NewHBox(
			widget.NewButton("Select Folder…", c.onSelectFolder),
			widget.NewButton("Refresh", c.onRefresh),
		),
		nil,
		c.folderLabel,
	)

	rightTop := container.NewVBox(
		container.NewBorder(nil, nil, nil,
			container.NewHBox(c.prevBtn, c.pageLabel, c.nextBtn),
			c.resultsHeader,
		),
		widget.NewSeparator(),
	)
	actions := container.NewBorder(nil, nil, nil,
		container.NewHBox(previewBtn, c.applyBtn),
	)
	right := container.NewBorder(rightTop, actions, nil, nil,
		container.NewVScroll(c.previewBox),
	)

	left := container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Filters", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		c.matchModeSelect(),
		widget.NewCheck("Case sensitive", func(v bool) {
			c.caseSensitive = v
			c.invalidate()
		}),
		container.NewHBox(
			widget.NewButton("+ Add filter", c.onAddFilter),
			widget.NewButton("Clear filters", c.onClearFilters),
		),
		widget.NewSeparator(),
		c.filtersBox,

		widget.NewSeparator(),
		widget.NewLabelWithStyle("Rename rules", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(
			widget.NewButton("+ Add rule", c.onAddRule),
			widget.NewButton("Clear rules", c.onClearRules),
		),
		widget.NewSeparator(),
		c.rulesBox,
	))

	c.renderFilters()
	c.renderRules()
	c.render()

	split := container.NewHSplit(left, right)
	split.Offset = 0.38
	return container.NewBorder(top, nil, nil, nil, split)
}

/* -------------------- Folder handling -------------------- */

func (c *controller) onSelectFolder() {
	dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		c.loadFolder(uri.Path())
	}, c.win).Show()
}

func (c *controller) onRefresh() {
	if c.state.Folder == "" {
		return
	}
	c.loadFolder(c.state.Folder)
}

func (c *controller) loadFolder(path string) {
	entries, err := scan.List(path)
	if err != nil {
		dialog.ShowError(err, c.win)
		return
	}
	logging.L().Info("folder scanned",
		zap.String("folder", path),
		zap.Int("files", len(entries)))

	c.state = c.state.WithFolder(path, entries)
	c.folderLabel.SetText("Folder: " + path)
	c.page = 0
	c.refreshButtons()
	c.render()
}

/* -------------------- Filters form -------------------- */

func (c *controller) matchModeSelect() *widget.Select {
	sel := widget.NewSelect([]string{"Match ALL (AND)", "Match ANY (OR)"}, func(s string) {
		c.matchAll = s == "Match ALL (AND)"
		c.invalidate()
	})
	sel.SetSelected("Match ALL (AND)")
	return sel
}

func (c *controller) onAddFilter() {
	c.nextFilterID++
	c.filters = append(c.filters, scan.Filter{ID: c.nextFilterID, Mode: scan.FilterContains})
	c.renderFilters()
	c.invalidate()
}

func (c *controller) onClearFilters() {
	c.filters = nil
	c.renderFilters()
	c.invalidate()
}

func (c *controller) renderFilters() {
	c.filtersBox.Objects = nil
	if len(c.filters) == 0 {
		c.filtersBox.Add(widget.NewLabel("No filters. Add one to narrow down files."))
		c.filtersBox.Refresh()
		return
	}

	modeNames := make([]string, len(scan.FilterModes))
	for i, m := range scan.FilterModes {
		modeNames[i] = string(m)
	}

	for _, f := range c.filters {
		fid := f.ID

		modeSel := widget.NewSelect(modeNames, func(s string) {
			for i := range c.filters {
				if c.filters[i].ID == fid {
					c.filters[i].Mode = scan.FilterMode(s)
					break
				}
			}
			c.invalidate()
		})
		modeSel.SetSelected(string(f.Mode))

		val := widget.NewEntry()
		val.SetText(f.Value)
		val.SetPlaceHolder(`value… e.g. Photo, jpg`)
		val.OnChanged = func(s string) {
			for i := range c.filters {
				if c.filters[i].ID == fid {
					c.filters[i].Value = s
					break
				}
			}
			c.invalidate()
		}

		removeBtn := widget.NewButton("✕", func() {
			next := make([]scan.Filter, 0, len(c.filters))
			for _, x := range c.filters {
				if x.ID != fid {
					next = append(next, x)
				}
			}
			c.filters = next
			c.renderFilters()
			c.invalidate()
		})

		c.filtersBox.Add(container.NewBorder(nil, nil, nil, removeBtn,
			container.NewGridWithColumns(2, modeSel, val),
		))
	}
	c.filtersBox.Refresh()
}

/* -------------------- Rules form -------------------- */

func (c *controller) onAddRule() {
	c.nextRuleID++
	c.ruleInputs = append(c.ruleInputs, ruleInput{id: c.nextRuleID, op: engine.OpReplaceText})
	c.renderRules()
	c.invalidate()
}

func (c *controller) onClearRules() {
	c.ruleInputs = nil
	c.renderRules()
	c.invalidate()
}

func (c *controller) rules() []engine.Rule {
	out := make([]engine.Rule, 0, len(c.ruleInputs))
	for _, r := range c.ruleInputs {
		out = append(out, engine.Rule{Op: r.op, A: r.a, B: r.b})
	}
	return out
}

func (c *controller) renderRules() {
	c.rulesBox.Objects = nil
	if len(c.ruleInputs) == 0 {
		c.rulesBox.Add(widget.NewLabel("No rules. Add one to preview name changes."))
		c.rulesBox.Refresh()
		return
	}

	opNames := make([]string, len(engine.Ops))
	for i, op := range engine.Ops {
		opNames[i] = string(op)
	}

	for _, r := range c.ruleInputs {
		rid := r.id

		a := widget.NewEntry()
		a.SetText(r.a)
		b := widget.NewEntry()
		b.SetText(r.b)

		configureEntries := func(op engine.Op, a, b *widget.Entry) {
			a.Enable()
			b.Disable()
			switch op {
			case engine.OpAddPrefix:
				a.SetPlaceHolder("prefix (e.g. NEW_)")
			case engine.OpAddSuffix:
				a.SetPlaceHolder("suffix (e.g. _v2)")
			case engine.OpReplaceText:
				a.SetPlaceHolder("find")
				b.SetPlaceHolder("replace with")
				b.Enable()
			case engine.OpRemoveText:
				a.SetPlaceHolder("text to remove")
			case engine.OpChangeExtension:
				a.SetPlaceHolder("new ext (e.g. jpg or .jpg)")
			default:
				a.SetPlaceHolder("(no input needed)")
				a.Disable()
			}
		}

		opSel := widget.NewSelect(opNames, func(s string) {
			for i := range c.ruleInputs {
				if c.ruleInputs[i].id == rid {
					c.ruleInputs[i].op = engine.Op(s)
					break
				}
			}
			configureEntries(engine.Op(s), a, b)
			c.invalidate()
		})
		opSel.SetSelected(string(r.op))
		configureEntries(r.op, a, b)

		a.OnChanged = func(v string) {
			for i := range c.ruleInputs {
				if c.ruleInputs[i].id == rid {
					c.ruleInputs[i].a = v
					break
				}
			}
			c.invalidate()
		}
		b.OnChanged = func(v string) {
			for i := range c.ruleInputs {
				if c.ruleInputs[i].id == rid {
					c.ruleInputs[i].b = v
					break
				}
			}
			c.invalidate()
		}

		removeBtn := widget.NewButton("✕", func() {
			next := make([]ruleInput, 0, len(c.ruleInputs))
			for _, x := range c.ruleInputs {
				if x.id != rid {
					next = append(next, x)
				}
			}
			c.ruleInputs = next
			c.renderRules()
			c.invalidate()
		})

		c.rulesBox.Add(container.NewBorder(nil, nil, nil, removeBtn,
			container.NewVBox(opSel, container.NewGridWithColumns(2, a, b)),
		))
		c.rulesBox.Add(widget.NewSeparator())
	}
	c.rulesBox.Refresh()
}

/* -------------------- Preview / Apply -------------------- */

func (c *controller) onPreview() {
	if c.state.Folder == "" {
		dialog.ShowInformation("No folder", "Select a folder first.", c.win)
		return
	}

	rules := c.rules()
	if err := engine.Validate(rules); err != nil {
		dialog.ShowError(err, c.win)
		return
	}

	c.state = c.state.WithFilters(c.filters).WithRules(rules)
	selected := c.state.Selected(c.matchAll, c.caseSensitive)
	p := plan.Build(selected, rules)
	c.state = c.state.WithPlan(p)

	sum := plan.Summarize(p)
	logging.L().Info("plan previewed",
		zap.Int("files", sum.Total),
		zap.Int("renamable", sum.Renamable),
		zap.Int("conflicts", len(sum.Duplicates)+len(sum.Exists)+len(sum.Illegal)))

	c.page = 0
	c.refreshButtons()
	c.render()
}

func (c *controller) onApply() {
	if !c.state.CanCommit() {
		dialog.ShowInformation("Nothing to do", "Preview first; at least one file must rename cleanly.", c.win)
		return
	}

	sum := plan.Summarize(c.state.Plan)
	confirm := dialog.NewCustomConfirm("Confirm rename", "Proceed", "Cancel",
		container.NewVScroll(widget.NewLabel(confirmMessage(sum))),
		func(ok bool) {
			if !ok {
				return
			}
			rep := plan.Commit(c.state.Plan)
			c.state = c.state.WithReport(rep)
			c.refreshButtons()
			c.render()

			dialog.ShowInformation("Rename complete", resultMessage(rep), c.win)

			// Re-scan so the preview reflects the new on-disk names.
			c.loadFolder(c.state.Folder)
		},
		c.win,
	)
	confirm.Resize(fyne.NewSize(700, 420))
	confirm.Show()
}

func confirmMessage(sum plan.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are about to process %d file(s).\n", sum.Total)
	fmt.Fprintf(&b, "Will rename: %d\n", sum.Renamable)
	fmt.Fprintf(&b, "Unchanged (skipped): %d\n\n", sum.Unchanged)

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		b.WriteString(title + "\n")
		for _, s := range firstN(lines, 20) {
			b.WriteString(" - " + s + "\n")
		}
		if len(lines) > 20 {
			fmt.Fprintf(&b, " ... and %d more\n", len(lines)-20)
		}
		b.WriteString("\n")
	}
	section("Invalid names (skipped):", sum.Illegal)
	section("Duplicate targets (skipped):", sum.Duplicates)
	section("Target already exists (skipped):", sum.Exists)

	b.WriteString("Proceed?")
	return b.String()
}

func resultMessage(rep plan.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Renamed: %d\nUnchanged: %d\nSkipped: %d\nFailed: %d\n",
		rep.Renamed, rep.Unchanged, rep.Skipped, rep.Failed)
	for _, r := range rep.Results {
		if r.Kind == plan.ResultFailed {
			b.WriteString("\n✕ " + r.Err.Error())
		}
	}
	return b.String()
}

/* -------------------- Rendering -------------------- */

// invalidate drops the current plan after any input change.
func (c *controller) invalidate() {
	c.state = c.state.WithFilters(c.filters).WithRules(c.rules())
	c.page = 0
	c.refreshButtons()
	c.render()
}

func (c *controller) refreshButtons() {
	if c.state.CanCommit() {
		c.applyBtn.Enable()
	} else {
		c.applyBtn.Disable()
	}
}

func (c *controller) render() {
	type row struct {
		orig string
		prev string
		warn string
	}

	var rows []row
	if c.state.Phase == session.PhasePreviewed || c.state.Phase == session.PhaseCommitted {
		for _, e := range c.state.Plan {
			r := row{orig: e.Source.Name, prev: e.Proposed}
			if e.Status != plan.StatusOk {
				r.warn = "  ⚠ " + string(e.Status)
			} else if !e.Changed() {
				r.warn = "  (unchanged)"
			}
			rows = append(rows, r)
		}
	} else {
		for _, e := range c.state.Selected(c.matchAll, c.caseSensitive) {
			rows = append(rows, row{orig: e.Name, prev: "(preview to compute)"})
		}
	}

	total := len(rows)
	pages := pageCount(total, pageSize)
	c.page = clamp(c.page, 0, pages-1)
	start := c.page * pageSize
	end := min(start+pageSize, total)

	switch {
	case c.state.Folder == "":
		c.resultsHeader.SetText("No folder selected.")
	case total == 0:
		c.resultsHeader.SetText(fmt.Sprintf("No matches (0 of %d files).", len(c.state.Entries)))
	default:
		c.resultsHeader.SetText(fmt.Sprintf("Showing %d–%d of %d matches (%d total files).",
			start+1, end, total, len(c.state.Entries)))
	}
	c.pageLabel.SetText(fmt.Sprintf("Page %d/%d", c.page+1, pages))

	c.prevBtn.Disable()
	c.nextBtn.Disable()
	if c.page > 0 && total > 0 {
		c.prevBtn.Enable()
	}
	if c.page < pages-1 && total > 0 {
		c.nextBtn.Enable()
	}

	c.previewBox.Objects = nil
	h1 := widget.NewLabelWithStyle("Original", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	h2 := widget.NewLabelWithStyle("Proposed", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	c.previewBox.Add(container.NewGridWithColumns(2, h1, h2))
	c.previewBox.Add(widget.NewSeparator())

	for _, r := range rows[start:end] {
		c.previewBox.Add(container.NewGridWithColumns(2,
			makeCell(r.orig),
			makeCell(r.prev+r.warn),
		))
		c.previewBox.Add(widget.NewSeparator())
	}
	c.previewBox.Refresh()
}

func makeCell(text string) *widget.RichText {
	rt := widget.NewRichText(&widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			SizeName: theme.SizeNameCaptionText,
		},
	})
	rt.Wrapping = fyne.TextWrapWord
	return rt
}

/* -------------------- Paging helpers -------------------- */

func pageCount(total, pageSize int) int {
	if pageSize <= 0 || total == 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func firstN[T any](in []T, n int) []T {
	if len(in) <= n {
		return in
	}
	return in[:n]
}
