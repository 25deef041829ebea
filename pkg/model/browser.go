package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/lexhub-io/lexadmin/pkg/controller"
	"github.com/lexhub-io/lexadmin/pkg/query"
	"github.com/lexhub-io/lexadmin/pkg/schema"
	"github.com/lexhub-io/lexadmin/pkg/types/v1"
	"github.com/lexhub-io/lexadmin/pkg/workflow"
)

const (
	browserIndent            = 1
	browserViewItemHeight    = 3 // height of one row, including gap
	browserViewTopPadding    = 5 // logo, header, gaps
	browserViewBottomPadding = 3 // pagination and gaps, but not help
	browserHorizontalPadding = 6

	statusMessageTimeout = time.Second * 3
	searchCharacterLimit = 256
	ellipsis             = "…"
)

var (
	searchPromptStyle styleFunc = newFgStyle(lib.YellowGreen)
	dividerDot        string    = darkGrayFg(" • ")
	dividerBar        string    = darkGrayFg(" │ ")
)

// browserViewState is the high-level state of one management screen.
type browserViewState int

const (
	browserStateReady browserViewState = iota
	browserStateShowingError
)

// statusMessageType adds some context to the status message being sent.
type statusMessageType int

const (
	normalStatusMessage statusMessageType = iota
	subtleStatusMessage
	errorStatusMessage
)

// statusMessage is an ephemeral note displayed in the UI.
type statusMessage struct {
	status  statusMessageType
	message string
}

// String returns a styled version of the status message appropriate for the
// given context.
func (s statusMessage) String() string {
	switch s.status {
	case subtleStatusMessage:
		return dimGreenFg(s.message)
	case errorStatusMessage:
		return redFg(s.message)
	default:
		return greenFg(s.message)
	}
}

type browserModel struct {
	common *commonModel
	schema *schema.Schema

	ctrl     *controller.Controller
	wf       *workflow.Workflow
	debounce *query.Debouncer

	spinner     spinner.Model
	searchInput textinput.Model
	paginator   paginator.Model
	cursor      int

	viewState browserViewState
	searching bool // user is editing the search input
	started   bool // has the first fetch been issued?

	// pendingFilter is a filter edit waiting out the debounce window; it is
	// only committed to the query once input has settled.
	pendingFilter *string

	form *formModel

	showStats bool
	stats     map[string]interface{}
	statsErr  error

	showFullHelp       bool
	showStatusMessage  bool
	statusMessage      statusMessage
	statusMessageTimer *time.Timer

	err error
}

func newBrowserModel(common *commonModel, sch *schema.Schema) *browserModel {
	sp := spinner.NewModel()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(fuschia)
	sp.HideFor = time.Millisecond * 100
	sp.MinimumLifetime = time.Millisecond * 180
	sp.Start()

	si := textinput.NewModel()
	si.Prompt = searchPromptStyle("Find: ")
	si.CursorStyle = lipgloss.NewStyle().Foreground(fuschia)
	si.CharLimit = searchCharacterLimit
	si.Focus()

	p := paginator.NewModel()
	p.Type = paginator.Dots
	p.ActiveDot = brightGrayFg("•")
	p.InactiveDot = darkGrayFg("•")

	return &browserModel{
		common:      common,
		schema:      sch,
		ctrl:        controller.New(common.cfg.PageLimit),
		wf:          workflow.New(sch, common.client),
		debounce:    query.NewDebouncer(common.cfg.DebounceWindow),
		spinner:     sp,
		searchInput: si,
		paginator:   p,
	}
}

func (b *browserModel) setSize(width, height int) {
	b.searchInput.Width = width - browserHorizontalPadding*2 - ansi.PrintableRuneWidth(b.searchInput.Prompt)
	if b.form != nil {
		b.form.setSize(width, height)
	}
}

// capturesKeys reports whether plain keystrokes are being consumed by a
// text input, in which case global shortcuts must not fire.
func (b *browserModel) capturesKeys() bool {
	return b.searching || b.form != nil
}

func (b *browserModel) currentRecord() v1.Record {
	records := b.ctrl.Records()
	if len(records) == 0 || b.cursor < 0 || b.cursor >= len(records) {
		return nil
	}
	return records[b.cursor]
}

// refresh stamps and issues a fetch for the current query.
func (b *browserModel) refresh() tea.Cmd {
	b.started = true
	fetch := b.ctrl.StartFetch()
	return tea.Batch(b.common.fetchList(b.schema, fetch), spinner.Tick)
}

func (b *browserModel) newStatusMessage(sm statusMessage) tea.Cmd {
	b.showStatusMessage = true
	b.statusMessage = sm
	if b.statusMessageTimer != nil {
		b.statusMessageTimer.Stop()
	}
	b.statusMessageTimer = time.NewTimer(statusMessageTimeout)
	return waitForStatusMessageTimeout(b.schema.Resource, b.statusMessageTimer)
}

func (b *browserModel) hideStatusMessage() {
	b.showStatusMessage = false
	b.statusMessage = statusMessage{}
	if b.statusMessageTimer != nil {
		b.statusMessageTimer.Stop()
	}
}

// syncPagination mirrors the server-reported page math into the paginator,
// which is only used for display.
func (b *browserModel) syncPagination() {
	meta := b.ctrl.Meta()
	b.paginator.PerPage = b.common.cfg.PageLimit
	b.paginator.TotalPages = meta.TotalPages
	b.paginator.Page = b.ctrl.Query().Page() - 1

	if max := len(b.ctrl.Records()) - 1; b.cursor > max {
		b.cursor = maxInt(0, max)
	}
}

// UPDATE

func (b *browserModel) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case listResultMsg:
		applied, refetch := b.ctrl.Apply(msg.epoch, msg.records, msg.meta, msg.err)
		if !applied {
			return nil
		}
		b.spinner.Finish()
		if msg.err != nil {
			b.err = msg.err
			return b.newStatusMessage(statusMessage{errorStatusMessage, msg.err.Error()})
		}
		b.err = nil
		b.syncPagination()
		if refetch {
			// The page was clamped into range; fetch the real last page.
			return b.refresh()
		}
		return nil

	case statsResultMsg:
		b.stats = msg.stats
		b.statsErr = msg.err
		return nil

	case debounceSettledMsg:
		if !b.debounce.Settle(msg.token) {
			return nil
		}
		changed := b.ctrl.Query().SetSearch(b.searchInput.Value())
		if b.pendingFilter != nil && len(b.schema.Filters) > 0 {
			if b.ctrl.Query().SetFilter(b.schema.Filters[0].Key, *b.pendingFilter) {
				changed = true
			}
			b.pendingFilter = nil
		}
		if changed {
			b.cursor = 0
			return b.refresh()
		}
		return nil

	case savedMsg:
		b.form = nil
		b.wf.Close()
		verb := "Updated"
		if msg.created {
			verb = "Created"
		}
		cmds = append(cmds,
			b.newStatusMessage(statusMessage{normalStatusMessage, fmt.Sprintf("%s %s", verb, msg.record.Display())}),
			b.refresh(),
		)
		return tea.Batch(cmds...)

	case deletedMsg:
		cmds = append(cmds,
			b.newStatusMessage(statusMessage{normalStatusMessage, fmt.Sprintf("Deleted %s %s", b.schema.Singular, msg.id)}),
			b.refresh(),
		)
		return tea.Batch(cmds...)

	case mutationFailedMsg:
		if b.form != nil {
			// Keep the form open with the draft intact.
			b.form.fail(msg.err)
			return nil
		}
		return b.newStatusMessage(statusMessage{errorStatusMessage, msg.err.Error()})

	case uploadResultMsg:
		// Surfaced here when the upload view has already been dismissed.
		if msg.err != nil {
			return b.newStatusMessage(statusMessage{errorStatusMessage, msg.err.Error()})
		}
		return b.newStatusMessage(statusMessage{normalStatusMessage, fmt.Sprintf("Created case %s from upload", msg.result.CaseID)})

	case spinner.TickMsg:
		if b.ctrl.Loading() || b.debounce.Pending() || b.spinner.Visible() {
			newSpinnerModel, cmd := b.spinner.Update(msg)
			b.spinner = newSpinnerModel
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)

	case statusMessageTimeoutMsg:
		b.hideStatusMessage()
		return nil

	case formClosedMsg:
		b.form = nil
		return nil
	}

	if b.form != nil {
		return b.form.update(msg)
	}

	if b.wf.Mode() == workflow.ModeConfirmDelete {
		return b.handleDeleteConfirmation(msg)
	}

	if b.searching {
		return b.handleSearching(msg)
	}

	switch b.viewState {
	case browserStateReady:
		cmds = append(cmds, b.handleBrowsing(msg))
	case browserStateShowingError:
		// Any key exits the error view
		if _, ok := msg.(tea.KeyMsg); ok {
			b.viewState = browserStateReady
		}
	}

	return tea.Batch(cmds...)
}

// Updates for when a user is browsing the record listing.
func (b *browserModel) handleBrowsing(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "k", "ctrl+k", "up":
			if b.cursor > 0 {
				b.cursor--
			}

		case "j", "ctrl+j", "down":
			if b.cursor < len(b.ctrl.Records())-1 {
				b.cursor++
			}

		// Page turns ask the server; the query keeps search and filters.
		case "[", "left", "pgup":
			if b.ctrl.Query().SetPage(b.ctrl.Query().Page() - 1) {
				b.cursor = 0
				cmds = append(cmds, b.refresh())
			}

		case "]", "right", "pgdown":
			if b.ctrl.Query().Page() < b.ctrl.Meta().TotalPages &&
				b.ctrl.Query().SetPage(b.ctrl.Query().Page()+1) {
				b.cursor = 0
				cmds = append(cmds, b.refresh())
			}

		case "home", "g":
			if b.ctrl.Query().SetPage(1) {
				b.cursor = 0
				cmds = append(cmds, b.refresh())
			}

		case "end", "G":
			if b.ctrl.Query().SetPage(b.ctrl.Meta().TotalPages) {
				b.cursor = 0
				cmds = append(cmds, b.refresh())
			}

		case "esc":
			if b.ctrl.Query().Filtered() {
				cmds = append(cmds, b.clearQuery())
				break
			}
			return func() tea.Msg { return backToHomeMsg{} }

		// Search the listing
		case "/":
			b.hideStatusMessage()
			b.searching = true
			b.searchInput.CursorEnd()
			b.searchInput.Focus()
			return textinput.Blink

		// Cycle the declared filter through its options
		case "f":
			if cmd := b.cycleFilter(); cmd != nil {
				cmds = append(cmds, cmd)
			}

		case "F":
			cmds = append(cmds, b.clearQuery())

		case "n":
			b.hideStatusMessage()
			b.wf.OpenCreate()
			b.form = newFormModel(b.common, b.schema, b.wf)
			return textinput.Blink

		case "e":
			rec := b.currentRecord()
			if rec == nil {
				break
			}
			b.hideStatusMessage()
			b.wf.OpenEdit(rec)
			b.form = newFormModel(b.common, b.schema, b.wf)
			return textinput.Blink

		case "x":
			rec := b.currentRecord()
			if rec == nil {
				break
			}
			b.hideStatusMessage()
			b.wf.OpenDelete(rec)

		case "enter", "v":
			rec := b.currentRecord()
			if rec == nil {
				break
			}
			b.hideStatusMessage()
			sch := b.schema
			return func() tea.Msg { return openDetailMsg{schema: sch, record: rec} }

		case "i":
			if b.schema.StatsPath == "" {
				break
			}
			b.showStats = !b.showStats
			if b.showStats {
				cmds = append(cmds, b.common.fetchStats(b.schema))
			}

		case "u":
			if b.schema.Resource == "cases" && b.common.inbox != nil {
				return func() tea.Msg { return openUploadMsg{} }
			}

		case "r":
			cmds = append(cmds, b.refresh())

		case "?":
			b.showFullHelp = !b.showFullHelp

		case "!":
			if b.err != nil {
				b.viewState = browserStateShowingError
				return nil
			}
		}
	}

	return tea.Batch(cmds...)
}

// Updates for when a user is being prompted whether or not to delete a
// record.
func (b *browserModel) handleDeleteConfirmation(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			del, ok := b.wf.ConfirmDelete()
			if !ok {
				break
			}
			b.wf.Close()
			return tea.Batch(
				b.common.delete(b.wf, b.schema.Resource, del),
				spinner.Tick,
			)

		// Any other key cancels deletion
		default:
			b.wf.Close()
		}
	}
	return nil
}

// Updates for when a user is editing the search input. Every edit arms the
// debouncer; the fetch is only committed once input has settled.
func (b *browserModel) handleSearching(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			b.searching = false
			b.searchInput.Reset()
			if b.ctrl.Query().SetSearch("") {
				cmds = append(cmds, b.refresh())
			}
			return tea.Batch(cmds...)
		case "enter", "tab", "ctrl+k", "up", "ctrl+j", "down":
			// Leave the input; the committed search stays applied.
			b.searching = false
			b.searchInput.Blur()
			return nil
		}
	}

	newSearchInput, inputCmd := b.searchInput.Update(msg)
	changed := newSearchInput.Value() != b.searchInput.Value()
	b.searchInput = newSearchInput
	cmds = append(cmds, inputCmd)

	if changed {
		token := b.debounce.Trigger()
		cmds = append(cmds, settleCmd(b.schema.Resource, token, b.debounce.Window()), spinner.Tick)
	}

	return tea.Batch(cmds...)
}

// cycleFilter advances the screen's first declared filter through
// unset -> each option -> unset. Like search edits, filter edits sit in
// the debounce window so rapid cycling commits a single fetch.
func (b *browserModel) cycleFilter() tea.Cmd {
	if len(b.schema.Filters) == 0 {
		return nil
	}
	f := b.schema.Filters[0]

	current := b.ctrl.Query().Filter(f.Key)
	if b.pendingFilter != nil {
		current = *b.pendingFilter
	}
	next := ""
	for i, o := range f.Options {
		if o.Value == current {
			if i+1 < len(f.Options) {
				next = f.Options[i+1].Value
			}
			break
		}
		if current == "" {
			next = f.Options[0].Value
			break
		}
	}

	b.pendingFilter = &next
	token := b.debounce.Trigger()
	return tea.Batch(settleCmd(b.schema.Resource, token, b.debounce.Window()), spinner.Tick)
}

// clearQuery drops search text and every filter in one go.
func (b *browserModel) clearQuery() tea.Cmd {
	changed := b.ctrl.Query().SetSearch("")
	b.searchInput.Reset()
	b.pendingFilter = nil
	for key := range b.ctrl.Query().Filters() {
		if b.ctrl.Query().SetFilter(key, "") {
			changed = true
		}
	}
	if changed {
		b.cursor = 0
		return b.refresh()
	}
	return nil
}

// VIEW

func (b *browserModel) view() string {
	if b.viewState == browserStateShowingError {
		return errorView(b.err, false)
	}

	if b.form != nil {
		return b.form.view()
	}

	var s string

	loadingIndicator := " "
	if b.ctrl.Loading() || b.debounce.Pending() || b.spinner.Visible() {
		loadingIndicator = b.spinner.View()
	}

	var header string
	if b.wf.Mode() == workflow.ModeConfirmDelete {
		subject := ""
		if rec := b.wf.Subject(); rec != nil {
			subject = rec.Display()
		}
		header = redFg(fmt.Sprintf("Delete %s? ", subject)) + faintRedFg("(y/N)")
	} else {
		header = b.headerView()
	}

	// Rules for the logo, search input and status message.
	logoOrSearch := " "
	if b.showStatusMessage && b.searching {
		logoOrSearch += b.statusMessage.String()
	} else if b.searching {
		logoOrSearch += b.searchInput.View()
	} else {
		logoOrSearch += logoView(fmt.Sprintf(" %s %s ", b.schema.Icon, b.schema.Title))
		if b.showStatusMessage {
			logoOrSearch += "  " + b.statusMessage.String()
		}
	}
	logoOrSearch = truncate.StringWithTail(logoOrSearch, uint(b.common.width-1), ellipsis)

	help, helpHeight := b.helpView()

	populatedView := b.populatedView()
	populatedViewHeight := strings.Count(populatedView, "\n") + 2

	// We need to fill any empty height with newlines so the footer reaches
	// the bottom.
	availHeight := b.common.height -
		browserViewTopPadding -
		populatedViewHeight -
		helpHeight -
		browserViewBottomPadding
	blankLines := strings.Repeat("\n", maxInt(0, availHeight))

	var pagination string
	if b.paginator.TotalPages > 1 {
		pagination = b.paginator.View()

		// If the dot pagination is wider than the width of the window
		// use the arabic paginator.
		if ansi.PrintableRuneWidth(pagination) > b.common.width-browserHorizontalPadding {
			var p paginator.Model = b.paginator
			p.Type = paginator.Arabic
			pagination = lib.Subtle(p.View())
		}
	}

	if b.showStats {
		populatedView = b.statsView() + "\n\n" + populatedView
	}

	s += fmt.Sprintf(
		"%s%s\n\n  %s\n\n%s\n\n%s  %s\n\n%s",
		loadingIndicator,
		logoOrSearch,
		header,
		populatedView,
		blankLines,
		pagination,
		help,
	)

	return "\n" + indent(s, browserIndent)
}

func (b *browserModel) headerView() string {
	meta := b.ctrl.Meta()
	q := b.ctrl.Query()

	var sections []string

	if b.ctrl.Empty() {
		if q.Filtered() {
			return grayFg("Nothing found.")
		}
		return lib.Subtle(fmt.Sprintf("No %s yet", b.schema.Resource))
	}

	total := fmt.Sprintf("%d %s", meta.Total, b.schema.Resource)
	if q.Search() != "" {
		total = fmt.Sprintf("%d “%s”", meta.Total, q.Search())
	}
	sections = append(sections, selectedTabColor(total))

	for key, value := range q.Filters() {
		sections = append(sections, tabColor(fmt.Sprintf("%s: %s", key, value)))
	}

	if meta.TotalPages > 1 {
		sections = append(sections, grayFg(fmt.Sprintf("page %d of %d", q.Page(), meta.TotalPages)))
	}

	return strings.Join(sections, dividerBar)
}

func (b *browserModel) populatedView() string {
	records := b.ctrl.Records()

	var bld strings.Builder

	if len(records) == 0 {
		f := func(s string) {
			bld.WriteString("  " + grayFg(s))
		}
		switch {
		case !b.started || b.ctrl.Loading():
			f("Loading...")
		case b.ctrl.Query().Filtered():
			f("No matching records. Press esc to clear the search.")
		default:
			f(fmt.Sprintf("No %s found. Press n to create one.", b.schema.Resource))
		}
		return bld.String()
	}

	for i, rec := range records {
		rowView(&bld, b, i, rec)
		if i != len(records)-1 {
			fmt.Fprintf(&bld, "\n\n")
		}
	}

	// If there aren't enough items to fill up this page (always the last
	// page) then we need to add some newlines to fill up the space where
	// rows would have been.
	if len(records) < b.common.cfg.PageLimit {
		n := (b.common.cfg.PageLimit - len(records)) * browserViewItemHeight
		for i := 0; i < n; i++ {
			fmt.Fprint(&bld, "\n")
		}
	}

	return bld.String()
}

func (b *browserModel) helpView() (string, int) {
	if !b.showFullHelp {
		h := grayFg("/ search") + dividerDot + grayFg("n new") + dividerDot + grayFg("e edit") + dividerDot +
			grayFg("x delete") + dividerDot + grayFg("? more")
		return indent(h, 2), 1
	}

	h := strings.Join([]string{
		"k/↑      up                  n  new       /  search",
		"j/↓      down                e  edit      f  cycle filter",
		"[/]      previous/next page  x  delete    F  clear filters",
		"g/G      first/last page     v  view      i  stats",
		"esc      back                r  reload    q  quit",
	}, "\n")
	h = indent(h, 2)

	// Fill up empty cells with spaces for background coloring
	if b.common.width > 0 {
		lines := strings.Split(h, "\n")
		for i := 0; i < len(lines); i++ {
			l := runewidth.StringWidth(lines[i])
			n := maxInt(b.common.width-l, 0)
			lines[i] += strings.Repeat(" ", n)
		}
		h = strings.Join(lines, "\n")
	}

	return helpViewStyle(h), strings.Count(h, "\n") + 1
}
