package model

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/lexhub-io/lexadmin/pkg/schema"
	"github.com/lexhub-io/lexadmin/pkg/text"
	"github.com/lexhub-io/lexadmin/pkg/types/v1"
	"github.com/lexhub-io/lexadmin/pkg/ui"
)

const statusBarHeight = 1

var (
	statusBarNoteFg = lib.NewColorPair("#7D7D7D", "#656565")
	statusBarBg     = lib.NewColorPair("#242424", "#E6E6E6")

	statusBarScrollPosStyle = ui.NewStyle(lib.NewColorPair("#5A5A5A", "#949494"), statusBarBg, false)
	statusBarNoteStyle      = ui.NewStyle(statusBarNoteFg, statusBarBg, false)
	statusBarHelpStyle      = ui.NewStyle(statusBarNoteFg, lib.NewColorPair("#323232", "#DCDCDC"), false)
	helpViewStyle           = ui.NewStyle(statusBarNoteFg, lib.NewColorPair("#1B1B1B", "#f2f2f2"), false)
)

type contentRenderedMsg string

// detailModel renders one record as a scrollable glamour document.
type detailModel struct {
	common   *commonModel
	schema   *schema.Schema
	record   v1.Record
	viewport viewport.Model
}

func newDetailModel(common *commonModel, sch *schema.Schema, rec v1.Record) *detailModel {
	vp := viewport.Model{}
	vp.YPosition = 0
	vp.Width = common.width
	vp.Height = common.height - statusBarHeight

	return &detailModel{
		common:   common,
		schema:   sch,
		record:   rec,
		viewport: vp,
	}
}

func (m *detailModel) setSize(w, h int) {
	m.viewport.Width = w
	m.viewport.Height = h - statusBarHeight
}

// asMarkdown lays the record out as a document for glamour.
func (m *detailModel) asMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", m.schema.Icon, m.record.Display())
	if s := m.record.Summary(); s != "" {
		fmt.Fprintf(&b, "%s\n\n", s)
	}

	fields := m.record.Fields()
	for _, f := range m.schema.Fields {
		value := fields[f.Key]
		if value == "" {
			value = "—"
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", f.Label, value)
	}

	// Expiring subscriptions get a business-day countdown.
	if v := fields["expires_at"]; v != "" {
		if deadline, err := text.ParseDate(v); err == nil {
			fmt.Fprintf(&b, "\n%s\n", text.DeadlineLabel(deadline))
		}
	}

	fmt.Fprintf(&b, "\n`%s/%s`\n", m.schema.Path, m.record.Identifier())
	return b.String()
}

func (m *detailModel) rerenderCmd() tea.Cmd {
	md := m.asMarkdown()
	width := maxInt(0, m.viewport.Width)
	return func() tea.Msg {
		s, err := glamourRender(md, width)
		if err != nil {
			log.Println("error rendering with Glamour:", err)
			return contentRenderedMsg(md)
		}
		return contentRenderedMsg(s)
	}
}

func (m *detailModel) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "backspace":
			return func() tea.Msg { return closeDetailMsg{} }
		case "home", "g":
			m.viewport.GotoTop()
		case "end", "G":
			m.viewport.GotoBottom()
		}

	case contentRenderedMsg:
		m.viewport.SetContent(string(msg))
		return nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

func (m *detailModel) view() string {
	var b strings.Builder
	fmt.Fprint(&b, m.viewport.View()+"\n")
	m.statusBarView(&b)
	return b.String()
}

func (m *detailModel) statusBarView(b *strings.Builder) {
	const (
		minPercent               float64 = 0.0
		maxPercent               float64 = 1.0
		percentToStringMagnitude float64 = 100.0
	)

	logo := logoView(fmt.Sprintf(" %s ", m.schema.Singular))

	percent := math.Max(minPercent, math.Min(maxPercent, m.viewport.ScrollPercent()))
	scrollPercent := statusBarScrollPosStyle(fmt.Sprintf(" %3.f%% ", percent*percentToStringMagnitude))

	helpNote := statusBarHelpStyle(" esc Back ")

	note := truncate.StringWithTail(" "+m.record.Display()+" ", uint(maxInt(0,
		m.common.width-
			ansi.PrintableRuneWidth(logo)-
			ansi.PrintableRuneWidth(scrollPercent)-
			ansi.PrintableRuneWidth(helpNote),
	)), ellipsis)
	note = statusBarNoteStyle(note)

	padding := maxInt(0,
		m.common.width-
			ansi.PrintableRuneWidth(logo)-
			ansi.PrintableRuneWidth(note)-
			ansi.PrintableRuneWidth(scrollPercent)-
			ansi.PrintableRuneWidth(helpNote),
	)
	emptySpace := statusBarNoteStyle(strings.Repeat(" ", padding))

	fmt.Fprintf(b, "%s%s%s%s%s",
		logo,
		note,
		emptySpace,
		scrollPercent,
		helpNote,
	)
}

// This is where the magic happens.
func glamourRender(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", err
	}

	// trim lines
	lines := strings.Split(out, "\n")

	var content string
	for i, s := range lines {
		content += strings.TrimSpace(s)

		// don't add an artificial newline after the last split
		if i+1 < len(lines) {
			content += "\n"
		}
	}

	return content, nil
}
