package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"

	"github.com/lexhub-io/lexadmin/pkg/text"
	"github.com/lexhub-io/lexadmin/pkg/upload"
)

// uploadModel lists the local inbox and pushes the selected document
// through the case ingestion endpoint.
type uploadModel struct {
	common *commonModel

	docs      []upload.Document
	cursor    int
	uploading string // path in flight, empty when idle
	spinner   spinner.Model

	lastResult *upload.Result
	err        error
}

func newUploadModel(common *commonModel) *uploadModel {
	sp := spinner.NewModel()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(fuschia)
	sp.HideFor = time.Millisecond * 50
	sp.MinimumLifetime = time.Millisecond * 180

	return &uploadModel{
		common:  common,
		docs:    common.inbox.Documents(),
		spinner: sp,
	}
}

func (m *uploadModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.uploading != "" {
			return nil
		}
		switch msg.String() {
		case "esc", "q":
			return func() tea.Msg { return closeUploadMsg{} }

		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}

		case "j", "down":
			if m.cursor < len(m.docs)-1 {
				m.cursor++
			}

		case "r":
			m.docs = m.common.inbox.Documents()
			m.cursor = 0
			m.err = nil

		case "enter", "u":
			if len(m.docs) == 0 {
				break
			}
			doc := m.docs[m.cursor]
			if err := upload.Validate(doc.Path); err != nil {
				m.err = err
				break
			}
			m.err = nil
			m.uploading = doc.Path
			return tea.Batch(m.common.uploadDocument(doc.Path), spinner.Tick)
		}

	case uploadResultMsg:
		m.uploading = ""
		if msg.err != nil {
			m.err = msg.err
			return nil
		}
		m.lastResult = msg.result
		m.common.inbox.Forget(msg.path)
		m.docs = m.common.inbox.Documents()
		if m.cursor >= len(m.docs) {
			m.cursor = maxInt(0, len(m.docs)-1)
		}
		return nil

	case spinner.TickMsg:
		if m.uploading != "" || m.spinner.Visible() {
			newSpinnerModel, cmd := m.spinner.Update(msg)
			m.spinner = newSpinnerModel
			return cmd
		}
	}

	return nil
}

func (m *uploadModel) view() string {
	var b strings.Builder

	indicator := " "
	if m.uploading != "" || m.spinner.Visible() {
		indicator = m.spinner.View()
	}
	fmt.Fprintf(&b, "%s%s\n\n", indicator, logoView(" Upload case documents "))
	fmt.Fprintf(&b, "  %s\n\n", lib.Subtle(m.common.inbox.Directory))

	if len(m.docs) == 0 {
		fmt.Fprintf(&b, "  %s\n", grayFg(fmt.Sprintf("Inbox is empty. Drop %s files in and press r.", strings.Join(upload.AcceptedExtensions, "/"))))
	}

	for i, doc := range m.docs {
		gutter := " "
		name := filepath.Base(doc.Path)
		size := dimBrightGrayFg(humanize.Bytes(uint64(doc.Size)) + " • " + text.RelativeTime(doc.ModTime))

		switch {
		case doc.Path == m.uploading:
			gutter = dullYellowFg(verticalLine)
			name = yellowFg(name)
		case i == m.cursor:
			gutter = dullFuchsiaFg(verticalLine)
			name = fuchsiaFg(name)
		default:
			name = brightGrayFg(name)
		}

		fmt.Fprintf(&b, "%s %s %s\n", gutter, name, size)
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		fmt.Fprintf(&b, "  %s\n", redFg(m.err.Error()))
	case m.lastResult != nil:
		fmt.Fprintf(&b, "  %s\n", greenFg(fmt.Sprintf("Created case %s from upload", m.lastResult.CaseID)))
	}

	fmt.Fprintf(&b, "\n  %s", grayFg("enter upload • r rescan • esc back"))

	return "\n" + indent(b.String(), browserIndent)
}
