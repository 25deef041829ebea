package model

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	te "github.com/muesli/termenv"

	"github.com/lexhub-io/lexadmin/pkg/api"
	"github.com/lexhub-io/lexadmin/pkg/config"
	"github.com/lexhub-io/lexadmin/pkg/schema"
	"github.com/lexhub-io/lexadmin/pkg/upload"
	"github.com/lexhub-io/lexadmin/pkg/version"
)

var (
	logoTextColor = lib.Color("#ECFD65")
)

// state is the top-level application state.
type state int

const (
	stateShowHome state = iota
	stateShowBrowser
	stateShowDetail
	stateShowUpload
)

func (s state) String() string {
	return map[state]string{
		stateShowHome:    "showing screen listing",
		stateShowBrowser: "showing records",
		stateShowDetail:  "showing record detail",
		stateShowUpload:  "showing upload inbox",
	}[s]
}

// Common stuff we'll need to access in all models.
type commonModel struct {
	cfg    config.Config
	client *api.Client
	token  *api.TokenInfo
	inbox  *upload.Inbox
	width  int
	height int
}

type Model struct {
	common *commonModel

	state    state
	fatalErr error

	home     list.Model
	browsers map[string]*browserModel
	resource string

	detail *detailModel
	inbox  *uploadModel
}

// currentBrowser is only valid while a resource is selected.
func (m *Model) currentBrowser() *browserModel {
	return m.browsers[m.resource]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If there's been a fatal error, any key exits
	if m.fatalErr != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		// Ctrl+C always quits no matter where in the application you are.
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			switch m.state {
			case stateShowHome:
				if m.home.FilterState() == list.Filtering {
					break
				}
				return m, tea.Quit
			case stateShowBrowser:
				// pass through all keys while text is being entered
				if b := m.currentBrowser(); b != nil && b.capturesKeys() {
					break
				}
				return m, tea.Quit
			}

		case "enter":
			if m.state == stateShowHome && m.home.FilterState() != list.Filtering {
				if item, ok := m.home.SelectedItem().(screenItem); ok {
					return m, m.openBrowser(item.schema.Resource)
				}
			}
		}

	// Window size is received when starting up and on every resize
	case tea.WindowSizeMsg:
		m.common.width = msg.Width
		m.common.height = msg.Height
		m.home.SetSize(msg.Width-homeHorizontalPadding*2, msg.Height-homeVerticalPadding*2)
		for _, b := range m.browsers {
			b.setSize(msg.Width, msg.Height)
		}
		if m.detail != nil {
			m.detail.setSize(msg.Width, msg.Height)
			cmds = append(cmds, m.detail.rerenderCmd())
		}

	case backToHomeMsg:
		m.state = stateShowHome
		return m, nil

	case openDetailMsg:
		m.state = stateShowDetail
		m.detail = newDetailModel(m.common, msg.schema, msg.record)
		return m, m.detail.rerenderCmd()

	case closeDetailMsg:
		m.state = stateShowBrowser
		m.detail = nil
		return m, nil

	case openUploadMsg:
		m.state = stateShowUpload
		m.inbox = newUploadModel(m.common)
		return m, nil

	case closeUploadMsg:
		m.state = stateShowBrowser
		m.inbox = nil
		// The extractor may have created cases; refresh the listing.
		if b := m.currentBrowser(); b != nil {
			cmds = append(cmds, b.refresh())
		}
		return m, tea.Batch(cmds...)

	case listResultMsg:
		// Always deliver fetch results to the owning browser, even when the
		// user has navigated elsewhere, so stale epochs resolve.
		if b, ok := m.browsers[msg.resource]; ok {
			cmds = append(cmds, b.update(msg))
		}
		return m, tea.Batch(cmds...)

	case statsResultMsg, debounceSettledMsg, savedMsg, deletedMsg, mutationFailedMsg, statusMessageTimeoutMsg:
		if b, ok := m.browsers[resourceOf(msg)]; ok {
			cmds = append(cmds, b.update(msg))
		}
		return m, tea.Batch(cmds...)
	}

	// Process children
	switch m.state {
	case stateShowHome:
		newListModel, cmd := m.home.Update(msg)
		m.home = newListModel
		cmds = append(cmds, cmd)

	case stateShowBrowser:
		if b := m.currentBrowser(); b != nil {
			cmds = append(cmds, b.update(msg))
		}

	case stateShowDetail:
		if m.detail != nil {
			cmds = append(cmds, m.detail.update(msg))
		}

	case stateShowUpload:
		if m.inbox != nil {
			cmds = append(cmds, m.inbox.update(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.fatalErr != nil {
		return errorView(m.fatalErr, true)
	}

	switch m.state {
	case stateShowBrowser:
		if b := m.currentBrowser(); b != nil {
			return b.view()
		}
		return ""
	case stateShowDetail:
		if m.detail != nil {
			return m.detail.view()
		}
		return ""
	case stateShowUpload:
		if m.inbox != nil {
			return m.inbox.view()
		}
		return ""
	default:
		return m.homeView()
	}
}

func (m *Model) openBrowser(resource string) tea.Cmd {
	m.state = stateShowBrowser
	m.resource = resource

	b := m.currentBrowser()
	if b == nil {
		return nil
	}
	b.setSize(m.common.width, m.common.height)

	// First visit fetches page 1; revisits keep whatever was loaded.
	if !b.started {
		return b.refresh()
	}
	return nil
}

func (m Model) homeView() string {
	logo := logoView(fmt.Sprintf(" lexadmin (version %s) ", version.Version))

	session := lib.Subtle("no session token")
	if m.common.token != nil {
		session = lib.Subtle("session: " + m.common.token.Subject)
		if m.common.token.Expired() {
			session += " " + redFg("(expired)")
		}
	}

	return "\n  " + logo + "  " + session + "\n\n" + m.home.View()
}

func logoView(text string) string {
	return te.String(text).
		Bold().
		Foreground(logoTextColor).
		Background(lib.Fuschia.Color()).
		String()
}

// screenItem adapts a schema to the home screen list.
type screenItem struct {
	schema *schema.Schema
}

func (i screenItem) Title() string       { return i.schema.Icon + " " + i.schema.Title }
func (i screenItem) Description() string { return i.schema.Path }
func (i screenItem) FilterValue() string { return i.schema.Title }

// resourceOf extracts the owning resource from a routed message.
func resourceOf(msg tea.Msg) string {
	switch msg := msg.(type) {
	case statsResultMsg:
		return msg.resource
	case debounceSettledMsg:
		return msg.resource
	case savedMsg:
		return msg.resource
	case deletedMsg:
		return msg.resource
	case mutationFailedMsg:
		return msg.resource
	case statusMessageTimeoutMsg:
		return string(msg)
	}
	return ""
}
