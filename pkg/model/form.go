package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	te "github.com/muesli/termenv"

	"github.com/lexhub-io/lexadmin/pkg/schema"
	"github.com/lexhub-io/lexadmin/pkg/workflow"
)

var (
	formHeadingCreate = te.String(" New ").
				Foreground(lib.Cream.Color()).
				Background(lib.Green.Color()).
				String()

	formHeadingEdit = te.String(" Edit ").
			Foreground(lib.Cream.Color()).
			Background(lib.Fuschia.Color()).
			String()
)

// formModel is the modal field editor driving a create or edit workflow.
// Text-like fields get a textinput each; selects cycle with space/arrows.
type formModel struct {
	common *commonModel
	schema *schema.Schema
	wf     *workflow.Workflow

	inputs     []textinput.Model
	fieldIndex int
	submitting bool
	spinner    spinner.Model

	err error
}

func newFormModel(common *commonModel, sch *schema.Schema, wf *workflow.Workflow) *formModel {
	sp := spinner.NewModel()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(fuschia)
	sp.HideFor = time.Millisecond * 50
	sp.MinimumLifetime = time.Millisecond * 180

	inputs := make([]textinput.Model, len(sch.Fields))
	for i, f := range sch.Fields {
		ti := textinput.NewModel()
		ti.Prompt = ""
		ti.CharLimit = searchCharacterLimit
		ti.Placeholder = f.Placeholder
		ti.CursorStyle = lipgloss.NewStyle().Foreground(fuschia)
		ti.SetValue(wf.Field(f.Key))
		ti.CursorEnd()
		inputs[i] = ti
	}

	m := &formModel{
		common:  common,
		schema:  sch,
		wf:      wf,
		inputs:  inputs,
		spinner: sp,
	}
	m.focusField(0)
	return m
}

func (m *formModel) setSize(width, height int) {
	for i := range m.inputs {
		m.inputs[i].Width = minInt(48, width-browserHorizontalPadding*2)
	}
}

func (m *formModel) currentField() *schema.Field {
	return &m.schema.Fields[m.fieldIndex]
}

func (m *formModel) focusField(i int) {
	m.fieldIndex = i
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	if m.currentField().Type != schema.FieldSelect {
		m.inputs[i].Focus()
	}
}

func (m *formModel) nextField() {
	m.focusField((m.fieldIndex + 1) % len(m.schema.Fields))
}

func (m *formModel) prevField() {
	m.focusField((m.fieldIndex - 1 + len(m.schema.Fields)) % len(m.schema.Fields))
}

// fail reopens the form after a rejected submission, draft intact.
func (m *formModel) fail(err error) {
	m.submitting = false
	m.err = err
}

func (m *formModel) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(spinner.TickMsg); ok {
		if m.submitting || m.spinner.Visible() {
			newSpinnerModel, cmd := m.spinner.Update(msg)
			m.spinner = newSpinnerModel
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)
	}

	if m.submitting {
		// Ignore keystrokes while the request is in flight.
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		field := m.currentField()

		switch msg.String() {
		case "esc":
			m.wf.Close()
			return m.closeCmd()

		case "tab", "down", "enter":
			if msg.String() == "enter" && m.fieldIndex == len(m.schema.Fields)-1 {
				return m.submitCmd()
			}
			m.nextField()
			return textinput.Blink

		case "shift+tab", "up":
			m.prevField()
			return textinput.Blink

		case "ctrl+s":
			return m.submitCmd()

		case " ", "left", "right":
			if field.Type == schema.FieldSelect {
				m.wf.CycleField(field.Key)
				return nil
			}
		}

		if field.Type != schema.FieldSelect {
			newInput, cmd := m.inputs[m.fieldIndex].Update(msg)
			m.inputs[m.fieldIndex] = newInput
			m.wf.SetField(field.Key, newInput.Value())
			cmds = append(cmds, cmd)
		}
	}

	return tea.Batch(cmds...)
}

// submitCmd validates locally and, only if the draft passes, issues the
// mutation. A validation failure stays entirely client-side.
func (m *formModel) submitCmd() tea.Cmd {
	sub, err := m.wf.BuildSubmission()
	if err != nil {
		m.err = err
		if verr, ok := err.(*schema.ValidationError); ok {
			// Jump to the offending field.
			if f := m.schema.Field(verr.Field); f != nil {
				for i := range m.schema.Fields {
					if m.schema.Fields[i].Key == verr.Field {
						m.focusField(i)
						break
					}
				}
			}
		}
		return nil
	}

	m.err = nil
	m.submitting = true
	return tea.Batch(
		m.common.submit(m.wf, m.schema.Resource, sub),
		spinner.Tick,
	)
}

// closeCmd tells the browser to drop the form.
func (m *formModel) closeCmd() tea.Cmd {
	resource := m.schema.Resource
	return func() tea.Msg { return formClosedMsg(resource) }
}

type formClosedMsg string

func (m *formModel) view() string {
	heading := formHeadingCreate
	if m.wf.Mode() == workflow.ModeEdit {
		heading = formHeadingEdit
	}
	title := fmt.Sprintf("%s %s", heading, m.schema.Singular)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", title)

	for i, f := range m.schema.Fields {
		label := f.Label
		if f.Required {
			label += " *"
		}
		label = fmt.Sprintf("%-16s", label)

		cursor := "  "
		if i == m.fieldIndex {
			cursor = dullFuchsiaFg("> ")
			label = fuchsiaFg(label)
		} else {
			label = grayFg(label)
		}

		var value string
		if f.Type == schema.FieldSelect {
			value = fmt.Sprintf("◂ %s ▸", m.wf.Field(f.Key))
			if i == m.fieldIndex {
				value = yellowFg(value)
			} else {
				value = dimNormalFg(value)
			}
		} else {
			value = m.inputs[i].View()
		}

		fmt.Fprintf(&b, "%s%s %s\n", cursor, label, value)
	}

	footer := grayFg("enter next • ctrl+s save • esc cancel")
	if m.submitting {
		footer = m.spinner.View() + " " + grayFg("Saving...")
	} else if m.err != nil {
		footer = redFg(m.err.Error())
	}
	fmt.Fprintf(&b, "\n%s", footer)

	return "\n" + indent(dialogBoxStyle.Render(b.String()), browserIndent)
}
