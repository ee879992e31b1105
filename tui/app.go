// SPDX-License-Identifier: MIT

// Package tui is the interactive menu over a session of tape matrices.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tapematrix/session"
)

type screen int

const (
	screenHome screen = iota
	screenMatrices
	screenDetail
	screenPrompt
)

type promptKind int

const (
	promptReadMatrix promptKind = iota
	promptReadStorage
	promptMultiply
	promptWriteMatrix
	promptWriteStorage
	promptRename
)

var promptLabels = map[promptKind]string{
	promptReadMatrix:   "Enter filename with matrix",
	promptReadStorage:  "Enter filename with diagonal storage of tape matrix",
	promptMultiply:     "Enter two matrices number for multiplying",
	promptWriteMatrix:  "Enter filename for the tape matrix writing",
	promptWriteStorage: "Enter filename for the tape matrix diagonal storage writing",
	promptRename:       "Enter new matrix name",
}

// errEmptyList is shown when an action needs at least one stored matrix.
var errEmptyList = errors.New("list of matrices is empty")

type model struct {
	theme Theme
	deps  Deps

	scr      screen
	home     list.Model
	matrices list.Model
	actions  list.Model
	input    textinput.Model

	prompt   promptKind
	back     screen // screen to return to from the prompt
	selected int    // entry index shown on the detail screen

	status    string
	statusErr bool
}

// Run starts the menu and blocks until the user exits.
func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps), tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func newModel(deps Deps) model {
	in := textinput.New()
	in.CharLimit = 4096

	return model{
		theme:    DefaultTheme(),
		deps:     deps,
		scr:      screenHome,
		home:     newList("Tape matrices", homeItems()),
		matrices: newList("Matrices", nil),
		actions:  newList("Items", detailItems()),
		input:    in,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width-4, msg.Height-8
		m.home.SetSize(w, h)
		m.matrices.SetSize(w, h)
		m.actions.SetSize(w, h/2)
		m.input.Width = w - 2
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenPrompt:
			return m.updatePrompt(msg)
		case screenHome:
			return m.updateHome(msg)
		case screenMatrices:
			return m.updateMatrices(msg)
		case screenDetail:
			return m.updateDetail(msg)
		}
	}

	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "enter" {
		it, ok := m.home.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		key = it.key
	}

	switch key {
	case keyExit, "q":
		return m, tea.Quit
	case keyList:
		if m.deps.Session.Len() == 0 {
			return m.fail(errEmptyList), nil
		}
		m.refreshMatrices()
		m.scr = screenMatrices
		return m.clearStatus(), nil
	case keyReadMatrix:
		return m.openPrompt(promptReadMatrix, screenHome)
	case keyReadStorage:
		return m.openPrompt(promptReadStorage, screenHome)
	case keyMultiply:
		if m.deps.Session.Len() == 0 {
			return m.fail(errEmptyList), nil
		}
		m.refreshMatrices()
		return m.openPrompt(promptMultiply, screenHome)
	}

	var cmd tea.Cmd
	m.home, cmd = m.home.Update(msg)
	return m, cmd
}

func (m model) updateMatrices(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", keyBack:
		m.scr = screenHome
		return m, nil
	case "enter":
		it, ok := m.matrices.SelectedItem().(entryItem)
		if !ok {
			return m, nil
		}
		m.selected = it.idx
		m.actions.Select(0)
		m.scr = screenDetail
		return m.clearStatus(), nil
	}

	var cmd tea.Cmd
	m.matrices, cmd = m.matrices.Update(msg)
	return m, cmd
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "enter" {
		it, ok := m.actions.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		key = it.key
	}

	switch key {
	case "esc", keyBack:
		return m.leaveDetail(), nil
	case keyWriteMatrix:
		return m.openPrompt(promptWriteMatrix, screenDetail)
	case keyWriteStorage:
		return m.openPrompt(promptWriteStorage, screenDetail)
	case keyRename:
		return m.openPrompt(promptRename, screenDetail)
	case keyRemove:
		e, err := m.deps.Session.Get(m.selected)
		if err == nil {
			err = m.deps.Session.Remove(m.selected)
		}
		if err != nil {
			return m.fail(err), nil
		}
		m = m.leaveDetail()
		return m.info(fmt.Sprintf("removed %s", e.Name)), nil
	}

	var cmd tea.Cmd
	m.actions, cmd = m.actions.Update(msg)
	return m, cmd
}

// leaveDetail returns to the matrices list, or home once it is empty.
func (m model) leaveDetail() model {
	if m.deps.Session.Len() == 0 {
		m.scr = screenHome
		return m
	}
	m.refreshMatrices()
	m.scr = screenMatrices

	return m
}

func (m model) openPrompt(kind promptKind, back screen) (tea.Model, tea.Cmd) {
	m.prompt = kind
	m.back = back
	m.scr = screenPrompt
	m.input.Reset()
	m.input.Placeholder = ""
	if kind == promptRename {
		if e, err := m.deps.Session.Get(m.selected); err == nil {
			m.input.Placeholder = e.Name
		}
	}
	cmd := m.input.Focus()

	return m.clearStatus(), cmd
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.scr = m.back
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		m.scr = m.back
		return m.submit(value), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the action behind the current prompt.
func (m model) submit(value string) model {
	s := m.deps.Session
	switch m.prompt {
	case promptReadMatrix:
		e, err := s.LoadMatrix(value)
		if err != nil {
			return m.fail(err)
		}
		return m.info(fmt.Sprintf("loaded %s (bandwidth %d)", e.Name, e.Storage.Bandwidth()))

	case promptReadStorage:
		e, err := s.LoadStorage(value)
		if err != nil {
			return m.fail(err)
		}
		return m.info(fmt.Sprintf("loaded %s (bandwidth %d)", e.Name, e.Storage.Bandwidth()))

	case promptMultiply:
		a, b, err := parseOperands(value, s.Len())
		if err != nil {
			return m.fail(err)
		}
		e, err := s.Multiply(a, b)
		if err != nil {
			return m.fail(err)
		}
		return m.info("New matrix name: " + e.Name)

	case promptWriteMatrix:
		if err := s.ExportMatrix(m.selected, value); err != nil {
			return m.fail(err)
		}
		return m.info("tape matrix written to " + value)

	case promptWriteStorage:
		if err := s.ExportStorage(m.selected, value); err != nil {
			return m.fail(err)
		}
		return m.info("storage written to " + value)

	case promptRename:
		if err := s.Rename(m.selected, value); err != nil {
			return m.fail(err)
		}
		m.refreshMatrices()
		return m.info("renamed to " + value)
	}

	return m
}

// parseOperands reads two 1-based matrix numbers and returns them 0-based.
func parseOperands(value string, n int) (int, int, error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two matrix numbers, got %q", value)
	}
	var idx [2]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 || v > n {
			return 0, 0, fmt.Errorf("matrix number %q out of range 1..%d", f, n)
		}
		idx[i] = v - 1
	}

	return idx[0], idx[1], nil
}

func (m *model) refreshMatrices() {
	cur := m.matrices.Index()
	m.matrices.SetItems(entryItems(m.deps.Session.List()))
	if cur >= len(m.matrices.Items()) {
		cur = len(m.matrices.Items()) - 1
	}
	if cur >= 0 {
		m.matrices.Select(cur)
	}
}

// fail records err in the error log and shows it on the status line.
func (m model) fail(err error) model {
	m.deps.Log.Record(err)
	m.status = err.Error()
	m.statusErr = true

	return m
}

func (m model) info(msg string) model {
	m.status = msg
	m.statusErr = false

	return m
}

func (m model) clearStatus() model {
	m.status = ""
	m.statusErr = false

	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	var body, help string
	switch m.scr {
	case screenHome:
		body = m.theme.Card.Render(m.home.View())
		help = "↑/↓ navigate • enter or digit select • q quit"

	case screenMatrices:
		body = m.theme.Card.Render(m.matrices.View())
		help = "↑/↓ navigate • enter open • 0/esc back"

	case screenDetail:
		e, err := m.deps.Session.Get(m.selected)
		if err != nil {
			body = m.theme.Error.Render(err.Error())
			break
		}
		rendered, err := session.RenderEntry(e, m.deps.Display)
		if err != nil {
			rendered = m.theme.Error.Render(err.Error())
		}
		body = m.theme.Card.Render("Name: "+e.Name+"\n\n"+rendered) + "\n" + m.theme.Card.Render(m.actions.View())
		help = "enter or digit select • 0/esc back"

	case screenPrompt:
		var listing string
		if m.prompt == promptMultiply {
			listing = m.matrices.View() + "\n"
		}
		body = m.theme.Card.Render(listing + m.theme.Title.Render(promptLabels[m.prompt]+":") + "\n" + m.input.View())
		help = "enter confirm • esc cancel"
	}

	status := ""
	if m.status != "" {
		style := m.theme.Status
		if m.statusErr {
			style = m.theme.Error
		}
		status = "\n" + style.Render(m.status)
	}

	return wrap.Render(body + status + "\n" + m.theme.Help.Render(help))
}
