package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"focustoday/internal/config"
	"focustoday/internal/goals"
)

type mode int

const (
	modeList mode = iota
	modeEdit
)

type page int

const (
	pageHome page = iota
	pageAbout
)

// tickMsg drives one countdown. It is rescheduled for as long as the
// manager keeps the ref live.
type tickMsg struct {
	ref goals.TimerRef
}

type Model struct {
	goals      *goals.Manager
	cfg        config.Config
	keys       keyMap
	help       help.Model
	cursor     int
	mode       mode
	page       page
	input      textinput.Model
	status     string
	confirmDel bool
	pendingDel int
	width      int
}

func Run(mgr *goals.Manager, cfg config.Config) error {
	if err := mgr.Init(); err != nil {
		return err
	}
	program := tea.NewProgram(New(mgr, cfg))
	_, err := program.Run()
	return err
}

// New builds the model around an initialised manager.
func New(mgr *goals.Manager, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Add new goal..."
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		goals:  mgr,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		input:  ti,
		mode:   modeList,
		page:   pageHome,
		status: fmt.Sprintf("Press '%s' to edit a goal, %s to complete it.", cfg.Keys.Edit, helpName(cfg.Keys.Toggle)),
	}
}

func (m Model) Init() tea.Cmd {
	return m.scheduled()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.goals.Advance(msg.ref) {
			return m, tick(msg.ref)
		}
		return m, nil
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		if m.mode == modeEdit {
			return m.updateEditMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-30, 10)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Home):
		m.page = pageHome
		return m, nil
	case key.Matches(msg, m.keys.About):
		m.page = pageAbout
		return m, nil
	}
	if m.page != pageHome {
		return m, nil
	}

	n := m.goals.Len()
	switch {
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, n)
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, n)
	case key.Matches(msg, m.keys.Add):
		if err := m.goals.Add(); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.cursor = clampCursor(m.goals.Len()-1, m.goals.Len())
		return m.startEdit()
	case key.Matches(msg, m.keys.Edit):
		if n == 0 {
			m.status = "No goals to edit"
			return m, nil
		}
		return m.startEdit()
	case key.Matches(msg, m.keys.Toggle):
		if n == 0 {
			return m, nil
		}
		ok, err := m.goals.Toggle(m.cursor)
		if err != nil {
			m.status = fmt.Sprintf("toggle failed: %v", err)
			return m, m.scheduled()
		}
		if !ok {
			m.status = "Please set all goals first"
			return m, nil
		}
		if m.goals.Goals()[m.cursor].Completed {
			m.status = "Goal completed"
		} else {
			m.status = "Goal reopened"
		}
		return m, m.scheduled()
	case key.Matches(msg, m.keys.Delete):
		if n == 0 {
			return m, nil
		}
		m.confirmDel = true
		m.pendingDel = m.cursor
		title := m.goals.Goals()[m.cursor].Text
		if strings.TrimSpace(title) == "" {
			title = "(empty)"
		}
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", title)
	}
	return m, nil
}

// startEdit focuses the input on the goal under the cursor. Focusing an
// input clears the validation error.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	m.goals.Focus()
	m.mode = modeEdit
	m.input.SetValue(m.goals.Goals()[m.cursor].Text)
	m.input.CursorEnd()
	m.status = fmt.Sprintf("Editing goal %d: %s or %s to finish", m.cursor+1, m.cfg.Keys.Confirm, m.cfg.Keys.Cancel)
	return m, m.input.Focus()
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Cancel) {
		m.mode = modeList
		m.input.Blur()
		m.status = "Saved"
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	if err := m.goals.Edit(m.cursor, m.input.Value()); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
	}
	return m, tea.Batch(cmd, m.scheduled())
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", "esc":
		m.status = "Delete cancelled"
		m.confirmDel = false
		return m, nil
	case "y", "Y":
		m.confirmDel = false
		if err := m.goals.Remove(m.pendingDel); err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
			return m, m.scheduled()
		}
		m.cursor = clampCursor(m.cursor, m.goals.Len())
		m.status = "Deleted goal"
		return m, m.scheduled()
	default:
		return m, nil
	}
}

// scheduled turns countdowns the manager just started into ticks.
func (m Model) scheduled() tea.Cmd {
	refs := m.goals.Pending()
	if len(refs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(refs))
	for _, ref := range refs {
		cmds = append(cmds, tick(ref))
	}
	return tea.Batch(cmds...)
}

func tick(ref goals.TimerRef) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{ref: ref}
	})
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
