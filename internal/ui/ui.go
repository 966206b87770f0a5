package ui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"mintodo/internal/clock"
	"mintodo/internal/config"
	"mintodo/internal/form"
	"mintodo/internal/reorder"
	"mintodo/internal/tasks"
)

const placeholderText = "What needs to be done?"

type mode int

const (
	modeList mode = iota
	modeForm
	modeGrab
)

const (
	fieldDescription = iota
	fieldDate
	fieldTime
	fieldCount
)

type Model struct {
	store      *tasks.Store
	cfg        config.Config
	keys       keyMap
	help       help.Model
	logger     *log.Logger
	now        time.Time
	interval   time.Duration
	form       *form.Controller
	drag       *reorder.Controller
	inputs     [fieldCount]textinput.Model
	focus      int
	cursor     int
	mode       mode
	status     string
	confirmDel bool
	pendingDel *tasks.Task
	showHelp   bool
}

// NewModel builds the program model. A nil clock reads the wall clock and a
// nil logger discards output.
func NewModel(store *tasks.Store, cfg config.Config, c clock.Clock, logger *log.Logger) Model {
	if c == nil {
		c = clock.System{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var inputs [fieldCount]textinput.Model
	inputs[fieldDescription] = textinput.New()
	inputs[fieldDescription].Placeholder = placeholderText
	inputs[fieldDescription].CharLimit = 256
	inputs[fieldDescription].Width = 40
	inputs[fieldDate] = textinput.New()
	inputs[fieldDate].Placeholder = "YYYY-MM-DD"
	inputs[fieldDate].CharLimit = len(tasks.DateLayout)
	inputs[fieldDate].Width = 12
	inputs[fieldTime] = textinput.New()
	inputs[fieldTime].Placeholder = "HH:mm"
	inputs[fieldTime].CharLimit = len(tasks.TimeLayout)
	inputs[fieldTime].Width = 6

	keys := newKeyMap(cfg.Keys)
	return Model{
		store:    store,
		cfg:      cfg,
		keys:     keys,
		help:     help.New(),
		logger:   logger,
		now:      c.Now(),
		interval: cfg.Interval(),
		form:     form.New(c),
		drag:     &reorder.Controller{},
		inputs:   inputs,
		cursor:   clampCursor(0, store.Len()),
		mode:     modeList,
		status:   fmt.Sprintf("Press '%s' to add, %s to toggle, '%s' to move.", keys.Add.Help().Key, keys.Toggle.Help().Key, keys.Grab.Help().Key),
	}
}

func Run(store *tasks.Store, cfg config.Config, logger *log.Logger) error {
	m := NewModel(store, cfg, clock.System{}, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return clock.Tick(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clock.TickMsg:
		m.now = time.Time(msg)
		return m, clock.Tick(m.interval)
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		switch m.mode {
		case modeForm:
			return m.updateFormMode(msg)
		case modeGrab:
			return m.updateGrabMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.inputs[fieldDescription].Width = max(msg.Width-10, 10)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.store.List()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(list))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(list))
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Add):
		m.form.Reset()
		m.status = "Add mode: type a task, tab between fields, Enter to save"
		return m.openForm()
	case key.Matches(msg, m.keys.Edit):
		if len(list) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		m.form.BeginEdit(list[m.cursor])
		m.status = "Editing task: Enter to update, Esc to cancel"
		return m.openForm()
	case key.Matches(msg, m.keys.Toggle):
		if len(list) == 0 {
			return m, nil
		}
		t, err := m.store.Toggle(list[m.cursor].ID)
		switch {
		case errors.Is(err, tasks.ErrNotFound):
		case err != nil:
			m.status = fmt.Sprintf("save failed: %v", err)
		case t.Completed:
			m.status = "Completed task"
		default:
			m.status = "Reopened task"
		}
	case key.Matches(msg, m.keys.Delete):
		if len(list) == 0 {
			return m, nil
		}
		t := list[m.cursor]
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", t.Description)
	case key.Matches(msg, m.keys.Grab):
		if len(list) < 2 {
			m.status = "Nothing to reorder"
			return m, nil
		}
		m.drag.Start(m.cursor)
		m.drag.Over(m.cursor)
		m.mode = modeGrab
		m.status = "Move mode: up/down to choose a spot, Enter to drop, Esc to cancel"
	}
	return m, nil
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.inputs[fieldDescription].SetValue(m.form.Description)
	m.inputs[fieldDate].SetValue(m.form.Date)
	m.inputs[fieldTime].SetValue(m.form.Time)
	m.mode = modeForm
	return m.focusField(fieldDescription)
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.focus = wrapIndex(i, fieldCount)
	var cmd tea.Cmd
	for idx := range m.inputs {
		if idx == m.focus {
			cmd = m.inputs[idx].Focus()
			continue
		}
		m.inputs[idx].Blur()
	}
	return m, cmd
}

func (m Model) closeForm() Model {
	for idx := range m.inputs {
		m.inputs[idx].Blur()
		m.inputs[idx].SetValue("")
	}
	m.mode = modeList
	return m
}

func (m Model) updateFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.form.Reset()
		m.status = "Cancelled"
		return m.closeForm(), nil
	case key.Matches(msg, m.keys.NextField):
		m.syncDraft()
		return m.focusField(m.focus + 1)
	case key.Matches(msg, m.keys.PrevField):
		m.syncDraft()
		return m.focusField(m.focus - 1)
	case key.Matches(msg, m.keys.Confirm):
		return m.submitForm()
	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.syncDraft()
		return m, cmd
	}
}

func (m Model) syncDraft() {
	m.form.Description = m.inputs[fieldDescription].Value()
	m.form.Date = m.inputs[fieldDate].Value()
	m.form.Time = m.inputs[fieldTime].Value()
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	m.syncDraft()
	if !m.form.Valid() {
		m.status = "Task, date (YYYY-MM-DD) and time (HH:mm) are required"
		return m, nil
	}
	editing := m.form.Editing()
	t, ok, err := m.form.Submit(m.store)
	m = m.closeForm()
	switch {
	case err != nil:
		m.status = fmt.Sprintf("save failed: %v", err)
	case !ok:
		m.status = "Task no longer exists"
		return m, nil
	case editing:
		m.logger.Debug("updated task", "id", t.ID, "theme", t.Theme)
		m.status = "Updated task"
	default:
		m.logger.Debug("added task", "id", t.ID, "theme", t.Theme)
		m.status = "Added task"
	}
	m.cursor = clampCursor(m.indexOf(t.ID), m.store.Len())
	return m, nil
}

func (m Model) updateGrabMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.store.Len()
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, n)
		m.drag.Over(m.cursor)
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, n)
		m.drag.Over(m.cursor)
	case key.Matches(msg, m.keys.Cancel):
		if src, ok := m.drag.Source(); ok {
			m.cursor = clampCursor(src, n)
		}
		m.drag.End()
		m.mode = modeList
		m.status = "Move cancelled"
	case key.Matches(msg, m.keys.Confirm):
		src, _ := m.drag.Source()
		if err := m.drag.Drop(m.cursor, m.store); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		} else if src == m.cursor {
			m.status = "Task not moved"
		} else {
			m.logger.Debug("moved task", "from", src, "to", m.cursor)
			m.status = "Moved task"
		}
		m.mode = modeList
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", "esc":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		if err := m.store.Remove(m.pendingDel.ID); err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
		} else {
			m.status = "Deleted task"
		}
		m.cursor = clampCursor(m.cursor, m.store.Len())
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) indexOf(id string) int {
	for i, t := range m.store.List() {
		if t.ID == id {
			return i
		}
	}
	return m.store.Len() - 1
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
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
