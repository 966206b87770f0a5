package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"mintodo/internal/tasks"
	"mintodo/internal/theme"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	groupStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244")).MarginTop(1)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("240"))
	pastDueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	completeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	buttonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")).Padding(0, 2)
	hoverStyle    = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("To-Do List"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("A simple space for your tasks that celebrates the little seasonal moments."))
	b.WriteString("\n\n")

	if m.mode == modeForm {
		b.WriteString(m.renderForm())
		b.WriteString("\n")
	}

	list := m.store.List()
	if len(list) == 0 {
		b.WriteString(emptyStyle.Render("Your list is empty."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList(list))
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderForm() string {
	labels := [fieldCount]string{"Task", "Date", "Time"}
	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-5s", strings.ToUpper(labels[i]))))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	button := "Add Task"
	if m.form.Editing() {
		button = "Update"
	}
	b.WriteString(buttonStyle.Render(strings.ToUpper(button)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTaskList(list []tasks.Task) string {
	src, dragging := m.drag.Source()
	hover, hovering := m.drag.Hover()

	var b strings.Builder
	for i, t := range list {
		if tasks.StartsGroup(list, i) {
			b.WriteString(groupStyle.Render(strings.ToUpper(groupLabel(t.Date))))
			b.WriteString("\n")
		}

		cursor := " "
		if m.cursor == i && m.mode != modeForm {
			cursor = ">"
		}
		grip := " "
		if dragging && src == i {
			grip = "≡"
		}

		row := fmt.Sprintf("%s%s %s", cursor, grip, renderTask(t, tasks.IsOverdue(t, m.now)))
		if hovering && hover == i && hover != src {
			row = hoverStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// renderTask draws one row. Completed and overdue tasks are crossed out and
// lose their theme decoration.
func renderTask(t tasks.Task, overdue bool) string {
	crossed := overdue || t.Completed

	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	desc := t.Description
	style, themed := theme.Lookup(t.Theme)
	switch {
	case crossed:
		desc = doneStyle.Render(desc)
	case themed:
		checkbox = lipgloss.NewStyle().Foreground(style.Accent).Render(checkbox)
		desc = style.Emoji + " " + lipgloss.NewStyle().Foreground(style.Accent).Render(desc)
	}

	meta := metaStyle.Render(fmt.Sprintf("%s at %s", shortDate(t.Date), t.Time))
	badge := ""
	switch {
	case overdue:
		badge = " " + pastDueStyle.Render("PAST DUE")
	case t.Completed:
		badge = " " + completeStyle.Render("COMPLETED")
	}

	return fmt.Sprintf("%s %s  %s%s", checkbox, desc, meta, badge)
}

func groupLabel(date string) string {
	d, err := time.ParseInLocation(tasks.DateLayout, date, time.Local)
	if err != nil {
		return date
	}
	return d.Format("Monday, Jan 2")
}

func shortDate(date string) string {
	d, err := time.ParseInLocation(tasks.DateLayout, date, time.Local)
	if err != nil {
		return date
	}
	return d.Format("Jan 2")
}

func (m Model) renderHelp() string {
	if m.confirmDel {
		return m.help.ShortHelpView(nil)
	}
	switch m.mode {
	case modeForm:
		return m.help.ShortHelpView(m.keys.formHelp())
	case modeGrab:
		return m.help.ShortHelpView(m.keys.grabHelp())
	}
	if m.showHelp {
		return m.help.FullHelpView([][]key.Binding{m.keys.listHelp()})
	}
	return m.help.ShortHelpView(m.keys.listHelp())
}
