package ui

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mintodo/internal/clock"
	"mintodo/internal/config"
	"mintodo/internal/storage"
	"mintodo/internal/tasks"
	"mintodo/internal/theme"
)

var testNow = time.Date(2024, 11, 20, 8, 5, 0, 0, time.Local)

func newTestModel(t *testing.T, descs ...string) (Model, *tasks.Store) {
	t.Helper()
	store := tasks.Open(storage.NewMemory(), config.DefaultStorageKey)
	for _, d := range descs {
		if _, err := store.Create(tasks.Draft{Description: d, Date: "2024-12-01", Time: "09:00"}); err != nil {
			t.Fatal(err)
		}
	}
	return NewModel(store, config.Default(), clock.Fixed(testNow), nil), store
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	space    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	clearAll = tea.KeyMsg{Type: tea.KeyCtrlU}
)

func descriptions(list []tasks.Task) []string {
	var out []string
	for _, t := range list {
		out = append(out, t.Description)
	}
	return out
}

func TestEmptyView(t *testing.T) {
	m, _ := newTestModel(t)
	if !strings.Contains(m.View(), "Your list is empty.") {
		t.Errorf("empty view missing placeholder:\n%s", m.View())
	}
}

func TestAddTask(t *testing.T) {
	m, store := newTestModel(t)
	m = press(t, m,
		runes("a"),
		runes("Plan christmas party"), tab,
		clearAll, runes("2024-12-01"), tab,
		clearAll, runes("10:00"),
		enter,
	)

	list := store.List()
	if len(list) != 1 {
		t.Fatalf("list = %+v", list)
	}
	got := list[0]
	if got.Description != "Plan christmas party" || got.Date != "2024-12-01" || got.Time != "10:00" {
		t.Errorf("task = %+v", got)
	}
	if got.Theme != theme.Christmas || got.Completed {
		t.Errorf("task = %+v", got)
	}
	if m.mode != modeList || m.status != "Added task" {
		t.Errorf("mode=%v status=%q", m.mode, m.status)
	}
}

func TestAddTaskUsesDefaultDateTime(t *testing.T) {
	m, store := newTestModel(t)
	m = press(t, m, runes("a"), runes("laundry"), enter)
	list := store.List()
	if len(list) != 1 || list[0].Date != "2024-11-20" || list[0].Time != "08:05" {
		t.Errorf("list = %+v", list)
	}
}

func TestAddTaskRejectsEmptyDescription(t *testing.T) {
	m, store := newTestModel(t)
	m = press(t, m, runes("a"), enter)
	if store.Len() != 0 {
		t.Error("empty description created a task")
	}
	if m.mode != modeForm {
		t.Error("form should stay open after rejection")
	}

	m = press(t, m, esc)
	if m.mode != modeList {
		t.Error("esc should close the form")
	}
}

func TestEditTask(t *testing.T) {
	m, store := newTestModel(t, "a", "b")
	orig := store.List()
	m = press(t, m, runes("j"), runes("e"))
	if !strings.Contains(m.View(), "UPDATE") {
		t.Error("edit form should offer Update")
	}
	m = press(t, m, clearAll, runes("gym session"), enter)

	list := store.List()
	if list[1].ID != orig[1].ID || list[1].Description != "gym session" || list[1].Theme != theme.Fitness {
		t.Errorf("edited = %+v", list[1])
	}
	if !reflect.DeepEqual(list[0], orig[0]) {
		t.Error("other task changed")
	}
	if m.status != "Updated task" || m.cursor != 1 {
		t.Errorf("status=%q cursor=%d", m.status, m.cursor)
	}
}

func TestToggle(t *testing.T) {
	m, store := newTestModel(t, "a")
	m = press(t, m, space)
	if !store.List()[0].Completed {
		t.Fatal("space should complete the task")
	}
	m = press(t, m, space)
	if store.List()[0].Completed {
		t.Fatal("second toggle should reopen the task")
	}
	if m.status != "Reopened task" {
		t.Errorf("status = %q", m.status)
	}
}

func TestDeleteConfirm(t *testing.T) {
	m, store := newTestModel(t, "a", "b")
	m = press(t, m, runes("d"), runes("n"))
	if store.Len() != 2 {
		t.Fatal("n should cancel delete")
	}
	m = press(t, m, runes("d"), runes("y"))
	if got := descriptions(store.List()); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("got %v", got)
	}
	if m.confirmDel {
		t.Error("confirm state not cleared")
	}
}

func TestGrabAndDrop(t *testing.T) {
	m, store := newTestModel(t, "A", "B", "C")
	m = press(t, m, runes("m"), runes("j"), runes("j"))
	if h, ok := m.drag.Hover(); !ok || h != 2 {
		t.Fatalf("hover = %d, %v", h, ok)
	}
	if got := descriptions(store.List()); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatal("hovering must not reorder")
	}
	m = press(t, m, enter)
	if got := descriptions(store.List()); !reflect.DeepEqual(got, []string{"B", "C", "A"}) {
		t.Errorf("got %v, want [B C A]", got)
	}
	if m.mode != modeList || m.drag.Dragging() {
		t.Error("drop should return to list mode")
	}
}

func TestGrabCancel(t *testing.T) {
	m, store := newTestModel(t, "A", "B", "C")
	m = press(t, m, runes("m"), runes("j"), esc)
	if got := descriptions(store.List()); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("got %v", got)
	}
	if m.cursor != 0 || m.mode != modeList {
		t.Errorf("cursor=%d mode=%v", m.cursor, m.mode)
	}
}

func TestTickRecomputesOverdue(t *testing.T) {
	m, _ := newTestModel(t, "a")
	if strings.Contains(m.View(), "PAST DUE") {
		t.Fatal("task should not be overdue yet")
	}
	next, cmd := m.Update(clock.TickMsg(time.Date(2024, 12, 1, 9, 1, 0, 0, time.Local)))
	if cmd == nil {
		t.Error("tick should re-arm")
	}
	if !strings.Contains(next.View(), "PAST DUE") {
		t.Errorf("expected overdue badge:\n%s", next.View())
	}
}

func TestGroupHeaders(t *testing.T) {
	store := tasks.Open(storage.NewMemory(), config.DefaultStorageKey)
	store.Create(tasks.Draft{Description: "A", Date: "2024-01-01", Time: "09:00"})
	store.Create(tasks.Draft{Description: "B", Date: "2024-01-02", Time: "09:00"})
	store.Create(tasks.Draft{Description: "C", Date: "2024-01-02", Time: "10:00"})
	m := NewModel(store, config.Default(), clock.Fixed(testNow), nil)

	view := m.View()
	if strings.Count(view, "MONDAY, JAN 1") != 1 || strings.Count(view, "TUESDAY, JAN 2") != 1 {
		t.Errorf("unexpected group headers:\n%s", view)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
