// Package form holds the draft fields of the add/edit form.
package form

import (
	"errors"

	"mintodo/internal/clock"
	"mintodo/internal/tasks"
)

// Mutator is the part of the task store the form writes to.
type Mutator interface {
	Create(d tasks.Draft) (tasks.Task, error)
	Update(id string, d tasks.Draft) (tasks.Task, error)
}

// Controller holds draft values. A non-empty EditingID turns Submit into an
// update of that task.
type Controller struct {
	Description string
	Date        string
	Time        string
	EditingID   string

	clock clock.Clock
}

// New returns a controller reset to today's date and the current time.
func New(c clock.Clock) *Controller {
	if c == nil {
		c = clock.System{}
	}
	f := &Controller{clock: c}
	f.Reset()
	return f
}

// Reset clears the description and editing target and sets date/time to now.
func (f *Controller) Reset() {
	now := f.clock.Now()
	f.Description = ""
	f.Date = now.Format(tasks.DateLayout)
	f.Time = now.Format(tasks.TimeLayout)
	f.EditingID = ""
}

func (f *Controller) Editing() bool {
	return f.EditingID != ""
}

// BeginEdit loads t into the draft.
func (f *Controller) BeginEdit(t tasks.Task) {
	f.Description = t.Description
	f.Date = t.Date
	f.Time = t.Time
	f.EditingID = t.ID
}

// Valid reports whether the draft may be submitted.
func (f *Controller) Valid() bool {
	return f.Description != "" &&
		matchesShape(f.Date, "dddd-dd-dd") &&
		matchesShape(f.Time, "dd:dd")
}

// Submit creates or updates a task from the draft and resets the form. An
// invalid draft is left untouched and reports false. Updating a task that
// no longer exists is silently skipped.
func (f *Controller) Submit(m Mutator) (tasks.Task, bool, error) {
	if !f.Valid() {
		return tasks.Task{}, false, nil
	}
	d := tasks.Draft{Description: f.Description, Date: f.Date, Time: f.Time}

	var (
		t   tasks.Task
		err error
	)
	if f.Editing() {
		t, err = m.Update(f.EditingID, d)
		if errors.Is(err, tasks.ErrNotFound) {
			f.Reset()
			return tasks.Task{}, false, nil
		}
	} else {
		t, err = m.Create(d)
	}
	f.Reset()
	return t, true, err
}

// matchesShape checks s against a pattern where 'd' stands for an ASCII
// digit and every other byte must match literally.
func matchesShape(s, pattern string) bool {
	if len(s) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == 'd' {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
			continue
		}
		if s[i] != pattern[i] {
			return false
		}
	}
	return true
}
