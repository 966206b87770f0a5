// Package tasks holds the ordered task list and its persistence.
package tasks

import (
	"time"

	"mintodo/internal/theme"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Task is a single to-do item. Field names match the persisted record.
type Task struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Completed   bool       `json:"completed"`
	Theme       theme.Name `json:"theme"`
}

// Draft carries the user-editable fields of a task.
type Draft struct {
	Description string
	Date        string
	Time        string
}

// Due combines Date and Time into an instant in loc. It reports false
// when either part does not parse.
func Due(t Task, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	due, err := time.ParseInLocation(DateLayout+"T"+TimeLayout, t.Date+"T"+t.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// IsOverdue reports whether the task's local due instant is strictly before
// now. Only the instant of now matters, not its location. Completion is not
// considered. An unparsable due instant is never overdue.
func IsOverdue(t Task, now time.Time) bool {
	due, ok := Due(t, time.Local)
	if !ok {
		return false
	}
	return due.Before(now)
}

// StartsGroup reports whether list[i] opens a new date group.
func StartsGroup(list []Task, i int) bool {
	if i < 0 || i >= len(list) {
		return false
	}
	return i == 0 || list[i].Date != list[i-1].Date
}
