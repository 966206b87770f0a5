package tasks

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"mintodo/internal/theme"
)

// ErrNotFound is returned when no task has the requested id.
var ErrNotFound = errors.New("task not found")

// Backend is the durable key-value storage the Store mirrors into.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Store is the ordered in-memory task list. Every mutation writes the full
// list to the backend under a single key before returning.
type Store struct {
	backend Backend
	key     string
	logger  *log.Logger
	newID   func() string
	tasks   []Task
}

type Option func(*Store)

// WithLogger sets the logger used for load fallbacks and write failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDFunc replaces the id generator.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Open loads the list stored under key. A missing, unreadable or invalid
// record yields an empty list; the cause is only logged.
func Open(backend Backend, key string, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     key,
		logger:  log.New(io.Discard),
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = s.load()
	return s
}

func (s *Store) load() []Task {
	data, ok, err := s.backend.Get(s.key)
	if err != nil {
		s.logger.Warn("read tasks failed, starting empty", "key", s.key, "err", err)
		return []Task{}
	}
	if !ok {
		s.logger.Debug("no stored tasks", "key", s.key)
		return []Task{}
	}
	list, err := Decode(data)
	if err != nil {
		s.logger.Warn("stored tasks unusable, starting empty", "key", s.key, "err", err)
		return []Task{}
	}
	s.logger.Debug("loaded tasks", "key", s.key, "count", len(list))
	return list
}

func (s *Store) save() error {
	data, err := Encode(s.tasks)
	if err != nil {
		return err
	}
	if err := s.backend.Put(s.key, data); err != nil {
		s.logger.Error("write tasks failed", "key", s.key, "err", err)
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// List returns a copy of the tasks in display order.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with id.
func (s *Store) Get(id string) (Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Create appends a new, incomplete task built from d.
func (s *Store) Create(d Draft) (Task, error) {
	t := Task{
		ID:          s.newID(),
		Description: d.Description,
		Date:        d.Date,
		Time:        d.Time,
		Theme:       theme.Classify(d.Description),
	}
	s.tasks = append(s.tasks, t)
	return t, s.save()
}

// Update replaces the editable fields of the task with id in place.
func (s *Store) Update(id string, d Draft) (Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	t := &s.tasks[i]
	t.Description = d.Description
	t.Date = d.Date
	t.Time = d.Time
	t.Theme = theme.Classify(d.Description)
	return *t, s.save()
}

// Toggle flips the completion flag of the task with id.
func (s *Store) Toggle(id string) (Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("toggle %s: %w", id, ErrNotFound)
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return s.tasks[i], s.save()
}

// Remove deletes the task with id. Removing an unknown id does nothing.
func (s *Store) Remove(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return s.save()
}

// Reorder moves the task at from so that it ends up at index to. Equal or
// out of range indices leave the list untouched.
func (s *Store) Reorder(from, to int) error {
	n := len(s.tasks)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return nil
	}
	moved := s.tasks[from]
	rest := append(s.tasks[:from:from], s.tasks[from+1:]...)
	out := make([]Task, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	s.tasks = out
	return s.save()
}
