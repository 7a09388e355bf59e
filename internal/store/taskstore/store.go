// Package taskstore owns the in-memory task list and its three mutations.
//
// The store is not safe for concurrent use; callers drive it from a single
// event loop. Subscribers are called synchronously after every mutation.
package taskstore

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/model"
)

// Input is an external text source read at add time and cleared on success.
type Input interface {
	Value() string
	Reset()
}

// Option configures a Store.
type Option func(*Store)

// WithIDSource replaces the default Counter.
func WithIDSource(ids IDSource) Option {
	return func(s *Store) { s.ids = ids }
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

type subscriber struct {
	id int
	fn func([]model.Task)
}

// Store holds the task list in insertion order.
type Store struct {
	tasks   []model.Task
	ids     IDSource
	log     *log.Logger
	subs    []subscriber
	nextSub int
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		tasks: []model.Task{},
		ids:   &Counter{},
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a task with the trimmed text. Blank text yields a *ValidationError
// and leaves the list untouched.
func (s *Store) Add(raw string) (model.Task, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return model.Task{}, &ValidationError{Input: raw, Err: ErrEmptyText}
	}
	t := model.Task{ID: s.ids.Next(), Text: text}
	s.tasks = append(s.tasks, t)
	s.log.Debug("task added", "id", t.ID, "count", len(s.tasks))
	s.publish()
	return t, nil
}

// AddFrom adds the current value of in and resets it on success.
func (s *Store) AddFrom(in Input) (model.Task, error) {
	t, err := s.Add(in.Value())
	if err != nil {
		return model.Task{}, err
	}
	in.Reset()
	return t, nil
}

// Toggle flips Completed on the task with the given id. It reports whether a
// task matched; an unknown id leaves the list as it was.
func (s *Store) Toggle(id int64) bool {
	found := false
	next := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID == id {
			t = t.Toggled()
			found = true
		}
		next = append(next, t)
	}
	if found {
		s.tasks = next
		s.log.Debug("task toggled", "id", id)
	}
	s.publish()
	return found
}

// Delete removes the task with the given id, reporting whether one matched.
func (s *Store) Delete(id int64) bool {
	next := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	found := len(next) != len(s.tasks)
	if found {
		s.tasks = next
		s.log.Debug("task deleted", "id", id, "count", len(s.tasks))
	}
	s.publish()
	return found
}

// Tasks returns a copy of the current list.
func (s *Store) Tasks() []model.Task { return slices.Clone(s.tasks) }

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Subscribe registers fn to receive the list after every mutation.
// fn is not called for the current state.
func (s *Store) Subscribe(fn func([]model.Task)) (unsubscribe func()) {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
	}
}

func (s *Store) publish() {
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(s.Tasks())
	}
}
