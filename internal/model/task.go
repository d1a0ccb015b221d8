package model

import (
	"sort"
	"strings"
	"time"
)

// DefaultSession is the fallback session name. It is never persisted as a
// phantom entry; operations that only read resolve it lazily, operations that
// mutate create it on demand.
const DefaultSession = "default"

// Task is the domain model for a tracked task.
type Task struct {
	Description string     `json:"description"`
	Time        *time.Time `json:"time"` // UTC, nil means open-ended
	Done        bool       `json:"done"`
}

// Store holds every session plus the current-session pointer.
type Store struct {
	CurrentSession *string           `json:"current_session"`
	Sessions       map[string][]Task `json:"sessions"`
}

// NewStore returns an empty store with an initialized session map.
func NewStore() *Store {
	return &Store{Sessions: make(map[string][]Task)}
}

// SessionName resolves the current session name, falling back to "default".
func (s *Store) SessionName() string {
	if s.CurrentSession != nil && *s.CurrentSession != "" {
		return *s.CurrentSession
	}
	return DefaultSession
}

// SetCurrent points the store at the named session.
func (s *Store) SetCurrent(name string) {
	s.CurrentSession = &name
}

// EnsureSession creates the named session if absent and returns its tasks.
func (s *Store) EnsureSession(name string) []Task {
	if s.Sessions == nil {
		s.Sessions = make(map[string][]Task)
	}
	if _, ok := s.Sessions[name]; !ok {
		s.Sessions[name] = []Task{}
	}
	return s.Sessions[name]
}

// SessionNames returns all session names in lexical order.
func (s *Store) SessionNames() []string {
	names := make([]string, 0, len(s.Sessions))
	for name := range s.Sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortTasks orders timed tasks ascending before untimed ones. The sort is
// stable so equal or absent times keep their relative insertion order.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].Time, tasks[j].Time
		switch {
		case a != nil && b != nil:
			return a.Before(*b)
		case a != nil:
			return true
		default:
			return false
		}
	})
}

// CompletedCount returns how many tasks are marked done.
func CompletedCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// FindExact returns the position of the task whose description equals desc
// case-insensitively, or -1.
func FindExact(tasks []Task, desc string) int {
	want := strings.ToLower(desc)
	for i, t := range tasks {
		if strings.ToLower(t.Description) == want {
			return i
		}
	}
	return -1
}
