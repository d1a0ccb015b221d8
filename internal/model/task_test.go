package model

import (
	"testing"
	"time"
)

func at(h int) *time.Time {
	t := time.Date(2025, 6, 1, h, 0, 0, 0, time.UTC)
	return &t
}

func TestSortTasksTimedBeforeUntimed(t *testing.T) {
	tasks := []Task{
		{Description: "open-ended"},
		{Description: "evening", Time: at(18)},
		{Description: "also open"},
		{Description: "morning", Time: at(8)},
	}

	SortTasks(tasks)

	order := []string{"morning", "evening", "open-ended", "also open"}
	for i, want := range order {
		if tasks[i].Description != want {
			t.Fatalf("Position %d: expected %q, got %q", i, want, tasks[i].Description)
		}
	}

	// Property: every timed task precedes every untimed one, timed times
	// are non-decreasing.
	seenUntimed := false
	var prev *time.Time
	for _, task := range tasks {
		if task.Time == nil {
			seenUntimed = true
			continue
		}
		if seenUntimed {
			t.Fatal("Timed task after untimed task")
		}
		if prev != nil && task.Time.Before(*prev) {
			t.Fatal("Timed tasks not in ascending order")
		}
		prev = task.Time
	}
}

func TestSortTasksStableForEqualTimes(t *testing.T) {
	tasks := []Task{
		{Description: "first", Time: at(9)},
		{Description: "second", Time: at(9)},
		{Description: "third"},
		{Description: "fourth"},
	}

	SortTasks(tasks)

	if tasks[0].Description != "first" || tasks[1].Description != "second" {
		t.Errorf("Equal times should keep insertion order, got %q then %q",
			tasks[0].Description, tasks[1].Description)
	}
	if tasks[2].Description != "third" || tasks[3].Description != "fourth" {
		t.Errorf("Untimed tasks should keep insertion order, got %q then %q",
			tasks[2].Description, tasks[3].Description)
	}
}

func TestSessionNameFallback(t *testing.T) {
	s := NewStore()
	if s.SessionName() != DefaultSession {
		t.Errorf("Expected %q, got %q", DefaultSession, s.SessionName())
	}

	s.SetCurrent("work")
	if s.SessionName() != "work" {
		t.Errorf("Expected 'work', got %q", s.SessionName())
	}
}

func TestEnsureSessionCreatesOnDemand(t *testing.T) {
	s := NewStore()
	if _, ok := s.Sessions["work"]; ok {
		t.Fatal("Session should not exist yet")
	}
	s.EnsureSession("work")
	if _, ok := s.Sessions["work"]; !ok {
		t.Fatal("Session should exist after EnsureSession")
	}
	s.Sessions["work"] = append(s.Sessions["work"], Task{Description: "x"})
	s.EnsureSession("work")
	if len(s.Sessions["work"]) != 1 {
		t.Error("EnsureSession must not reset an existing session")
	}
}

func TestFindExact(t *testing.T) {
	tasks := []Task{{Description: "Buy Milk"}, {Description: "walk dog"}}

	if i := FindExact(tasks, "buy milk"); i != 0 {
		t.Errorf("Expected index 0, got %d", i)
	}
	if i := FindExact(tasks, "WALK DOG"); i != 1 {
		t.Errorf("Expected index 1, got %d", i)
	}
	if i := FindExact(tasks, "missing"); i != -1 {
		t.Errorf("Expected -1, got %d", i)
	}
}
