package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/idilsaglam/ttd/internal/model"
)

func TestFormatTime(t *testing.T) {
	if got := FormatTime(nil, 3); got != OpenEnded {
		t.Errorf("Expected %q, got %q", OpenEnded, got)
	}

	utc := time.Date(2025, 6, 1, 22, 30, 0, 0, time.UTC)
	if got := FormatTime(&utc, 3); got != "2025-06-02 01:30" {
		t.Errorf("Expected offset-shifted local time, got %q", got)
	}
}

func TestDescriptionWidth(t *testing.T) {
	tasks := []model.Task{{Description: "short"}, {Description: "a longer description"}}

	if got := DescriptionWidth(tasks, 12); got != 20 {
		t.Errorf("Expected 20, got %d", got)
	}
	if got := DescriptionWidth([]model.Task{{Description: "tiny"}}, 12); got != 12 {
		t.Errorf("Expected the minimum 12, got %d", got)
	}
}

func TestRenderTasksLayout(t *testing.T) {
	now := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)
	due := now.Add(time.Hour)
	tasks := []model.Task{
		{Description: "upcoming", Time: &due},
		{Description: "open", Done: true},
	}

	var buf bytes.Buffer
	RenderTasks(&buf, tasks, 12, 0, now, "  ")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header, rule and 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "  ") {
		t.Error("Indent prefix missing")
	}
	if !strings.Contains(lines[0], "DESCRIPTION") || !strings.Contains(lines[0], "TIME") {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[2], "upcoming") || !strings.Contains(lines[2], "2025-06-04 11:00") {
		t.Errorf("Unexpected first row: %q", lines[2])
	}
	if !strings.Contains(lines[3], OpenEnded) {
		t.Errorf("Unexpected second row: %q", lines[3])
	}
}
