package model

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueAt(t *testing.T) {
	t.Run("combines date and time", func(t *testing.T) {
		task := Task{DueDate: day(2026, 3, 10), DueTime: "18:30"}
		want := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)
		if got := task.DueAt(); !got.Equal(want) {
			t.Errorf("DueAt() = %v, want %v", got, want)
		}
	})

	t.Run("malformed time falls back to midnight", func(t *testing.T) {
		task := Task{DueDate: day(2026, 3, 10), DueTime: "garbage"}
		want := day(2026, 3, 10)
		if got := task.DueAt(); !got.Equal(want) {
			t.Errorf("DueAt() = %v, want %v", got, want)
		}
	})
}

func TestDueClassification(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dueDate   time.Time
		dueTime   string
		isDueSoon bool
		isOverdue bool
	}{
		{"later today", day(2026, 3, 10), "18:00", true, false},
		{"earlier today", day(2026, 3, 10), "09:00", false, true},
		{"tomorrow within 24h", day(2026, 3, 11), "11:00", true, false},
		{"tomorrow beyond 24h", day(2026, 3, 11), "13:00", false, false},
		{"last week", day(2026, 3, 3), "12:00", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{DueDate: tt.dueDate, DueTime: tt.dueTime}
			if got := task.IsDueSoon(now); got != tt.isDueSoon {
				t.Errorf("IsDueSoon = %v, want %v", got, tt.isDueSoon)
			}
			if got := task.IsOverdue(now); got != tt.isOverdue {
				t.Errorf("IsOverdue = %v, want %v", got, tt.isOverdue)
			}
		})
	}
}

func TestUpdateProgress(t *testing.T) {
	t.Run("no subtasks keeps explicit progress", func(t *testing.T) {
		task := Task{Progress: 40}
		task.UpdateProgress()
		if task.Progress != 40 {
			t.Errorf("Progress = %d, want 40", task.Progress)
		}
	})

	t.Run("rounds completed ratio", func(t *testing.T) {
		tests := []struct {
			completed, total, want int
		}{
			{1, 2, 50},
			{1, 3, 33},
			{2, 3, 67},
			{0, 4, 0},
			{4, 4, 100},
		}
		for _, tt := range tests {
			task := Task{}
			for i := 0; i < tt.total; i++ {
				task.Subtasks = append(task.Subtasks, SubTask{ID: string(rune('a' + i)), Completed: i < tt.completed})
			}
			task.UpdateProgress()
			if task.Progress != tt.want {
				t.Errorf("%d/%d: Progress = %d, want %d", tt.completed, tt.total, task.Progress, tt.want)
			}
		}
	})
}

func TestAddSubtask(t *testing.T) {
	task := Task{Progress: 70}
	task.AddSubtask(SubTask{ID: "s1", Completed: false})
	if task.Progress != 0 {
		t.Errorf("Progress = %d, want 0 after adding an uncompleted subtask", task.Progress)
	}
	task.AddSubtask(SubTask{ID: "s2", Completed: true})
	if task.Progress != 50 {
		t.Errorf("Progress = %d, want 50", task.Progress)
	}
}

func TestToggleSubtask(t *testing.T) {
	t.Run("toggling twice restores state", func(t *testing.T) {
		task := Task{Subtasks: []SubTask{
			{ID: "s1", Completed: true},
			{ID: "s2", Completed: false},
		}}
		task.UpdateProgress()
		before := task.Progress

		if !task.ToggleSubtask("s2") {
			t.Fatal("ToggleSubtask returned false for existing subtask")
		}
		if task.Progress != 100 {
			t.Errorf("Progress = %d, want 100", task.Progress)
		}
		if !task.ToggleSubtask("s2") {
			t.Fatal("second ToggleSubtask returned false")
		}
		if task.Subtasks[1].Completed {
			t.Error("subtask completed flag not restored")
		}
		if task.Progress != before {
			t.Errorf("Progress = %d, want %d", task.Progress, before)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		task := Task{Subtasks: []SubTask{{ID: "s1"}}}
		if task.ToggleSubtask("nope") {
			t.Error("ToggleSubtask returned true for unknown id")
		}
	})
}

func TestTaskUpdate(t *testing.T) {
	title := "new title"
	progress := 80
	task := Task{Title: "old", Description: "keep", Progress: 10}
	task.Update(TaskUpdate{Title: &title, Progress: &progress})

	if task.Title != "new title" {
		t.Errorf("Title = %q, want %q", task.Title, "new title")
	}
	if task.Description != "keep" {
		t.Errorf("Description = %q, want %q", task.Description, "keep")
	}
	if task.Progress != 80 {
		t.Errorf("Progress = %d, want 80", task.Progress)
	}
}
