package model

import (
	"testing"
	"time"
)

func TestCategoryProgress(t *testing.T) {
	t.Run("empty category", func(t *testing.T) {
		c := Category{}
		if got := c.Progress(); got != 0 {
			t.Errorf("Progress() = %d, want 0", got)
		}
		if got := c.TotalTasks(); got != 0 {
			t.Errorf("TotalTasks() = %d, want 0", got)
		}
	})

	t.Run("rounded mean", func(t *testing.T) {
		c := Category{Tasks: []Task{
			{TaskID: "t1", Progress: 50},
			{TaskID: "t2", Progress: 25},
			{TaskID: "t3", Progress: 100},
		}}
		// mean of 50, 25, 100 is 58.33
		if got := c.Progress(); got != 58 {
			t.Errorf("Progress() = %d, want 58", got)
		}
		if got := c.TotalTasks(); got != 3 {
			t.Errorf("TotalTasks() = %d, want 3", got)
		}
	})
}

func TestCategoryDueTasks(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	c := Category{Tasks: []Task{
		{TaskID: "past", DueDate: day(2026, 3, 8)},
		{TaskID: "tomorrow", DueDate: day(2026, 3, 11)},
		{TaskID: "far", DueDate: day(2026, 3, 14)},
	}}

	due := c.DueTasks(now)
	if len(due) != 2 {
		t.Fatalf("len(DueTasks) = %d, want 2", len(due))
	}
	if due[0].TaskID != "past" || due[1].TaskID != "tomorrow" {
		t.Errorf("DueTasks = [%s %s], want [past tomorrow]", due[0].TaskID, due[1].TaskID)
	}
}

func TestCategoryDeleteTask(t *testing.T) {
	c := Category{Tasks: []Task{{TaskID: "t1"}, {TaskID: "t2"}}}

	c.DeleteTask("t1")
	if len(c.Tasks) != 1 || c.Tasks[0].TaskID != "t2" {
		t.Errorf("Tasks after delete = %v, want only t2", c.Tasks)
	}

	// unknown id is a no-op
	c.DeleteTask("nope")
	if len(c.Tasks) != 1 {
		t.Errorf("len(Tasks) = %d, want 1", len(c.Tasks))
	}
}

func TestCategoryUpdate(t *testing.T) {
	c := Category{Name: "Alpha", Description: "first"}

	c.Update("Beta", "")
	if c.Name != "Beta" {
		t.Errorf("Name = %q, want %q", c.Name, "Beta")
	}
	if c.Description != "first" {
		t.Errorf("Description = %q, want %q", c.Description, "first")
	}
}
