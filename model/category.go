package model

import (
	"math"
	"time"
)

// Category is a named project grouping a set of tasks. The task list holds
// copies of tasks from the store's flat list, not live references.
type Category struct {
	CategoryID  string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tasks       []Task    `json:"tasks"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Clone returns a copy with its own task list, deep enough that later
// in-place task mutations don't reach it.
func (c Category) Clone() Category {
	out := c
	if c.Tasks != nil {
		out.Tasks = make([]Task, len(c.Tasks))
		for i := range c.Tasks {
			out.Tasks[i] = c.Tasks[i].Clone()
		}
	}
	return out
}

// AddTask appends a task copy to the category's own list.
func (c *Category) AddTask(task Task) {
	c.Tasks = append(c.Tasks, task)
}

// DeleteTask removes the task with the given id from the category's list.
// Unknown ids are a no-op.
func (c *Category) DeleteTask(taskID string) {
	for i := range c.Tasks {
		if c.Tasks[i].TaskID == taskID {
			c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
			return
		}
	}
}

// Update replaces name and description, keeping the current value where
// the replacement is empty.
func (c *Category) Update(name, description string) {
	if name != "" {
		c.Name = name
	}
	if description != "" {
		c.Description = description
	}
}

// TotalTasks is the number of tasks in the category's own list.
func (c *Category) TotalTasks() int {
	return len(c.Tasks)
}

// Progress is the rounded mean of the tasks' progress values, 0 when the
// category has no tasks.
func (c *Category) Progress() int {
	if len(c.Tasks) == 0 {
		return 0
	}
	total := 0
	for _, t := range c.Tasks {
		total += t.Progress
	}
	return int(math.Round(float64(total) / float64(len(c.Tasks))))
}

// DueTasks returns the category's tasks whose due day starts within the
// next 24 hours. This is deliberately looser than Task.IsDueSoon and also
// catches already overdue tasks.
func (c *Category) DueTasks(now time.Time) []Task {
	var due []Task
	cutoff := now.Add(24 * time.Hour)
	for _, t := range c.Tasks {
		if !t.DueDate.After(cutoff) {
			due = append(due, t)
		}
	}
	return due
}
