package model

import (
	"math"
	"time"
)

// Task is a unit of work belonging to a category. Tasks are stored both in
// the store's flat list and as a copy inside the owning category's list.
type Task struct {
	TaskID         string       `json:"id"`
	CategoryID     string       `json:"categoryId"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	AssignedPeople []Person     `json:"assignedPeople,omitempty"`
	DueDate        time.Time    `json:"dueDate"`
	DueTime        string       `json:"dueTime"` // "HH:MM"
	EstimatedTime  float64      `json:"estimatedTime"`
	Progress       int          `json:"progress"` // 0-100
	Attachments    []Attachment `json:"attachments,omitempty"`
	Subtasks       []SubTask    `json:"subtasks,omitempty"`
}

// TaskUpdate carries the fields of a partial task update. Nil fields are
// left untouched.
type TaskUpdate struct {
	Title         *string
	Description   *string
	DueDate       *time.Time
	DueTime       *string
	EstimatedTime *float64
	Progress      *int
}

// Clone returns a copy whose nested slices share no backing arrays with
// the receiver, so later in-place mutations don't reach it.
func (t Task) Clone() Task {
	out := t
	if t.AssignedPeople != nil {
		out.AssignedPeople = append([]Person(nil), t.AssignedPeople...)
	}
	if t.Attachments != nil {
		out.Attachments = append([]Attachment(nil), t.Attachments...)
	}
	if t.Subtasks != nil {
		out.Subtasks = append([]SubTask(nil), t.Subtasks...)
		for i := range out.Subtasks {
			if p := out.Subtasks[i].AssignedPerson; p != nil {
				person := *p
				out.Subtasks[i].AssignedPerson = &person
			}
		}
	}
	return out
}

// DueAt combines the due date's calendar day with the "HH:MM" due time.
// A malformed due time falls back to midnight.
func (t *Task) DueAt() time.Time {
	y, m, d := t.DueDate.Date()
	clock, err := time.Parse("15:04", t.DueTime)
	if err != nil {
		return time.Date(y, m, d, 0, 0, 0, 0, t.DueDate.Location())
	}
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, t.DueDate.Location())
}

// IsDueSoon reports whether the task is due strictly within the next 24
// hours and not yet overdue.
func (t *Task) IsDueSoon(now time.Time) bool {
	due := t.DueAt()
	return due.After(now) && due.Before(now.Add(24*time.Hour))
}

// IsOverdue reports whether the due timestamp is in the past.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueAt().Before(now)
}

// UpdateProgress recomputes progress from subtask completion. With no
// subtasks the externally set progress is kept as-is.
func (t *Task) UpdateProgress() {
	if len(t.Subtasks) == 0 {
		return
	}
	completed := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			completed++
		}
	}
	t.Progress = int(math.Round(float64(completed) / float64(len(t.Subtasks)) * 100))
}

// AddSubtask appends a subtask and recomputes progress.
func (t *Task) AddSubtask(subtask SubTask) {
	t.Subtasks = append(t.Subtasks, subtask)
	t.UpdateProgress()
}

// ToggleSubtask flips the completed flag of the subtask with the given id
// and recomputes progress. It reports whether the subtask was found.
func (t *Task) ToggleSubtask(subtaskID string) bool {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			t.Subtasks[i].Completed = !t.Subtasks[i].Completed
			t.UpdateProgress()
			return true
		}
	}
	return false
}

// AddAttachment appends an attachment.
func (t *Task) AddAttachment(attachment Attachment) {
	t.Attachments = append(t.Attachments, attachment)
}

// Update applies a partial update and recomputes progress.
func (t *Task) Update(upd TaskUpdate) {
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.DueDate != nil {
		t.DueDate = *upd.DueDate
	}
	if upd.DueTime != nil {
		t.DueTime = *upd.DueTime
	}
	if upd.EstimatedTime != nil {
		t.EstimatedTime = *upd.EstimatedTime
	}
	if upd.Progress != nil {
		t.Progress = *upd.Progress
	}
	t.UpdateProgress()
}
