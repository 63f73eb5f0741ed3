package model

// SubTask is a checklist item within a task. Completion of subtasks
// drives the owning task's progress.
type SubTask struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	AssignedPerson *Person `json:"assignedPerson,omitempty"`
	Completed      bool    `json:"completed"`
}
