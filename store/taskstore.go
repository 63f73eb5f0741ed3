package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"planora/model"
)

// TaskStore owns every category and the flat, cross-category task list.
// Tasks live in the flat list; the owning category keeps its own copy, so
// the two can drift (a task added under an unknown category id stays
// orphaned from every category's list).
type TaskStore struct {
	mu         sync.RWMutex
	categories []*model.Category
	tasks      []*model.Task

	onChange func()
}

func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// AddTaskParams carries the input of AddTask.
type AddTaskParams struct {
	CategoryID     string
	Title          string
	Description    string
	AssignedPeople []model.Person
	DueDate        time.Time
	DueTime        string
	EstimatedTime  float64
}

// AddProject creates a category with an empty task list and returns a copy.
func (s *TaskStore) AddProject(name, description string) model.Category {
	category := model.Category{
		CategoryID:  uuid.New().String(),
		Name:        name,
		Description: description,
		Tasks:       []model.Task{},
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.categories = append(s.categories, &category)
	s.mu.Unlock()

	s.notify()
	return category.Clone()
}

// AddTask appends a new task with progress 0 to the flat list and, when a
// category with the given id exists, a copy into that category's list.
func (s *TaskStore) AddTask(params AddTaskParams) model.Task {
	task := model.Task{
		TaskID:         uuid.New().String(),
		CategoryID:     params.CategoryID,
		Title:          params.Title,
		Description:    params.Description,
		AssignedPeople: params.AssignedPeople,
		DueDate:        params.DueDate,
		DueTime:        params.DueTime,
		EstimatedTime:  params.EstimatedTime,
		Progress:       0,
		Attachments:    []model.Attachment{},
		Subtasks:       []model.SubTask{},
	}

	s.mu.Lock()
	stored := task.Clone()
	s.tasks = append(s.tasks, &stored)
	if category := s.findCategory(params.CategoryID); category != nil {
		category.AddTask(task.Clone())
	}
	s.mu.Unlock()

	s.notify()
	return task
}

// AddSubtask creates an uncompleted subtask under the task with the given
// id. An unknown task id drops the subtask.
func (s *TaskStore) AddSubtask(taskID, title string, assignedPerson *model.Person) (model.SubTask, bool) {
	subtask := model.SubTask{
		ID:             uuid.New().String(),
		Title:          title,
		AssignedPerson: assignedPerson,
		Completed:      false,
	}

	s.mu.Lock()
	task := s.findTask(taskID)
	if task == nil {
		s.mu.Unlock()
		return model.SubTask{}, false
	}
	task.AddSubtask(subtask)
	if mirror := s.findCategoryTask(task.CategoryID, taskID); mirror != nil {
		mirror.AddSubtask(subtask)
	}
	s.mu.Unlock()

	s.notify()
	return subtask, true
}

// ToggleSubtask flips a subtask's completed flag and recomputes the owning
// task's progress. Unknown ids are a no-op.
func (s *TaskStore) ToggleSubtask(taskID, subtaskID string) bool {
	s.mu.Lock()
	task := s.findTask(taskID)
	if task == nil || !task.ToggleSubtask(subtaskID) {
		s.mu.Unlock()
		return false
	}
	if mirror := s.findCategoryTask(task.CategoryID, taskID); mirror != nil {
		mirror.ToggleSubtask(subtaskID)
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// AddAttachment attaches a link, image or document to a task.
func (s *TaskStore) AddAttachment(taskID string, attachment model.Attachment) bool {
	s.mu.Lock()
	task := s.findTask(taskID)
	if task == nil {
		s.mu.Unlock()
		return false
	}
	task.AddAttachment(attachment)
	if mirror := s.findCategoryTask(task.CategoryID, taskID); mirror != nil {
		mirror.AddAttachment(attachment)
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// UpdateTask applies a partial update to a task in the flat list.
func (s *TaskStore) UpdateTask(taskID string, upd model.TaskUpdate) bool {
	s.mu.Lock()
	task := s.findTask(taskID)
	if task == nil {
		s.mu.Unlock()
		return false
	}
	task.Update(upd)
	if mirror := s.findCategoryTask(task.CategoryID, taskID); mirror != nil {
		mirror.Update(upd)
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// UpdateCategory replaces a category's name and description, keeping the
// current value where the replacement is empty.
func (s *TaskStore) UpdateCategory(categoryID, name, description string) bool {
	s.mu.Lock()
	category := s.findCategory(categoryID)
	if category == nil {
		s.mu.Unlock()
		return false
	}
	category.Update(name, description)
	s.mu.Unlock()

	s.notify()
	return true
}

// DeleteCategoryTask removes a task from a category's own list. The flat
// list keeps the task; there is no cascading delete.
func (s *TaskStore) DeleteCategoryTask(categoryID, taskID string) bool {
	s.mu.Lock()
	category := s.findCategory(categoryID)
	if category == nil {
		s.mu.Unlock()
		return false
	}
	category.DeleteTask(taskID)
	s.mu.Unlock()

	s.notify()
	return true
}

// TodayTasks returns the tasks whose due date falls on the current
// calendar day, ignoring the time of day.
func (s *TaskStore) TodayTasks(now time.Time) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Task
	for _, t := range s.tasks {
		if sameDay(t.DueDate, now) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// TodaysRecentTasks is TodayTasks truncated to the first 3 matches in
// list order.
func (s *TaskStore) TodaysRecentTasks(now time.Time) []model.Task {
	tasks := s.TodayTasks(now)
	if len(tasks) > 3 {
		tasks = tasks[:3]
	}
	return tasks
}

// TodoTasks returns the tasks with progress below 100, ascending by due
// date.
func (s *TaskStore) TodoTasks() []model.Task {
	s.mu.RLock()
	var out []model.Task
	for _, t := range s.tasks {
		if t.Progress < 100 {
			out = append(out, t.Clone())
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// DueTasks returns the tasks that are due soon or overdue.
func (s *TaskStore) DueTasks(now time.Time) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Task
	for _, t := range s.tasks {
		if t.IsDueSoon(now) || t.IsOverdue(now) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// RecentProjects returns up to 3 categories, most recently created first.
func (s *TaskStore) RecentProjects() []model.Category {
	s.mu.RLock()
	out := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c.Clone())
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// Categories returns a copy of every category.
func (s *TaskStore) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c.Clone())
	}
	return out
}

// Tasks returns a copy of the flat task list.
func (s *TaskStore) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.Clone())
	}
	return out
}

// Category returns a copy of the category with the given id.
func (s *TaskStore) Category(categoryID string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c := s.findCategory(categoryID); c != nil {
		return c.Clone(), true
	}
	return model.Category{}, false
}

// Task returns a copy of the task with the given id from the flat list.
func (s *TaskStore) Task(taskID string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t := s.findTask(taskID); t != nil {
		return t.Clone(), true
	}
	return model.Task{}, false
}

// Snapshot returns the serializable form of the store.
func (s *TaskStore) Snapshot() model.StoreSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := model.StoreSnapshot{
		Categories: make([]model.Category, 0, len(s.categories)),
		Tasks:      make([]model.Task, 0, len(s.tasks)),
	}
	for _, c := range s.categories {
		snap.Categories = append(snap.Categories, c.Clone())
	}
	for _, t := range s.tasks {
		snap.Tasks = append(snap.Tasks, t.Clone())
	}
	return snap
}

// Restore replaces the store contents with a previously taken snapshot.
func (s *TaskStore) Restore(snap model.StoreSnapshot) {
	s.mu.Lock()
	s.categories = make([]*model.Category, 0, len(snap.Categories))
	for i := range snap.Categories {
		category := snap.Categories[i].Clone()
		s.categories = append(s.categories, &category)
	}
	s.tasks = make([]*model.Task, 0, len(snap.Tasks))
	for i := range snap.Tasks {
		task := snap.Tasks[i].Clone()
		s.tasks = append(s.tasks, &task)
	}
	s.mu.Unlock()
}

func (s *TaskStore) findCategory(categoryID string) *model.Category {
	for _, c := range s.categories {
		if c.CategoryID == categoryID {
			return c
		}
	}
	return nil
}

// findCategoryTask locates the category-held copy of a task so mutations
// on the flat list can be mirrored into it. Orphaned tasks have no copy.
func (s *TaskStore) findCategoryTask(categoryID, taskID string) *model.Task {
	category := s.findCategory(categoryID)
	if category == nil {
		return nil
	}
	for i := range category.Tasks {
		if category.Tasks[i].TaskID == taskID {
			return &category.Tasks[i]
		}
	}
	return nil
}

func (s *TaskStore) findTask(taskID string) *model.Task {
	for _, t := range s.tasks {
		if t.TaskID == taskID {
			return t
		}
	}
	return nil
}

func (s *TaskStore) setOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *TaskStore) notify() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
