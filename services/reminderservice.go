package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"planora/model"
	"planora/store"
)

// ReminderService mails assigned people about their tasks that are due
// soon or overdue.
type ReminderService struct {
	tasks *store.TaskStore
}

func NewReminderService(tasks *store.TaskStore) *ReminderService {
	return &ReminderService{tasks: tasks}
}

// SendDueReminders sends one mail per assignee listing that person's due
// tasks. It returns the number of mails sent; delivery failures are logged
// and skipped so one bad address doesn't starve the rest.
func (r *ReminderService) SendDueReminders(now time.Time) int {
	byEmail := map[string][]model.Task{}
	for _, task := range r.tasks.DueTasks(now) {
		for _, person := range task.AssignedPeople {
			if person.Email == "" {
				continue
			}
			byEmail[person.Email] = append(byEmail[person.Email], task)
		}
	}

	sent := 0
	for email, due := range byEmail {
		body := reminderBody(due, now)
		if err := SendEmail(email, "Tasks due soon", body); err != nil {
			log.Printf("reminder to %s failed: %v", email, err)
			continue
		}
		sent++
	}
	return sent
}

// Run fires SendDueReminders on every tick until stop is closed.
func (r *ReminderService) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			r.SendDueReminders(now)
		}
	}
}

func reminderBody(tasks []model.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString("<h1>Planora</h1>")
	b.WriteString("<p>The following tasks need your attention:</p><ul>")
	for _, t := range tasks {
		state := "due soon"
		if t.IsOverdue(now) {
			state = "overdue"
		}
		fmt.Fprintf(&b, "<li><strong>%s</strong>: %s at %s (%s)</li>",
			t.Title, t.DueDate.Format("2006-01-02"), t.DueTime, state)
	}
	b.WriteString("</ul>")
	return b.String()
}
