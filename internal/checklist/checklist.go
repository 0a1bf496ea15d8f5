// Package checklist provides the per-event planning task list.
//
// Checklists are ephemeral working state, not part of the durable event
// collection: each session starts from the seed tasks, matching the
// original application's behavior.
package checklist

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Task is a single checklist item.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate,omitempty"`
}

// Checklist is an ordered task list for one event.
type Checklist struct {
	tasks []Task
}

// New returns a checklist seeded with the standard planning tasks.
func New() *Checklist {
	return &Checklist{tasks: []Task{
		{ID: "task1", Text: "Book Venue"},
		{ID: "task2", Text: "Hire Photographer"},
		{ID: "task3", Text: "Send Invitations"},
	}}
}

// Add appends a task. Empty text is rejected.
func (c *Checklist) Add(text string) (Task, error) {
	if strings.TrimSpace(text) == "" {
		return Task{}, fmt.Errorf("task cannot be empty")
	}
	t := Task{
		ID:   fmt.Sprintf("task%d", len(c.tasks)+1),
		Text: text,
	}
	c.tasks = append(c.tasks, t)
	return t, nil
}

// Toggle flips the completed flag of the task with the given id.
// Reports whether a task matched.
func (c *Checklist) Toggle(id string) bool {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i].Completed = !c.tasks[i].Completed
			return true
		}
	}
	return false
}

// Tasks returns a copy of the task list in order.
func (c *Checklist) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// ShareText renders the checklist as shareable plain text, one task per
// line with a checkbox marker.
func (c *Checklist) ShareText() string {
	lines := make([]string, len(c.tasks))
	for i, t := range c.tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		lines[i] = fmt.Sprintf("%s %s", box, t.Text)
	}
	return strings.Join(lines, "\n")
}

// CountdownDays returns the number of days until the event date, rounded
// up, and whether the date parsed. Dates use the 2006-01-02 layout; a past
// date yields a negative count.
func CountdownDays(date string, now time.Time) (int, bool) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	days := math.Ceil(d.Sub(now).Hours() / 24)
	return int(days), true
}
