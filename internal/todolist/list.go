// Package todolist holds the state of the task list view: the authoritative
// task collection as last returned by the server, the filtered view derived
// from the search text, the edit form, and the task being edited.
//
// Every mutation is followed by a full reload, so the held list is always
// whatever the server last returned. Failures are logged and returned; state
// is never rolled forward on failure.
package todolist

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"todolist/internal/service"
)

// Form holds the three editable task fields.
type Form struct {
	Name     string
	Task     string
	Deadline string
}

// Input converts the form into a request body.
func (f Form) Input() service.TaskInput {
	return service.TaskInput{Name: f.Name, Task: f.Task, Deadline: f.Deadline}
}

// IsZero reports whether every field is empty.
func (f Form) IsZero() bool {
	return f == Form{}
}

// List is the task list view state. It is safe for concurrent use; the lock
// is never held across a backend call, so overlapping operations race at the
// server and the last completed Load wins.
type List struct {
	svc    service.Service
	logger *log.Logger

	mu        sync.RWMutex
	tasks     []service.Task
	filtered  []service.Task
	query     string
	form      Form
	editingID int
	editing   bool
}

// New creates an empty list backed by svc. Failures are written to logger.
func New(svc service.Service, logger *log.Logger) *List {
	return &List{svc: svc, logger: logger}
}

// Load fetches all tasks, replaces the held list and re-applies the current
// filter. On failure the previous list is kept.
func (l *List) Load(ctx context.Context) error {
	tasks, err := l.svc.ListTasks(ctx)
	if err != nil {
		l.logger.Error("fetching tasks failed", "op", "load", "err", err)
		return err
	}

	l.mu.Lock()
	l.tasks = tasks
	l.filtered = Match(tasks, l.query)
	l.mu.Unlock()

	l.logger.Debug("tasks loaded", "count", len(tasks))
	return nil
}

// Create sends the form as a new task. On success the form is cleared and the
// list reloaded; on failure the form keeps its input.
func (l *List) Create(ctx context.Context) error {
	form := l.Form()
	created, err := l.svc.CreateTask(ctx, form.Input())
	if err != nil {
		l.logger.Error("adding task failed", "op", "create", "name", form.Name, "err", err)
		return err
	}
	l.logger.Debug("task created", "id", created.ID)

	l.mu.Lock()
	l.form = Form{}
	l.mu.Unlock()

	return l.Load(ctx)
}

// Update sends the form as the new fields of task id. On success the form and
// the editing target are cleared and the list reloaded.
func (l *List) Update(ctx context.Context, id int) error {
	form := l.Form()
	if _, err := l.svc.UpdateTask(ctx, id, form.Input()); err != nil {
		l.logger.Error("editing task failed", "op", "update", "id", id, "err", err)
		return err
	}
	l.logger.Debug("task updated", "id", id)

	l.mu.Lock()
	l.form = Form{}
	l.editing = false
	l.editingID = 0
	l.mu.Unlock()

	return l.Load(ctx)
}

// Delete removes task id and reloads. On failure the stale row stays.
func (l *List) Delete(ctx context.Context, id int) error {
	if err := l.svc.DeleteTask(ctx, id); err != nil {
		l.logger.Error("deleting task failed", "op", "delete", "id", id, "err", err)
		return err
	}
	l.logger.Debug("task deleted", "id", id)
	return l.Load(ctx)
}

// Submit updates the task being edited, or creates a new one.
func (l *List) Submit(ctx context.Context) error {
	if id, ok := l.Editing(); ok {
		return l.Update(ctx, id)
	}
	return l.Create(ctx)
}

// BeginEdit copies task into the form and makes it the edit target.
func (l *List) BeginEdit(task service.Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.form = Form{Name: task.Name, Task: task.Task, Deadline: task.Deadline}
	l.editingID = task.ID
	l.editing = true
}

// CancelEdit drops the edit target and clears the form.
func (l *List) CancelEdit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.form = Form{}
	l.editing = false
	l.editingID = 0
}

// Filter sets the search text and recomputes the filtered view.
func (l *List) Filter(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = query
	l.filtered = Match(l.tasks, query)
}

// SetForm replaces the form fields.
func (l *List) SetForm(f Form) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.form = f
}

// Form returns the current form fields.
func (l *List) Form() Form {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.form
}

// Editing returns the edit target, if any.
func (l *List) Editing() (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.editingID, l.editing
}

// Query returns the current search text.
func (l *List) Query() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.query
}

// Tasks returns a copy of the authoritative list.
func (l *List) Tasks() []service.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneTasks(l.tasks)
}

// Filtered returns a copy of the filtered view.
func (l *List) Filtered() []service.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneTasks(l.filtered)
}

// Find looks up a task in the authoritative list by ID.
func (l *List) Find(id int) (service.Task, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}
