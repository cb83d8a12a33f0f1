package service

// Task represents a single task record as held by the server.
type Task struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Task     string `json:"task"`     // free-text description
	Deadline string `json:"deadline"` // date string, usually YYYY-MM-DD
}

// Input returns the mutable fields of the task.
func (t Task) Input() TaskInput {
	return TaskInput{Name: t.Name, Task: t.Task, Deadline: t.Deadline}
}

// TaskInput is the request body for create and update.
type TaskInput struct {
	Name     string `json:"name"`
	Task     string `json:"task"`
	Deadline string `json:"deadline"`
}
