package todolist

import (
	"strings"

	"todolist/internal/service"
)

// Match returns the tasks whose name or description contains query,
// ignoring case. An empty query returns a copy of all tasks.
func Match(tasks []service.Task, query string) []service.Task {
	if query == "" {
		return cloneTasks(tasks)
	}
	q := strings.ToLower(query)
	result := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.Task), q) {
			result = append(result, t)
		}
	}
	return result
}

func cloneTasks(tasks []service.Task) []service.Task {
	if tasks == nil {
		return nil
	}
	out := make([]service.Task, len(tasks))
	copy(out, tasks)
	return out
}
