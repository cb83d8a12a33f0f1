package todolist

import (
	"testing"

	"todolist/internal/service"
)

func TestMatch(t *testing.T) {
	tasks := []service.Task{
		{ID: 1, Name: "Buy milk"},
		{ID: 2, Name: "Walk dog"},
	}

	got := Match(tasks, "MILK")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Match(MILK) = %+v, want only task 1", got)
	}
}

func TestMatch_Description(t *testing.T) {
	tasks := []service.Task{
		{ID: 1, Name: "Errand", Task: "Pick up the Dry Cleaning"},
		{ID: 2, Name: "Chore", Task: "hoover"},
	}

	got := Match(tasks, "dry clean")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Match() = %+v, want only task 1", got)
	}
}

func TestMatch_EmptyQueryReturnsCopy(t *testing.T) {
	tasks := []service.Task{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	got := Match(tasks, "")
	if len(got) != 2 {
		t.Fatalf("Match(\"\") returned %d tasks, want 2", len(got))
	}
	got[0].Name = "changed"
	if tasks[0].Name != "a" {
		t.Error("Match must not alias its input")
	}
}

func TestMatch_NilInput(t *testing.T) {
	if got := Match(nil, ""); got != nil {
		t.Errorf("Match(nil, \"\") = %v, want nil", got)
	}
	if got := Match(nil, "x"); len(got) != 0 {
		t.Errorf("Match(nil, x) = %v, want empty", got)
	}
}
