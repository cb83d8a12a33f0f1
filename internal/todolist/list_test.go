package todolist_test

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"todolist/internal/logging"
	"todolist/internal/service"
	"todolist/internal/testutil"
	"todolist/internal/todolist"
)

var errBackend = errors.New("connection refused")

// newList returns a List over svc whose log output is captured in the buffer.
func newList(svc service.Service) (*todolist.List, *bytes.Buffer) {
	var buf bytes.Buffer
	opts := logging.DefaultOptions()
	opts.Level = log.DebugLevel
	opts.Formatter = log.LogfmtFormatter
	opts.ReportTimestamp = false
	return todolist.New(svc, logging.New(&buf, opts)), &buf
}

func names(tasks []service.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name
	}
	return out
}

func TestLoad(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "", "")
	svc.AddTask("Walk dog", "", "")
	list, _ := newList(svc)

	if err := list.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []string{"Buy milk", "Walk dog"}
	if got := names(list.Tasks()); !reflect.DeepEqual(got, want) {
		t.Errorf("Tasks() = %v, want %v", got, want)
	}
	if got := names(list.Filtered()); !reflect.DeepEqual(got, want) {
		t.Errorf("Filtered() = %v, want %v", got, want)
	}
}

func TestLoad_FailureKeepsPreviousList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "", "")
	list, logs := newList(svc)

	if err := list.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	svc.AddTask("Walk dog", "", "")
	svc.ListTasksErr = errBackend

	if err := list.Load(context.Background()); !errors.Is(err, errBackend) {
		t.Fatalf("Load() error = %v, want %v", err, errBackend)
	}
	if got := names(list.Tasks()); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Errorf("Tasks() = %v, want stale list", got)
	}
	if !strings.Contains(logs.String(), "op=load") {
		t.Errorf("expected failure to be logged, got %q", logs.String())
	}
}

func TestFilter(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "from the corner shop", "")
	svc.AddTask("Walk dog", "around the park", "")
	svc.AddTask("Call mum", "ask about MILKshake recipe", "")
	list, _ := newList(svc)
	if err := list.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"MILK", []string{"Buy milk", "Call mum"}},
		{"park", []string{"Walk dog"}},
		{"Dog", []string{"Walk dog"}},
		{"nothing", []string{}},
		{"", []string{"Buy milk", "Walk dog", "Call mum"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			list.Filter(tt.query)
			if got := names(list.Filtered()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
			if list.Query() != tt.query {
				t.Errorf("Query() = %q", list.Query())
			}
			if len(list.Tasks()) != 3 {
				t.Error("filter must not change the authoritative list")
			}
		})
	}
}

func TestFilter_ReappliedAfterLoad(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "", "")
	list, _ := newList(svc)
	ctx := context.Background()

	list.Filter("buy")
	if err := list.Load(ctx); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	svc.AddTask("Buy bread", "", "")
	svc.AddTask("Walk dog", "", "")
	if err := list.Load(ctx); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []string{"Buy milk", "Buy bread"}
	if got := names(list.Filtered()); !reflect.DeepEqual(got, want) {
		t.Errorf("Filtered() = %v, want %v", got, want)
	}
}

func TestCreate_ClearsFormAndReloads(t *testing.T) {
	svc := testutil.NewFakeService()
	list, _ := newList(svc)
	ctx := context.Background()

	form := todolist.Form{Name: "Buy milk", Task: "2 litres", Deadline: "2024-05-01"}
	list.SetForm(form)
	if err := list.Create(ctx); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if !list.Form().IsZero() {
		t.Errorf("Form() = %+v, want empty", list.Form())
	}
	tasks := list.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected reloaded list with 1 task, got %d", len(tasks))
	}
	if tasks[0].Input() != form.Input() {
		t.Errorf("task = %+v, want fields %+v", tasks[0], form)
	}
	if got := svc.CallOps(); !reflect.DeepEqual(got, []string{"create", "list"}) {
		t.Errorf("calls = %v, want [create list]", got)
	}
}

func TestCreate_FailureKeepsForm(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = errBackend
	list, logs := newList(svc)

	form := todolist.Form{Name: "Buy milk", Task: "2 litres", Deadline: "2024-05-01"}
	list.SetForm(form)
	if err := list.Create(context.Background()); !errors.Is(err, errBackend) {
		t.Fatalf("Create() error = %v, want %v", err, errBackend)
	}

	if list.Form() != form {
		t.Errorf("Form() = %+v, want %+v", list.Form(), form)
	}
	if got := svc.CallOps(); !reflect.DeepEqual(got, []string{"create"}) {
		t.Errorf("calls = %v, want no reload after failure", got)
	}
	if !strings.Contains(logs.String(), "op=create") {
		t.Errorf("expected failure to be logged, got %q", logs.String())
	}
}

func TestBeginEdit_ThenSubmitUpdates(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "", "")
	target := svc.AddTask("Walk dog", "around the park", "2024-06-01")
	list, _ := newList(svc)
	ctx := context.Background()
	if err := list.Load(ctx); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	list.BeginEdit(target)
	want := todolist.Form{Name: "Walk dog", Task: "around the park", Deadline: "2024-06-01"}
	if list.Form() != want {
		t.Errorf("Form() = %+v, want %+v", list.Form(), want)
	}
	if id, ok := list.Editing(); !ok || id != target.ID {
		t.Errorf("Editing() = %d, %v; want %d, true", id, ok, target.ID)
	}

	edited := list.Form()
	edited.Name = "Walk the dog"
	list.SetForm(edited)
	if err := list.Submit(ctx); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	calls := svc.Calls()
	if len(calls) < 2 || calls[1].Op != "update" || calls[1].ID != target.ID {
		t.Fatalf("calls = %+v, want update of %d", calls, target.ID)
	}
	if calls[1].Input.Name != "Walk the dog" {
		t.Errorf("update sent %+v", calls[1].Input)
	}
	if _, ok := list.Editing(); ok {
		t.Error("editing target should be cleared after update")
	}
	if !list.Form().IsZero() {
		t.Errorf("Form() = %+v, want empty", list.Form())
	}
	if got, _ := list.Find(target.ID); got.Name != "Walk the dog" {
		t.Errorf("reloaded task = %+v", got)
	}
}

func TestUpdate_FailureKeepsFormAndTarget(t *testing.T) {
	svc := testutil.NewFakeService()
	target := svc.AddTask("Walk dog", "", "")
	svc.UpdateTaskErr = errBackend
	list, _ := newList(svc)

	list.BeginEdit(target)
	if err := list.Submit(context.Background()); !errors.Is(err, errBackend) {
		t.Fatalf("Submit() error = %v", err)
	}
	if id, ok := list.Editing(); !ok || id != target.ID {
		t.Errorf("Editing() = %d, %v; want target kept", id, ok)
	}
	if list.Form().Name != "Walk dog" {
		t.Errorf("Form() = %+v, want kept", list.Form())
	}
}

func TestSubmit_CreatesWhenNotEditing(t *testing.T) {
	svc := testutil.NewFakeService()
	list, _ := newList(svc)

	list.SetForm(todolist.Form{Name: "New"})
	if err := list.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if got := svc.CallOps(); !reflect.DeepEqual(got, []string{"create", "list"}) {
		t.Errorf("calls = %v", got)
	}
}

func TestCancelEdit(t *testing.T) {
	svc := testutil.NewFakeService()
	target := svc.AddTask("Walk dog", "", "")
	list, _ := newList(svc)

	list.BeginEdit(target)
	list.CancelEdit()
	if _, ok := list.Editing(); ok {
		t.Error("expected no editing target")
	}
	if !list.Form().IsZero() {
		t.Errorf("Form() = %+v, want empty", list.Form())
	}
}

func TestDelete_RemovedAfterReloadEvenWhenFilteredOut(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "", "")
	hidden := svc.AddTask("Walk dog", "", "")
	list, _ := newList(svc)
	ctx := context.Background()
	if err := list.Load(ctx); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	list.Filter("milk")

	if err := list.Delete(ctx, hidden.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok := list.Find(hidden.ID); ok {
		t.Error("deleted task still present after reload")
	}
	if got := names(list.Filtered()); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Errorf("Filtered() = %v", got)
	}
}

func TestDelete_FailureKeepsRow(t *testing.T) {
	svc := testutil.NewFakeService()
	task := svc.AddTask("Buy milk", "", "")
	list, logs := newList(svc)
	ctx := context.Background()
	if err := list.Load(ctx); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	svc.DeleteTaskErr = errBackend

	if err := list.Delete(ctx, task.ID); !errors.Is(err, errBackend) {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := list.Find(task.ID); !ok {
		t.Error("stale row should remain after failed delete")
	}
	if !strings.Contains(logs.String(), "op=delete") {
		t.Errorf("expected failure to be logged, got %q", logs.String())
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "", "")
	list, _ := newList(svc)
	if err := list.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tasks := list.Tasks()
	tasks[0].Name = "mutated"
	filtered := list.Filtered()
	filtered[0].Name = "mutated"

	if list.Tasks()[0].Name != "Buy milk" || list.Filtered()[0].Name != "Buy milk" {
		t.Error("accessors must not expose internal slices")
	}
}

func TestConcurrentUse(t *testing.T) {
	svc := testutil.NewFakeService()
	for i := 0; i < 10; i++ {
		svc.AddTask("task", "", "")
	}
	list := todolist.New(svc, logging.Discard())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = list.Load(ctx)
			list.Filter("t")
			list.SetForm(todolist.Form{Name: "x"})
			_ = list.Filtered()
		}(i)
	}
	wg.Wait()

	if len(list.Tasks()) != 10 {
		t.Errorf("Tasks() = %d, want 10", len(list.Tasks()))
	}
}
