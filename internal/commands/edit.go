package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Fields without a flag keep the
// task's current value.
type EditCmd struct {
	name     optionalString
	task     optionalString
	deadline optionalString
}

// SetName sets the --name flag (for testing).
func (c *EditCmd) SetName(v string) { _ = c.name.Set(v) }

// SetTask sets the --task flag (for testing).
func (c *EditCmd) SetTask(v string) { _ = c.task.Set(v) }

// SetDeadline sets the --deadline flag (for testing).
func (c *EditCmd) SetDeadline(v string) { _ = c.deadline.Set(v) }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Change a task's fields" }
func (c *EditCmd) Usage() string {
	return "todolist edit [--name <name>] [--task <text>] [--deadline <date>] <id>"
}
func (c *EditCmd) NeedsBackend() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.name, c.task, c.deadline = optionalString{}, optionalString{}, optionalString{}
	fs.Var(&c.name, "name", "")
	fs.Var(&c.name, "n", "")
	fs.Var(&c.task, "task", "")
	fs.Var(&c.task, "t", "")
	fs.Var(&c.deadline, "deadline", "")
	fs.Var(&c.deadline, "d", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return reportTaskIDError(errOut, err)
	}
	if !c.name.set && !c.task.set && !c.deadline.set {
		fmt.Fprintln(errOut, "error: nothing to change (use --name, --task or --deadline)")
		return exitcode.UserError
	}
	if c.name.set && strings.TrimSpace(c.name.value) == "" {
		fmt.Fprintln(errOut, "error: name required")
		return exitcode.UserError
	}

	list := newList(cfg, svc, errOut)
	if err := list.Load(ctx); err != nil {
		return reportBackendError(errOut, err)
	}
	task, ok := list.Find(id)
	if !ok {
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}

	list.BeginEdit(task)
	form := list.Form()
	if c.name.set {
		form.Name = c.name.value
	}
	if c.task.set {
		form.Task = c.task.value
	}
	if c.deadline.set {
		form.Deadline = c.deadline.value
	}
	list.SetForm(form)

	if err := list.Submit(ctx); err != nil {
		return reportBackendError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
