package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todolist` (no args) and `todolist list <query...>`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks, optionally filtered" }
func (c *ListCmd) Usage() string     { return "todolist list [query...]" }
func (c *ListCmd) NeedsBackend() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	list := newList(cfg, svc, errOut)
	if err := list.Load(ctx); err != nil {
		return reportBackendError(errOut, err)
	}

	query := strings.Join(args, " ")
	list.Filter(query)

	tasks := list.Filtered()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			if query != "" {
				fmt.Fprintf(out, "no tasks match: %s\n", query)
			} else {
				fmt.Fprintln(out, "no tasks found")
			}
		}
		return exitcode.Success
	}

	for _, task := range tasks {
		output.FormatTask(out, task)
	}
	return exitcode.Success
}
