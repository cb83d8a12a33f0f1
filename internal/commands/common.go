package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/logging"
	"todolist/internal/service"
	"todolist/internal/todolist"
)

// ErrTaskIDRequired indicates no task ID was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the task ID from the first positional argument.
// A leading '#' is accepted, as printed by the list command.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	raw := strings.TrimPrefix(strings.TrimSpace(args[0]), "#")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}

// newList creates the list view used by one-shot commands. Diagnostics go to
// errOut only with --debug; commands report failures themselves.
func newList(cfg *config.Config, svc service.Service, errOut io.Writer) *todolist.List {
	if !cfg.Debug {
		return todolist.New(svc, logging.Discard())
	}
	opts := logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, true)
	return todolist.New(svc, logging.New(errOut, opts))
}

// reportBackendError prints err and returns the matching exit code.
func reportBackendError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}

// reportTaskIDError prints a ParseTaskID failure.
func reportTaskIDError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}

// optionalString is a string flag that remembers whether it was given.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}
