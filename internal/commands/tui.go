package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/logging"
	"todolist/internal/service"
	"todolist/internal/todolist"
	"todolist/internal/ui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd opens the interactive screen. Diagnostics go to the log file in the
// config directory since the screen owns the terminal.
type TuiCmd struct{}

func (c *TuiCmd) Name() string      { return "tui" }
func (c *TuiCmd) Aliases() []string { return []string{"ui"} }
func (c *TuiCmd) Synopsis() string  { return "Open the interactive task screen" }
func (c *TuiCmd) Usage() string     { return "todolist tui" }
func (c *TuiCmd) NeedsBackend() bool { return true }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TuiCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	opts := logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.Debug)
	logger, closer, err := logging.OpenFile(cfg.LogPath(), opts)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}
	defer closer.Close()

	logger.Info("session started", "base_url", cfg.BaseURL)
	list := todolist.New(svc, logger)
	if err := ui.Run(ctx, list); err != nil {
		logger.Error("session ended", "err", err)
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	logger.Info("session ended")
	return exitcode.Success
}
