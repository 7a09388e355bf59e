package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/exitcode"
	"github.com/idilsaglam/tasklist/internal/logging"
	"github.com/idilsaglam/tasklist/internal/store/taskstore"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// Version is the program version printed by `todo version`.
const Version = "0.1.0"

// Run parses root flags, dispatches the subcommand and returns an exit code
// (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	cfg, err := config.Load(fs, args)
	if err != nil {
		th := statusTheme(false, stderr)
		switch {
		case errors.Is(err, flag.ErrHelp):
			PrintHelp(stdout)
			return exitcode.Success
		case errors.Is(err, config.ErrFlags):
			ui.Fail(stderr, th, err.Error())
			fmt.Fprintln(stderr)
			PrintHelp(stderr)
			return exitcode.Usage
		}
		ui.Fail(stderr, th, "config: "+err.Error())
		return exitcode.Failure
	}

	cmd, a := "tui", cfg.Args
	if len(a) > 0 {
		cmd, a = a[0], a[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(stdout)
		return exitcode.Success

	case "version":
		fmt.Fprintln(stdout, "todo "+Version)
		return exitcode.Success

	case "tui":
		if len(a) != 0 {
			ui.Fail(stderr, statusTheme(cfg.NoColor, stderr), "usage: todo tui")
			return exitcode.Usage
		}
		return runBoard(ctx, cfg, stdout, stderr)

	case "run":
		if len(a) > 1 {
			ui.Fail(stderr, statusTheme(cfg.NoColor, stderr), "usage: todo run [file|-]")
			return exitcode.Usage
		}
		src := "-"
		if len(a) == 1 {
			src = a[0]
		}
		return runScript(ctx, cfg, src, stdin, stdout, stderr)
	}

	ui.Fail(stderr, statusTheme(cfg.NoColor, stderr), "unknown subcommand: "+cmd)
	fmt.Fprintln(stderr)
	PrintHelp(stderr)
	return exitcode.Usage
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny in-memory to-do list

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  tui                Interactive board (default)
  run [file|-]       Apply intents from a file or stdin, then print the list
  help               Show this help
  version            Print the version

Intents (one per line for run):
  add <text...>      Add a task
  toggle <id>        Toggle completion of a task
  delete <id>        Delete a task
  theme              Flip dark mode
  print              Print the current list

Flags:
  --config <path>    TOML config file (default ./tasklist.toml)
  --theme <name>     Initial theme: light or dark
  --log-level <lvl>  debug, info, warn or error
  --log-file <path>  Append logs to this file
  --format <fmt>     run output: text or json
  --no-mouse         Disable mouse support
  --no-color         Disable colors

Examples:
  todo
  printf 'add Buy milk\ntoggle 1\n' | todo run
  todo --format json run intents.txt
`)
}

// statusTheme picks the palette for status lines written to w.
func statusTheme(noColor bool, w io.Writer) ui.Theme {
	if noColor || !ui.IsTTY(w) {
		return ui.PlainTheme()
	}
	return ui.LightTheme()
}

func runBoard(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) int {
	th := statusTheme(cfg.NoColor, stderr)
	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel()
	opts.File = cfg.Log.File
	logger, closer, err := logging.New(opts)
	if err != nil {
		ui.Fail(stderr, th, err.Error())
		return exitcode.Failure
	}
	defer closer.Close()

	store := taskstore.New(taskstore.WithLogger(logger))
	tasks, err := ui.Run(ctx, store, ui.Options{
		Dark:      cfg.Dark(),
		Plain:     cfg.NoColor,
		Mouse:     cfg.Mouse,
		CharLimit: cfg.CharLimit,
		Logger:    logger,
		Output:    stdout,
	})
	if err != nil {
		ui.Fail(stderr, th, "tui: "+err.Error())
		return exitcode.Failure
	}
	logger.Info("board closed", "count", len(tasks))
	ui.OK(stderr, th, fmt.Sprintf("closed, %d tasks discarded", len(tasks)))
	return exitcode.Success
}
