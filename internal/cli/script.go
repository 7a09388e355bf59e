package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/config"
	"github.com/idilsaglam/tasklist/internal/exitcode"
	"github.com/idilsaglam/tasklist/internal/logging"
	"github.com/idilsaglam/tasklist/internal/output"
	"github.com/idilsaglam/tasklist/internal/store/taskstore"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// errUsage marks a malformed intent line. An id that parses but names no
// task is not malformed; the store treats it as a no-op.
var errUsage = errors.New("usage")

// script applies intents to a store the same way the board does, without a terminal.
type script struct {
	store    *taskstore.Store
	renderer *ui.Renderer
	toggle   *ui.ThemeToggle
	log      *log.Logger

	out, errOut io.Writer
	status      ui.Theme
	format      string
	rejected    int
}

func runScript(ctx context.Context, cfg *config.Config, src string, stdin io.Reader, stdout, stderr io.Writer) int {
	status := statusTheme(cfg.NoColor, stderr)
	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel()
	opts.File = cfg.Log.File
	opts.Fallback = stderr
	logger, closer, err := logging.New(opts)
	if err != nil {
		ui.Fail(stderr, status, err.Error())
		return exitcode.Failure
	}
	defer closer.Close()

	in := stdin
	if src != "-" {
		f, err := os.Open(src)
		if err != nil {
			ui.Fail(stderr, status, fmt.Sprintf("open script: %v", err))
			return exitcode.Failure
		}
		defer f.Close()
		in = f
	}

	s := &script{
		store:    taskstore.New(taskstore.WithLogger(logger)),
		renderer: ui.NewRenderer(),
		toggle:   ui.NewThemeToggle(cfg.Dark(), cfg.NoColor || !ui.IsTTY(stdout)),
		log:      logger,
		out:      stdout,
		errOut:   stderr,
		status:   status,
		format:   cfg.Format,
	}
	detach := s.renderer.Attach(s.store)
	defer detach()

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			ui.Fail(stderr, status, "run: "+err.Error())
			return exitcode.Failure
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(line); err != nil {
			ui.Fail(stderr, status, fmt.Sprintf("line %d: %v", lineNo, err))
			if errors.Is(err, errUsage) {
				return exitcode.Usage
			}
			return exitcode.Failure
		}
	}
	if err := scanner.Err(); err != nil {
		ui.Fail(stderr, status, fmt.Sprintf("read script: %v", err))
		return exitcode.Failure
	}

	if err := s.print(); err != nil {
		ui.Fail(stderr, status, err.Error())
		return exitcode.Failure
	}
	logger.Info("script done", "lines", lineNo, "count", s.store.Len(), "rejected", s.rejected)
	if s.rejected > 0 {
		return exitcode.Failure
	}
	return exitcode.Success
}

func (s *script) exec(line string) error {
	verb, rest, _ := strings.Cut(line, " ")
	switch verb {
	case "add":
		if _, err := s.store.Add(rest); err != nil {
			var verr *taskstore.ValidationError
			if !errors.As(err, &verr) {
				return err
			}
			ui.Fail(s.errOut, s.status, ui.NoticeEmptyTask)
			s.rejected++
		}
	case "toggle":
		id, err := parseID(verb, rest)
		if err != nil {
			return err
		}
		s.store.Toggle(id)
	case "delete":
		id, err := parseID(verb, rest)
		if err != nil {
			return err
		}
		s.store.Delete(id)
	case "theme":
		s.toggle.Flip()
		s.log.Debug("theme flipped", "dark", s.toggle.Dark())
	case "print":
		return s.print()
	default:
		return fmt.Errorf("%w: unknown intent %q", errUsage, verb)
	}
	return nil
}

func (s *script) print() error {
	if s.format == "json" {
		return output.WriteJSON(s.out, s.store.Tasks())
	}
	th := s.toggle.Theme()
	lines := s.renderer.Frame().Lines(th, s.toggle.Label())
	_, err := fmt.Fprintln(s.out, th.Root.Render(ui.Panel(th, lines)))
	return err
}

func parseID(verb, arg string) (int64, error) {
	arg = strings.TrimSpace(arg)
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s <id>: not a task id: %q", errUsage, verb, arg)
	}
	return id, nil
}
