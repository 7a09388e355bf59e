package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store/taskstore"
)

const (
	appTitle     = "Todos"
	deleteLabel  = "[Delete]"
	addLabel     = "[Add]"
	ellipsis     = "..."
	maxTextWidth = 80
	minTextWidth = 4
	headerGap    = "   "
	controlGap   = "  "
	cursorPrefix = "  "
)

// Row is one displayed task.
type Row struct {
	ID        int64
	Text      string
	Completed bool
}

// Frame is the full visual state derived from a task list.
type Frame struct {
	Rows    []Row
	Counter string
}

// CounterLabel counts every task, completed or not.
func CounterLabel(n int) string { return fmt.Sprintf("Total tasks: %d", n) }

// Project derives a Frame from tasks. It keeps list order and has no side effects.
func Project(tasks []model.Task) Frame {
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, Row{ID: t.ID, Text: t.Text, Completed: t.Completed})
	}
	return Frame{Rows: rows, Counter: CounterLabel(len(tasks))}
}

// Renderer keeps the latest Frame and rebuilds it from scratch on every store change.
type Renderer struct {
	frame   Frame
	renders int
}

func NewRenderer() *Renderer {
	return &Renderer{frame: Project(nil)}
}

// Attach subscribes r to s and renders the current state once.
func (r *Renderer) Attach(s *taskstore.Store) (detach func()) {
	r.Render(s.Tasks())
	return s.Subscribe(r.Render)
}

func (r *Renderer) Render(tasks []model.Task) {
	r.frame = Project(tasks)
	r.renders++
}

func (r *Renderer) Frame() Frame { return r.frame }

// Renders counts full rebuilds since creation.
func (r *Renderer) Renders() int { return r.renders }

// Lines lays the frame out for a static panel: header, rows, counter.
func (f Frame) Lines(th Theme, themeLabel string) []string {
	header, _, _ := headerLayout(th, themeLabel)
	lines := []string{header, ""}
	if len(f.Rows) == 0 {
		lines = append(lines, th.Muted.Render("No tasks."))
	}
	for _, row := range f.Rows {
		lines = append(lines, layoutRow(th, row, false, maxTextWidth).line)
	}
	return append(lines, "", th.Accent.Render(f.Counter))
}

// rowLine is a rendered row plus the cell span [deleteFrom, deleteTo) of its delete control.
type rowLine struct {
	line                 string
	deleteFrom, deleteTo int
}

// rowTextWidth is the room left for task text when a row may span rowWidth cells.
func rowTextWidth(th Theme, rowWidth int) int {
	chrome := lipgloss.Width(cursorPrefix+th.BoxUnchecked+" ") + len(controlGap) + lipgloss.Width(deleteLabel)
	return min(max(rowWidth-chrome, minTextWidth), maxTextWidth)
}

// layoutRow cuts the task text to textWidth cells so the delete control stays in reach.
func layoutRow(th Theme, row Row, selected bool, textWidth int) rowLine {
	prefix := cursorPrefix
	if selected {
		prefix = th.Selected.Render("> ")
	}
	box := th.Muted.Render(th.BoxUnchecked)
	text := ansi.Truncate(row.Text, textWidth, ellipsis)
	if row.Completed {
		box = th.Success.Render(th.BoxChecked)
		text = th.Done.Render(text)
	}
	head := prefix + box + " " + text + controlGap
	from := lipgloss.Width(head)
	return rowLine{
		line:       head + th.Error.Render(deleteLabel),
		deleteFrom: from,
		deleteTo:   from + lipgloss.Width(deleteLabel),
	}
}

// headerLayout returns the title line and the cell span of the theme control.
func headerLayout(th Theme, themeLabel string) (line string, from, to int) {
	head := th.Title.Render(appTitle) + headerGap
	from = lipgloss.Width(head)
	return head + th.Accent.Render(themeLabel), from, from + lipgloss.Width(themeLabel)
}

// inputLayout appends the add control to the rendered input field and returns its cell span.
func inputLayout(th Theme, field string) (line string, from, to int) {
	head := field + controlGap
	from = lipgloss.Width(head)
	return head + th.Accent.Render(addLabel), from, from + lipgloss.Width(addLabel)
}
