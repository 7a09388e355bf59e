package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store/taskstore"
)

// NoticeEmptyTask is the blocking notification shown when an add is rejected.
const NoticeEmptyTask = "Please enter a task!"

// Screen geometry inside the outer panel (border + one cell of padding).
const (
	panelOffsetX = 2
	panelOffsetY = 1
	headerLine   = 0
	inputLine    = 2
	listTop      = 4
	footerLines  = 3 // blank, counter, help
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Options tune the interactive board.
type Options struct {
	Dark      bool // start in dark mode
	Plain     bool // no colors, ASCII symbols
	Mouse     bool
	CharLimit int
	Logger    *log.Logger
	Output    io.Writer // defaults to os.Stdout
}

// rowItem adapts a Row to bubbles/list.Item.
type rowItem struct{ Row }

func (i rowItem) FilterValue() string { return i.Text }

// rowDelegate draws single-line rows with the current theme.
type rowDelegate struct{ toggle *ThemeToggle }

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}
	th := d.toggle.Theme()
	fmt.Fprint(w, layoutRow(th, it.Row, index == m.Index(), rowTextWidth(th, m.Width())).line)
}

// Board is the Bubble Tea model hosting the input, the task rows, the counter
// and the theme control. It mutates tasks only through the store and reads
// what to draw from the renderer.
type Board struct {
	store    *taskstore.Store
	renderer *Renderer
	detach   func()
	toggle   *ThemeToggle
	log      *log.Logger

	keys  keyMap
	help  help.Model
	list  list.Model
	input textinput.Model
	focus focusArea

	notice        string // blocking notification; all intents but dismiss are ignored while set
	width, height int
}

// NewBoard wires a board to store. The board's renderer stays subscribed
// until the program returned by Run exits.
func NewBoard(store *taskstore.Store, opts Options) Board {
	toggle := NewThemeToggle(opts.Dark, opts.Plain)
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := list.New(nil, rowDelegate{toggle: toggle}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetStatusBarItemName("task", "tasks")
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = opts.CharLimit
	if ti.CharLimit <= 0 {
		ti.CharLimit = 200
	}
	ti.Focus()

	r := NewRenderer()
	m := Board{
		store:    store,
		renderer: r,
		detach:   r.Attach(store),
		toggle:   toggle,
		log:      logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		list:     l,
		input:    ti,
		focus:    focusInput,
		width:    80,
		height:   24,
	}
	m.applyTheme()
	m.resize()
	m.refresh()
	return m
}

// Run starts the board on the terminal and returns the task list once the user quits.
func Run(ctx context.Context, store *taskstore.Store, opts Options) ([]model.Task, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if !IsTTY(out) {
		return nil, fmt.Errorf("tui requires a TTY")
	}
	b := NewBoard(store, opts)
	defer b.detach()

	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out)}
	if opts.Mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(b, popts...).Run(); err != nil {
		return nil, fmt.Errorf("run board: %w", err)
	}
	return store.Tasks(), nil
}

func (m Board) Init() tea.Cmd { return textinput.Blink }

func (m Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.resize()
		return m, nil
	}

	if m.notice != "" {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, m.keys.ForceQuit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Dismiss):
				m.notice = ""
			}
			return m, nil
		case tea.MouseMsg:
			return m, nil
		}
		// Cursor blink and other ticks keep running under the notice.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.FlipTheme):
			m.flipTheme()
			return m, nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Board) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		cmd := m.submit()
		return m, cmd
	case key.Matches(msg, m.keys.ToList):
		m.focusList()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Board) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.selected(); ok {
			m.store.Toggle(row.ID)
			cmd := m.refresh()
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if row, ok := m.selected(); ok {
			m.store.Delete(row.ID)
			cmd := m.refresh()
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.flipTheme()
		return m, nil
	case key.Matches(msg, m.keys.ToInput):
		cmd := m.focusInput()
		return m, cmd
	case msg.String() == "up" && m.list.Index() == 0:
		cmd := m.focusInput()
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

type hitTarget int

const (
	hitNone hitTarget = iota
	hitTheme
	hitInput
	hitAdd
	hitRow
	hitDelete
)

// hitTest maps a screen cell to the control under it and, for rows, the list index.
func (m Board) hitTest(x, y int) (hitTarget, int) {
	x, y = x-panelOffsetX, y-panelOffsetY
	th := m.toggle.Theme()
	switch {
	case y == headerLine:
		if _, from, to := headerLayout(th, m.toggle.Label()); x >= from && x < to {
			return hitTheme, -1
		}
	case y == inputLine:
		if _, from, to := inputLayout(th, m.input.View()); x >= from && x < to {
			return hitAdd, -1
		}
		return hitInput, -1
	case y >= listTop:
		items := m.list.Items()
		start, end := m.list.Paginator.GetSliceBounds(len(items))
		i := start + y - listTop
		if i >= end {
			return hitNone, -1
		}
		it, ok := items[i].(rowItem)
		if !ok {
			return hitNone, -1
		}
		l := layoutRow(th, it.Row, i == m.list.Index(), rowTextWidth(th, m.list.Width()))
		if x >= l.deleteFrom && x < l.deleteTo {
			return hitDelete, i
		}
		return hitRow, i
	}
	return hitNone, -1
}

// handleMouse routes a left click. A click on [Delete] deletes only; it is
// never also treated as a click on the row.
func (m Board) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	target, i := m.hitTest(msg.X, msg.Y)
	switch target {
	case hitTheme:
		m.flipTheme()
	case hitInput:
		cmd := m.focusInput()
		return m, cmd
	case hitAdd:
		focus := m.focusInput()
		cmd := m.submit()
		return m, tea.Batch(focus, cmd)
	case hitDelete:
		m.focusList()
		m.store.Delete(m.rowAt(i).ID)
		cmd := m.refresh()
		return m, cmd
	case hitRow:
		m.focusList()
		m.list.Select(i)
		m.store.Toggle(m.rowAt(i).ID)
		cmd := m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m *Board) submit() tea.Cmd {
	if _, err := m.store.AddFrom(&m.input); err != nil {
		var verr *taskstore.ValidationError
		if errors.As(err, &verr) {
			m.notice = NoticeEmptyTask
		} else {
			m.notice = err.Error()
		}
		return nil
	}
	return m.refresh()
}

// refresh rebuilds every row from the renderer's latest frame.
func (m *Board) refresh() tea.Cmd {
	rows := m.renderer.Frame().Rows
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, rowItem{r})
	}
	cmd := m.list.SetItems(items)
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m Board) selected() (Row, bool) {
	it, ok := m.list.SelectedItem().(rowItem)
	return it.Row, ok
}

func (m Board) rowAt(i int) Row {
	it, _ := m.list.Items()[i].(rowItem)
	return it.Row
}

func (m *Board) focusInput() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

func (m *Board) focusList() {
	m.focus = focusList
	m.input.Blur()
}

func (m *Board) flipTheme() {
	m.toggle.Flip()
	m.applyTheme()
	m.log.Debug("theme flipped", "dark", m.toggle.Dark())
}

func (m *Board) applyTheme() {
	th := m.toggle.Theme()
	m.list.Styles.NoItems = th.Muted
	m.list.Styles.PaginationStyle = th.Help.PaddingLeft(2)
	m.input.PromptStyle = th.Accent
	m.help.Styles.ShortKey = th.Accent
	m.help.Styles.ShortDesc = th.Help
	m.help.Styles.ShortSeparator = th.Help
}

func (m *Board) resize() {
	w := max(m.width-2*panelOffsetX, 20)
	h := max(m.height-2*panelOffsetY-listTop-footerLines, 1)
	m.list.SetSize(w, h)
	m.input.Width = max(w-lipgloss.Width(m.input.Prompt)-1-len(controlGap)-lipgloss.Width(addLabel), 1)
	m.help.Width = w
}

func (m Board) View() string {
	th := m.toggle.Theme()
	if m.notice != "" {
		box := th.Border.Render(th.Error.Render(m.notice) + "\n\n" + th.Help.Render("enter to dismiss"))
		return th.Root.Render(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box))
	}

	header, _, _ := headerLayout(th, m.toggle.Label())
	input, _, _ := inputLayout(th, m.input.View())
	var keys help.KeyMap = inputKeys{m.keys}
	if m.focus == focusList {
		keys = listKeys{m.keys}
	}
	body := strings.Join([]string{
		header,
		"",
		input,
		"",
		m.list.View(),
		"",
		th.Accent.Render(m.renderer.Frame().Counter),
		m.help.View(keys),
	}, "\n")
	return th.Root.Render(Panel(th, strings.Split(body, "\n")))
}
