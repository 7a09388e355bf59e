package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + panel border.
// Renderers never build styles themselves; they pull them from a Theme.
type Theme struct {
	Name string

	Root, Title, Muted, Accent, Success, Error lipgloss.Style
	Selected, Done, Help, Border               lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymOK, SymFail           string
	SymLight, SymDark        string
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// LightTheme is the default presentation mode.
func LightTheme() Theme {
	return Theme{
		Name:     "light",
		Root:     lipgloss.NewStyle(),
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymOK: "✔", SymFail: "✖",
		SymLight: "☀", SymDark: "☾",
	}
}

// DarkTheme paints the whole view on a dark background.
func DarkTheme() Theme {
	t := LightTheme()
	t.Name = "dark"
	t.Root = lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("252"))
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	t.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	t.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	t.Border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBackground(lipgloss.Color("235")).
		Padding(0, 1)
	return t
}

// PlainTheme has no styling and ASCII symbols only; used when output is not a terminal.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name: "plain",
		Root: plain, Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain,
		Selected: plain, Done: plain, Help: plain,
		Border:       lipgloss.NewStyle().Border(asciiBorder).Padding(0, 1),
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymOK: "ok:", SymFail: "error:",
	}
}

// ThemeToggle holds the process-wide dark mode flag. It never touches task data.
type ThemeToggle struct {
	dark  bool
	plain bool
}

// NewThemeToggle starts in dark mode when dark is set. A plain toggle still
// flips but always hands out PlainTheme.
func NewThemeToggle(dark, plain bool) *ThemeToggle {
	return &ThemeToggle{dark: dark, plain: plain}
}

func (t *ThemeToggle) Flip()      { t.dark = !t.dark }
func (t *ThemeToggle) Dark() bool { return t.dark }

// Label is the text of the toggle control: it names the mode a flip switches to.
func (t *ThemeToggle) Label() string {
	th := t.Theme()
	if t.dark {
		return strings.TrimSpace(th.SymLight + " Light Mode")
	}
	return strings.TrimSpace(th.SymDark + " Dark Mode")
}

// Theme returns the palette for the current mode.
func (t *ThemeToggle) Theme() Theme {
	switch {
	case t.plain:
		return PlainTheme()
	case t.dark:
		return DarkTheme()
	default:
		return LightTheme()
	}
}
