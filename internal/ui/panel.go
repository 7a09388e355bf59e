package ui

import "strings"

// Panel draws a framed box using th's border.
func Panel(th Theme, lines []string) string {
	return th.Border.Render(strings.Join(lines, "\n"))
}
