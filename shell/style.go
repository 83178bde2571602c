package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("245") // Gray
)

// styles renders single-line shell output. Multi-line text such as ls or
// tree output is never passed through them since lipgloss pads every line
// of a block to the same width.
type styles struct {
	prompt func(string) string
	err    func(string) string
	title  func(string) string
	muted  func(string) string
}

// newStyles builds styles for out. When color is false every style is the
// identity; otherwise lipgloss picks the color profile from out, which
// yields plain text for anything that is not a terminal.
func newStyles(out io.Writer, color bool) styles {
	if !color {
		plain := func(s string) string { return s }
		return styles{prompt: plain, err: plain, title: plain, muted: plain}
	}

	r := lipgloss.NewRenderer(out)
	return styles{
		prompt: render(r.NewStyle().Foreground(colorPrimary).Bold(true)),
		err:    render(r.NewStyle().Foreground(colorError)),
		title:  render(r.NewStyle().Foreground(colorPrimary).Bold(true)),
		muted:  render(r.NewStyle().Foreground(colorMuted)),
	}
}

func render(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}
