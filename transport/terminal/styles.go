package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette used for feedback. Colors are dropped when the output is not a terminal.
var (
	ColorAccent  = lipgloss.Color("#0969da")
	ColorSuccess = lipgloss.Color("#1a7f37")
	ColorWarning = lipgloss.Color("#9a6700")
	ColorError   = lipgloss.Color("#cf222e")
	ColorMuted   = lipgloss.Color("#656d76")
)

// Styles groups the console text styles
type Styles struct {
	Title   lipgloss.Style
	Hint    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates styles rendered for w
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(ColorAccent),
		Hint:    r.NewStyle().Foreground(ColorAccent),
		Success: r.NewStyle().Bold(true).Foreground(ColorSuccess),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Error:   r.NewStyle().Bold(true).Foreground(ColorError),
		Muted:   r.NewStyle().Foreground(ColorMuted),
	}
}
