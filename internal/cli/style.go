package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// palette holds the ANSI-256 color values used by the listing commands.
var (
	clrName  = lipgloss.Color("81")
	clrKind  = lipgloss.Color("114")
	clrErr   = lipgloss.Color("203")
	clrDim   = lipgloss.Color("245")
	clrTitle = lipgloss.Color("214")
)

// styles wraps lipgloss renderers that respect TTY detection. When
// output is piped or redirected, styling is disabled and raw text is
// emitted.
type styles struct {
	enabled bool

	Title lipgloss.Style
	Name  lipgloss.Style
	Kind  lipgloss.Style
	Err   lipgloss.Style
	Dim   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = term.IsTerminal(int(f.Fd()))
	}

	s := styles{enabled: enabled}
	if !enabled {
		noop := lipgloss.NewStyle()
		s.Title = noop
		s.Name = noop
		s.Kind = noop
		s.Err = noop
		s.Dim = noop
		return s
	}

	s.Title = lipgloss.NewStyle().Foreground(clrTitle).Bold(true)
	s.Name = lipgloss.NewStyle().Foreground(clrName)
	s.Kind = lipgloss.NewStyle().Foreground(clrKind)
	s.Err = lipgloss.NewStyle().Foreground(clrErr)
	s.Dim = lipgloss.NewStyle().Foreground(clrDim)
	return s
}
