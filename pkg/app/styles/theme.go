package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

var (
	// Color palette
	Primary    = lipgloss.Color("#FF6B9D")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Muted      = lipgloss.Color("#546E7A")
	Foreground = lipgloss.Color("#EEFFFF")
	Magenta    = lipgloss.Color("13")
	Cyan       = lipgloss.Color("14")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Magenta).
			Bold(true)

	IDStyle = lipgloss.NewStyle().
		Foreground(Cyan)

	StatusFinished = lipgloss.NewStyle().
			Foreground(Success)

	StatusOngoing = lipgloss.NewStyle().
			Foreground(Warning)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)

// Single-line CLI messages
var (
	SuccessColor = color.New(color.FgGreen)
	NoticeColor  = color.New(color.FgYellow)
)

// StatusStyle colors a catalog airing status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "Finished Airing":
		return StatusFinished
	case "":
		return MutedStyle
	default:
		return StatusOngoing
	}
}

var setupOnce sync.Once

// Setup applies the process-wide color preference. Only the first call has effect.
func Setup(colored bool) {
	setupOnce.Do(func() {
		if colored {
			return
		}
		lipgloss.SetColorProfile(termenv.Ascii)
		color.NoColor = true
	})
}
