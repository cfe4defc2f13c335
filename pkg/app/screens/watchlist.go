package screens

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/anitrack/pkg/app/components"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/data"
	"github.com/samber/mo"
)

// Watchlist is what the browser reads and mutates. services.Tracker implements it.
type Watchlist interface {
	List(ctx context.Context) ([]data.Entry, error)
	Update(ctx context.Context, id, episodes int, rating mo.Option[float64]) (bool, error)
	Delete(ctx context.Context, id int) (string, bool, error)
}

type WatchlistScreen struct {
	ctx       context.Context
	watchlist Watchlist
	table     table.Model
	entries   []data.Entry
	status    string
	err       error
	// set from a write until the reload after it lands
	pending   bool
	width     int
	height    int
}

func NewWatchlistScreen(ctx context.Context, watchlist Watchlist) *WatchlistScreen {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "MAL ID", Width: 8},
			{Title: "Title", Width: 40},
			{Title: "Progress", Width: 12},
			{Title: "Status", Width: 18},
			{Title: "Rating", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return &WatchlistScreen{ctx: ctx, watchlist: watchlist, table: t}
}

func (s *WatchlistScreen) Init() tea.Cmd {
	return s.loadWatchlist
}

func (s *WatchlistScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.table.SetHeight(max(msg.Height-10, 3))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		case "r":
			if s.pending {
				return s, nil
			}
			return s, s.loadWatchlist
		case "+", "=":
			return s, s.startChange(s.adjustEpisodes(1))
		case "-":
			return s, s.startChange(s.adjustEpisodes(-1))
		case "d":
			if e := s.Selected(); e != nil {
				return s, s.startChange(s.deleteEntry(e.ID))
			}
			return s, nil
		}

	case watchlistLoadedMsg:
		s.pending = false
		s.err = msg.err
		if msg.err == nil {
			s.setEntries(msg.entries)
		}
		return s, nil

	case entryChangedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.status = msg.status
		}
		return s, s.loadWatchlist
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *WatchlistScreen) View() string {
	header := styles.TitleStyle.Render(fmt.Sprintf("📺 Watchlist (%d)", len(s.entries)))

	var body string
	if len(s.entries) == 0 {
		body = styles.MutedStyle.Render("Your watchlist is empty! Use 'anitrack add <id>' to track a show.")
	} else {
		body = s.table.View()
		if e := s.Selected(); e != nil {
			body += "\n\n" + styles.TextStyle.Render(e.Title) + "\n" + components.EntryProgress(*e, 30)
		}
	}

	var footer string
	if s.err != nil {
		footer = "\n" + styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	} else if s.status != "" {
		footer = "\n" + styles.StatusFinished.Render(s.status)
	}

	help := styles.HelpStyle.Render("↑/k: up • ↓/j: down • +/-: episodes • d: delete • r: refresh • q: quit")

	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, body, footer, help)
}

// Selected returns the entry under the cursor, if any.
func (s *WatchlistScreen) Selected() *data.Entry {
	i := s.table.Cursor()
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return &s.entries[i]
}

// startChange runs cmd unless an earlier change has not been reloaded yet.
func (s *WatchlistScreen) startChange(cmd tea.Cmd) tea.Cmd {
	if cmd == nil || s.pending {
		return nil
	}
	s.pending = true
	return cmd
}

func (s *WatchlistScreen) setEntries(entries []data.Entry) {
	s.entries = entries

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			strconv.Itoa(e.ID),
			e.Title,
			components.Progress(e),
			e.Status.OrElse("Unknown"),
			components.Rating(e),
		}
	}
	s.table.SetRows(rows)

	if s.table.Cursor() >= len(rows) {
		s.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Messages
type watchlistLoadedMsg struct {
	entries []data.Entry
	err     error
}

type entryChangedMsg struct {
	status string
	err    error
}

// Commands
func (s *WatchlistScreen) loadWatchlist() tea.Msg {
	entries, err := s.watchlist.List(s.ctx)
	return watchlistLoadedMsg{entries: entries, err: err}
}

func (s *WatchlistScreen) adjustEpisodes(delta int) tea.Cmd {
	e := s.Selected()
	if e == nil {
		return nil
	}
	id, title := e.ID, e.Title
	episodes := max(e.WatchedEpisodes+delta, 0)

	return func() tea.Msg {
		updated, err := s.watchlist.Update(s.ctx, id, episodes, mo.None[float64]())
		if err == nil && !updated {
			err = fmt.Errorf("anime %d is no longer in your watchlist", id)
		}
		return entryChangedMsg{status: fmt.Sprintf("%s: %d episodes watched", title, episodes), err: err}
	}
}

func (s *WatchlistScreen) deleteEntry(id int) tea.Cmd {
	return func() tea.Msg {
		title, found, err := s.watchlist.Delete(s.ctx, id)
		if err == nil && !found {
			err = fmt.Errorf("anime %d is no longer in your watchlist", id)
		}
		return entryChangedMsg{status: fmt.Sprintf("Deleted %s from your watchlist!", title), err: err}
	}
}
