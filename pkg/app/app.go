package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/anitrack/pkg/app/screens"
)

type App struct {
	watchlist screens.Watchlist
}

func NewApp(watchlist screens.Watchlist) *App {
	return &App{watchlist: watchlist}
}

func (a *App) Run(ctx context.Context) error {
	model := screens.NewWatchlistScreen(ctx, a.watchlist)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
