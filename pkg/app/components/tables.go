package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/data"
	"github.com/kerbaras/anitrack/pkg/sources"
	"github.com/samber/lo"
)

const (
	unknown  = "Unknown"
	notRated = "Not Rated"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(statusCol, idCol int, statuses []string, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.HeaderStyle.Padding(0, 1)
			case col == statusCol && row >= 0 && row < len(statuses):
				return styles.StatusStyle(statuses[row]).Padding(0, 1)
			case col == idCol:
				return styles.IDStyle.Padding(0, 1)
			default:
				return cellStyle
			}
		}).
		Headers(headers...)
}

// SearchTable renders catalog results as Title, Episodes, Type, Status, MAL ID.
func SearchTable(results []sources.Anime) string {
	statuses := lo.Map(results, func(a sources.Anime, _ int) string {
		return a.Status.OrElse(unknown)
	})

	t := newTable(3, 4, statuses, "Title", "Episodes", "Type", "Status", "MAL ID")
	for i, a := range results {
		t.Row(
			truncate(a.Title, 58),
			optionalInt(a.Episodes.Get()),
			a.Type.OrElse(unknown),
			statuses[i],
			strconv.Itoa(a.ID),
		)
	}
	return t.String()
}

// WatchlistTable renders entries as MAL ID, Title, Progress, Status, Rating.
func WatchlistTable(entries []data.Entry) string {
	statuses := lo.Map(entries, func(e data.Entry, _ int) string {
		return e.Status.OrElse(unknown)
	})

	t := newTable(3, 0, statuses, "MAL ID", "Title", "Progress", "Status", "Rating")
	for i, e := range entries {
		t.Row(
			strconv.Itoa(e.ID),
			truncate(e.Title, 48),
			Progress(e),
			statuses[i],
			Rating(e),
		)
	}
	return t.String()
}

// Progress formats watched/total, with Unknown for a missing total.
func Progress(e data.Entry) string {
	return fmt.Sprintf("%d/%s", e.WatchedEpisodes, optionalInt(e.TotalEpisodes.Get()))
}

func Rating(e data.Entry) string {
	r, ok := e.UserRating.Get()
	if !ok {
		return notRated
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func optionalInt(v int, ok bool) string {
	if !ok {
		return unknown
	}
	return strconv.Itoa(v)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
