package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/data"
)

func renderProgressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// EntryProgress renders a bar and percentage for an entry, or a muted note when
// the episode total is unknown.
func EntryProgress(e data.Entry, width int) string {
	total, ok := e.TotalEpisodes.Get()
	if !ok || total <= 0 {
		return styles.MutedStyle.Render(fmt.Sprintf("%d episodes watched (total unknown)", e.WatchedEpisodes))
	}

	percentage := float64(e.WatchedEpisodes) / float64(total) * 100
	return fmt.Sprintf("%s %.0f%%", renderProgressBar(e.WatchedEpisodes, total, width), percentage)
}
