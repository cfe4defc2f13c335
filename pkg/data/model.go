package data

import (
	"time"

	"github.com/samber/mo"
)

// Entry is one row of the watchlist, keyed by MyAnimeList ID.
type Entry struct {
	ID              int
	Title           string
	WatchedEpisodes int
	TotalEpisodes   mo.Option[int]
	Status          mo.Option[string] // airing status as reported by the catalog
	UserRating      mo.Option[float64]
	LastUpdated     time.Time
	Notes           mo.Option[string] // stored, never written by any command
}

// IsFinished reports whether the catalog marked the show as finished airing.
func (e Entry) IsFinished() bool {
	return e.Status.OrEmpty() == StatusFinished
}

const (
	StatusFinished = "Finished Airing"
	StatusAiring   = "Currently Airing"
)
