package sources

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the catalog has no anime for an ID.
var ErrNotFound = errors.New("anime not found in catalog")

type Catalog interface {
	Search(ctx context.Context, query string, limit int) ([]Anime, error)
	GetAnime(ctx context.Context, id int) (*Anime, error)
}
