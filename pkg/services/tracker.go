package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/anitrack/pkg/data"
	"github.com/kerbaras/anitrack/pkg/log"
	"github.com/kerbaras/anitrack/pkg/sources"
	"github.com/samber/mo"
)

// Store is the watchlist persistence the tracker writes through.
type Store interface {
	Upsert(ctx context.Context, id int, title string, totalEpisodes mo.Option[int], status mo.Option[string]) error
	UpdateProgress(ctx context.Context, id, episodes int, rating mo.Option[float64]) (bool, error)
	Remove(ctx context.Context, id int) (string, bool, error)
	ListAll(ctx context.Context) ([]data.Entry, error)
}

var ErrEmptyQuery = errors.New("search query is empty")

// Tracker runs watchlist commands against the catalog and the store.
type Tracker struct {
	catalog sources.Catalog
	store   Store
}

func NewTracker(catalog sources.Catalog, store Store) *Tracker {
	return &Tracker{catalog: catalog, store: store}
}

type SearchOptions struct {
	Limit   int
	Closest bool
}

func (t *Tracker) Search(ctx context.Context, query string, opts SearchOptions) ([]sources.Anime, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	results, err := t.catalog.Search(ctx, query, opts.Limit)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	if opts.Closest {
		sources.SortByCloseness(query, results)
	}
	return results, nil
}

// Add looks the anime up in the catalog and writes it to the watchlist under id,
// even if the catalog answers with a different canonical ID.
// Nothing is written when the lookup fails.
func (t *Tracker) Add(ctx context.Context, id int) (*sources.Anime, error) {
	anime, err := t.catalog.GetAnime(ctx, id)
	if err != nil {
		log.Error(err)
		if errors.Is(err, sources.ErrNotFound) {
			return nil, fmt.Errorf("anime with MAL ID %d not found in catalog: %w", id, err)
		}
		return nil, fmt.Errorf("catalog lookup for MAL ID %d failed: %w", id, err)
	}

	if err := t.store.Upsert(ctx, id, anime.Title, anime.Episodes, anime.Status); err != nil {
		log.Error(err)
		return nil, err
	}
	return anime, nil
}

// Update records progress and reports whether the entry existed.
func (t *Tracker) Update(ctx context.Context, id, episodes int, rating mo.Option[float64]) (bool, error) {
	updated, err := t.store.UpdateProgress(ctx, id, episodes, rating)
	if err != nil {
		log.Error(err)
		return false, err
	}
	return updated, nil
}

func (t *Tracker) Delete(ctx context.Context, id int) (title string, found bool, err error) {
	title, found, err = t.store.Remove(ctx, id)
	if err != nil {
		log.Error(err)
	}
	return title, found, err
}

func (t *Tracker) List(ctx context.Context) ([]data.Entry, error) {
	entries, err := t.store.ListAll(ctx)
	if err != nil {
		log.Error(err)
	}
	return entries, err
}
