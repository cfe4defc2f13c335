package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kerbaras/anitrack/pkg/log"
	"github.com/kerbaras/anitrack/pkg/utils"
	"github.com/samber/mo"
)

const DefaultJikanURL = "https://api.jikan.moe/v4"

// jikanAnime mirrors the subset of the Jikan v4 anime resource we read.
type jikanAnime struct {
	MalID    int     `json:"mal_id"`
	Title    string  `json:"title"`
	Episodes *int    `json:"episodes"`
	Type     *string `json:"type"`
	Status   *string `json:"status"`
}

func (j *jikanAnime) ToAnime() (*Anime, error) {
	if j.MalID <= 0 {
		return nil, fmt.Errorf("catalog record has invalid mal_id %d", j.MalID)
	}
	if j.Title == "" {
		return nil, fmt.Errorf("catalog record %d has no title", j.MalID)
	}

	return &Anime{
		ID:       j.MalID,
		Title:    j.Title,
		Episodes: mo.PointerToOption(j.Episodes),
		Type:     mo.PointerToOption(j.Type),
		Status:   mo.PointerToOption(j.Status),
	}, nil
}

// Jikan reads anime metadata from the unofficial MyAnimeList API.
type Jikan struct {
	api *utils.API
}

func NewJikan(baseURL string) *Jikan {
	if baseURL == "" {
		baseURL = DefaultJikanURL
	}
	return &Jikan{api: utils.NewAPI(baseURL)}
}

func (j *Jikan) Search(ctx context.Context, query string, limit int) ([]Anime, error) {
	params := url.Values{"q": {query}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var page struct {
		Data []jikanAnime `json:"data"`
	}
	log.Debugf("jikan search %q (limit %d)", query, limit)
	if err := j.api.Get(ctx, "/anime", params, &page); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	out := make([]Anime, 0, len(page.Data))
	for i := range page.Data {
		anime, err := page.Data[i].ToAnime()
		if err != nil {
			log.Warnf("skipping search result: %v", err)
			continue
		}
		out = append(out, *anime)
	}
	return out, nil
}

func (j *Jikan) GetAnime(ctx context.Context, id int) (*Anime, error) {
	var resource struct {
		Data jikanAnime `json:"data"`
	}
	log.Debugf("jikan get anime %d", id)
	if err := j.api.Get(ctx, fmt.Sprintf("/anime/%d", id), nil, &resource); err != nil {
		var statusErr *utils.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("anime %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get anime %d: %w", id, err)
	}

	return resource.Data.ToAnime()
}
