package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kerbaras/anitrack/pkg/log"
	"github.com/samber/mo"
)

// Upsert inserts the entry or replaces the whole row for id. Progress, rating and
// notes go back to their defaults even when the previous row had values.
func (s *Store) Upsert(ctx context.Context, id int, title string, totalEpisodes mo.Option[int], status mo.Option[string]) error {
	return s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, `
			INSERT OR REPLACE INTO watched_anime
			(mal_id, title, watched_episodes, total_episodes, status, user_rating, last_updated, notes)
			VALUES (?, ?, 0, ?, ?, NULL, ?, NULL)
		`, id, title, nullable(totalEpisodes), nullable(status), s.now())
		if err != nil {
			return fmt.Errorf("upsert anime %d: %w", id, err)
		}

		log.Infof("upserted anime %d (%s)", id, title)
		return nil
	})
}

// UpdateProgress sets the watched episode count and, when present, the rating.
// It reports false when no entry with id exists.
func (s *Store) UpdateProgress(ctx context.Context, id, episodes int, rating mo.Option[float64]) (bool, error) {
	var updated bool
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		var (
			res sql.Result
			err error
		)
		if r, ok := rating.Get(); ok {
			res, err = conn.ExecContext(ctx, `
				UPDATE watched_anime
				SET watched_episodes = ?, user_rating = ?, last_updated = ?
				WHERE mal_id = ?
			`, episodes, r, s.now(), id)
		} else {
			res, err = conn.ExecContext(ctx, `
				UPDATE watched_anime
				SET watched_episodes = ?, last_updated = ?
				WHERE mal_id = ?
			`, episodes, s.now(), id)
		}
		if err != nil {
			return fmt.Errorf("update progress for anime %d: %w", id, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update progress for anime %d: %w", id, err)
		}
		updated = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	if !updated {
		log.Warnf("update progress: anime %d is not in the watchlist", id)
	}
	return updated, nil
}

// Remove deletes the entry for id and returns its title. The lookup and the delete
// are separate statements; found is false and nothing is deleted when id is absent.
func (s *Store) Remove(ctx context.Context, id int) (title string, found bool, err error) {
	err = s.withConn(ctx, func(conn *sql.Conn) error {
		var t sql.NullString
		err := conn.QueryRowContext(ctx, `SELECT title FROM watched_anime WHERE mal_id = ?`, id).Scan(&t)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("look up anime %d: %w", id, err)
		}

		if _, err := conn.ExecContext(ctx, `DELETE FROM watched_anime WHERE mal_id = ?`, id); err != nil {
			return fmt.Errorf("delete anime %d: %w", id, err)
		}

		title, found = t.String, true
		return nil
	})
	if err != nil {
		return "", false, err
	}

	if found {
		log.Infof("removed anime %d (%s)", id, title)
	}
	return title, found, nil
}

// ListAll returns every entry in storage order.
func (s *Store) ListAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `
			SELECT mal_id, title, watched_episodes, total_episodes,
			       status, user_rating, last_updated, notes
			FROM watched_anime
		`)
		if err != nil {
			return fmt.Errorf("list watchlist: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			entry, err := scanEntry(rows)
			if err != nil {
				return fmt.Errorf("list watchlist: %w", err)
			}
			entries = append(entries, entry)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e       Entry
		title   sql.NullString
		watched sql.NullInt64
		total   sql.NullInt64
		status  sql.NullString
		rating  sql.NullFloat64
		updated sql.NullTime
		notes   sql.NullString
	)
	if err := rows.Scan(&e.ID, &title, &watched, &total, &status, &rating, &updated, &notes); err != nil {
		return Entry{}, err
	}

	e.Title = title.String
	e.WatchedEpisodes = int(watched.Int64)
	e.TotalEpisodes = fromNull(int(total.Int64), total.Valid)
	e.Status = fromNull(status.String, status.Valid)
	e.UserRating = fromNull(rating.Float64, rating.Valid)
	e.LastUpdated = updated.Time
	e.Notes = fromNull(notes.String, notes.Valid)

	return e, nil
}

func fromNull[T any](v T, valid bool) mo.Option[T] {
	if !valid {
		return mo.None[T]()
	}
	return mo.Some(v)
}

func nullable[T any](o mo.Option[T]) any {
	if v, ok := o.Get(); ok {
		return v
	}
	return nil
}
