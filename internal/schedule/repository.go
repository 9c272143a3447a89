package schedule

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/NisithAkalanka/SportNest-sub001/internal/venue"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const sessionColumns = "id, owner_id, title, venue, session_date, start_time, end_time, created_at"

func (r *repository) Insert(ctx context.Context, s Session) (*Session, error) {
	query := `
		INSERT INTO sessions (owner_id, title, venue, session_date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + sessionColumns

	var created Session
	err := r.db.GetContext(ctx, &created, query,
		s.OwnerID, s.Title, s.Venue, s.Date, s.StartTime, s.EndTime)
	if err != nil {
		return nil, mapWriteError(err)
	}

	return &created, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		ORDER BY session_date ASC, start_time ASC
	`

	var sessions []Session
	if err := r.db.SelectContext(ctx, &sessions, query); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE id = $1
	`

	var s Session
	err := r.db.GetContext(ctx, &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) FindByOwner(ctx context.Context, ownerID int) ([]Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE owner_id = $1
	`

	var sessions []Session
	if err := r.db.SelectContext(ctx, &sessions, query, ownerID); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) FindByVenueAndDate(ctx context.Context, v venue.Venue, date time.Time) ([]Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE venue = $1 AND session_date = $2
		ORDER BY start_time ASC
	`

	var sessions []Session
	if err := r.db.SelectContext(ctx, &sessions, query, v, date); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *repository) Replace(ctx context.Context, id int, s Session) (*Session, error) {
	query := `
		UPDATE sessions
		SET title = $1, venue = $2, session_date = $3, start_time = $4, end_time = $5
		WHERE id = $6
		RETURNING ` + sessionColumns

	var updated Session
	err := r.db.GetContext(ctx, &updated, query,
		s.Title, s.Venue, s.Date, s.StartTime, s.EndTime, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, mapWriteError(err)
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM sessions WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// mapWriteError translates the no-overlap exclusion constraint into the
// domain conflict error. The constraint is the backstop for two writers
// racing past the in-process check; the store is the sole arbiter.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23P01" {
		return &ConflictError{}
	}
	return err
}
