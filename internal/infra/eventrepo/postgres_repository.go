package eventrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmfrazier/pawtrack/internal/domain/events"
)

// PostgresRepository persists events in Postgres with the info document in a
// jsonb column.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns every stored event.
func (r *PostgresRepository) List(ctx context.Context) ([]events.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, "user", name, info, date, frequency
		FROM events
		ORDER BY date, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []events.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

// Get fetches an event by id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (events.Event, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, "user", name, info, date, frequency
		FROM events
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return events.Event{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return events.Event{}, false, rows.Err()
	}
	event, err := scanEvent(rows)
	if err != nil {
		return events.Event{}, false, err
	}
	return event, true, rows.Err()
}

// Create inserts a new event row.
func (r *PostgresRepository) Create(ctx context.Context, event events.Event) (events.Event, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (id, "user", name, info, date, frequency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, "user", name, info, date, frequency
	`, event.ID, event.User, event.Name, event.Info, event.Date, event.Frequency)
	return scanEvent(row)
}

// Update replaces an event row, reporting whether it existed.
func (r *PostgresRepository) Update(ctx context.Context, event events.Event) (events.Event, bool, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE events
		SET "user" = $2, name = $3, info = $4, date = $5, frequency = $6
		WHERE id = $1
		RETURNING id, "user", name, info, date, frequency
	`, event.ID, event.User, event.Name, event.Info, event.Date, event.Frequency)
	if err != nil {
		return events.Event{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return events.Event{}, false, rows.Err()
	}
	updated, err := scanEvent(rows)
	if err != nil {
		return events.Event{}, false, err
	}
	return updated, true, rows.Err()
}

// Delete removes an event row, reporting whether it existed.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (events.Event, error) {
	var event events.Event
	var date, frequency *string
	if err := row.Scan(&event.ID, &event.User, &event.Name, &event.Info, &date, &frequency); err != nil {
		return events.Event{}, err
	}
	if date != nil {
		event.Date = *date
	}
	if frequency != nil {
		event.Frequency = *frequency
	}
	return event, nil
}

var _ events.Repository = (*PostgresRepository)(nil)
