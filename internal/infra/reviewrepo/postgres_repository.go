package reviewrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmfrazier/pawtrack/internal/domain/reviews"
)

// PostgresRepository persists reviews in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns every stored review, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]reviews.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, "user", title, rating, review, date
		FROM reviews
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []reviews.Review
	for rows.Next() {
		var review reviews.Review
		var date *string
		if err := rows.Scan(&review.ID, &review.User, &review.Title, &review.Rating, &review.Review, &date); err != nil {
			return nil, err
		}
		if date != nil {
			review.Date = *date
		}
		out = append(out, review)
	}
	return out, rows.Err()
}

// Create inserts a new review row.
func (r *PostgresRepository) Create(ctx context.Context, review reviews.Review) (reviews.Review, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO reviews (id, "user", title, rating, review, date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, review.ID, review.User, review.Title, review.Rating, review.Review, review.Date)
	if err != nil {
		return reviews.Review{}, err
	}
	return review, nil
}

var _ reviews.Repository = (*PostgresRepository)(nil)
