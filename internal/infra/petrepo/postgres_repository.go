package petrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmfrazier/pawtrack/internal/domain/pets"
)

// PostgresRepository persists pets in Postgres. The opaque info and vet
// documents live in jsonb columns, mirroring the document-store shape the
// frontend expects.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns every stored pet.
func (r *PostgresRepository) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, "user", name, info, vet, pic
		FROM pets
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []pets.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pet)
	}
	return out, rows.Err()
}

// Get fetches a pet by id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (pets.Pet, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, "user", name, info, vet, pic
		FROM pets
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return pets.Pet{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return pets.Pet{}, false, rows.Err()
	}
	pet, err := scanPet(rows)
	if err != nil {
		return pets.Pet{}, false, err
	}
	return pet, true, rows.Err()
}

// Create inserts a new pet row.
func (r *PostgresRepository) Create(ctx context.Context, pet pets.Pet) (pets.Pet, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO pets (id, "user", name, info, vet, pic)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, "user", name, info, vet, pic
	`, pet.ID, pet.User, pet.Name, pet.Info, pet.Vet, pet.Pic)
	return scanPet(row)
}

// Update replaces a pet row, reporting whether it existed.
func (r *PostgresRepository) Update(ctx context.Context, pet pets.Pet) (pets.Pet, bool, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE pets
		SET "user" = $2, name = $3, info = $4, vet = $5, pic = $6
		WHERE id = $1
		RETURNING id, "user", name, info, vet, pic
	`, pet.ID, pet.User, pet.Name, pet.Info, pet.Vet, pet.Pic)
	if err != nil {
		return pets.Pet{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return pets.Pet{}, false, rows.Err()
	}
	updated, err := scanPet(rows)
	if err != nil {
		return pets.Pet{}, false, err
	}
	return updated, true, rows.Err()
}

// Delete removes a pet row, reporting whether it existed.
func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var pet pets.Pet
	var pic *string
	if err := row.Scan(&pet.ID, &pet.User, &pet.Name, &pet.Info, &pet.Vet, &pic); err != nil {
		return pets.Pet{}, err
	}
	if pic != nil {
		pet.Pic = *pic
	}
	return pet, nil
}

var _ pets.Repository = (*PostgresRepository)(nil)
