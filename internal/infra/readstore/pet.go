package readstore

import (
	"context"

	"vetclinic-booking-api/internal/infra"
	"vetclinic-booking-api/internal/infra/pgconv"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PetReadStore struct {
	pool *pgxpool.Pool
}

func NewPetReadStore(pool *pgxpool.Pool) *PetReadStore {
	return &PetReadStore{pool: pool}
}

func (r *PetReadStore) FindByID(ctx context.Context, id, userID uuid.UUID) (*queries.PetView, error) {
	const query = `
		SELECT id, name, species, breed, age, user_id, created_at, updated_at
		FROM pets
		WHERE id = $1 AND user_id = $2`

	var v queries.PetView
	err := r.pool.QueryRow(ctx, query, id, userID).
		Scan(&v.ID, &v.Name, &v.Species, &v.Breed, &v.Age, &v.UserID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet by ID", err)
	}
	return &v, nil
}

func (r *PetReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.PetView, error) {
	const query = `
		SELECT id, name, species, breed, age, user_id, created_at, updated_at
		FROM pets
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	defer rows.Close()

	views := make([]*queries.PetView, 0)
	for rows.Next() {
		var v queries.PetView
		if scanErr := rows.Scan(&v.ID, &v.Name, &v.Species, &v.Breed, &v.Age, &v.UserID, &v.CreatedAt, &v.UpdatedAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan pet row", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pet rows", err)
	}
	return views, nil
}

// FindOwnedSummary resolves the pet summary attached to appointment
// responses, scoped to the owner so existence never leaks across users.
func (r *PetReadStore) FindOwnedSummary(ctx context.Context, petID, userID uuid.UUID) (*queries.PetSummary, error) {
	const query = `
		SELECT id, name, species
		FROM pets
		WHERE id = $1 AND user_id = $2`

	var s queries.PetSummary
	err := r.pool.QueryRow(ctx, query, petID, userID).Scan(&s.ID, &s.Name, &s.Species)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet summary", err)
	}
	return &s, nil
}
