package repository

import (
	"context"
	"time"

	"vetclinic-booking-api/internal/domain/pet"
	"vetclinic-booking-api/internal/infra"
	"vetclinic-booking-api/internal/infra/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PetRepository struct {
	pool *pgxpool.Pool
}

func NewPetRepository(pool *pgxpool.Pool) *PetRepository {
	return &PetRepository{pool: pool}
}

func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	const query = `
		INSERT INTO pets (id, name, species, breed, age, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		p.ID(), p.Name(), p.Species(), p.Breed(), p.Age(), p.UserID(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("pet references missing user", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create pet", err)
	}
	return nil
}

func (r *PetRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*pet.Pet, error) {
	const query = `
		SELECT id, name, species, breed, age, user_id, created_at, updated_at
		FROM pets
		WHERE id = $1 AND user_id = $2`

	var (
		petID     uuid.UUID
		name      string
		species   string
		breed     *string
		age       *int
		ownerID   uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, id, userID).
		Scan(&petID, &name, &species, &breed, &age, &ownerID, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet by ID", err)
	}

	return pet.Reconstruct(petID, name, species, breed, age, ownerID, createdAt, updatedAt), nil
}

func (r *PetRepository) Update(ctx context.Context, p *pet.Pet) error {
	const query = `
		UPDATE pets
		SET name = $2, species = $3, breed = $4, age = $5, updated_at = $6
		WHERE id = $1 AND user_id = $7`

	tag, err := r.pool.Exec(ctx, query, p.ID(), p.Name(), p.Species(), p.Breed(), p.Age(), p.UpdatedAt(), p.UserID())
	if err != nil {
		return infra.WrapRepoErr("failed to update pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}
