package readstore

import (
	"context"

	"vetclinic-booking-api/internal/infra"
	"vetclinic-booking-api/internal/infra/pgconv"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := r.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Email, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	const query = `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = lower($1)`

	var (
		v    queries.UserView
		hash string
	)
	err := r.pool.QueryRow(ctx, query, email).Scan(&v.ID, &v.Name, &v.Email, &hash, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
