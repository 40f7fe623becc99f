package queries

import (
	"context"

	"github.com/google/uuid"
)

type PetReadStore interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*PetView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*PetView, error)
}

type PetQueries interface {
	GetByID(ctx context.Context, id, userID uuid.UUID) (*PetView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PetView, error)
}

type petQueriesImpl struct {
	store PetReadStore
}

func NewPetQueries(store PetReadStore) PetQueries {
	return &petQueriesImpl{store: store}
}

func (q *petQueriesImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*PetView, error) {
	return q.store.FindByID(ctx, id, userID)
}

func (q *petQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*PetView, error) {
	return q.store.FindByUser(ctx, userID)
}
