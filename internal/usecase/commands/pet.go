package commands

import (
	"context"

	"vetclinic-booking-api/internal/domain/pet"
	"vetclinic-booking-api/internal/infra"
	"vetclinic-booking-api/internal/pkg/clock"
	"vetclinic-booking-api/internal/pkg/errs"
	"vetclinic-booking-api/internal/pkg/patch"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatePetParams struct {
	Name    string
	Species string
	Breed   *string
	Age     *int
}

type UpdatePetParams struct {
	Name    *string
	Species *string
	Breed   *string
	Age     *int
}

type PetRepository interface {
	Create(ctx context.Context, p *pet.Pet) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*pet.Pet, error)
	Update(ctx context.Context, p *pet.Pet) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type PetCommands interface {
	Create(ctx context.Context, userID uuid.UUID, params CreatePetParams) (*queries.PetView, error)
	Update(ctx context.Context, userID, id uuid.UUID, params UpdatePetParams) (*queries.PetView, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type petCommandsImpl struct {
	repo  PetRepository
	clock clock.Clock
}

func NewPetCommands(repo PetRepository, clock clock.Clock) PetCommands {
	return &petCommandsImpl{repo: repo, clock: clock}
}

func (c *petCommandsImpl) Create(ctx context.Context, userID uuid.UUID, params CreatePetParams) (*queries.PetView, error) {
	p, err := pet.New(params.Name, params.Species, params.Breed, params.Age, userID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, p); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return toPetView(p), nil
}

func (c *petCommandsImpl) Update(ctx context.Context, userID, id uuid.UUID, params UpdatePetParams) (*queries.PetView, error) {
	existing, err := c.repo.FindByID(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	name := patch.Coalesce(params.Name, existing.Name())
	species := patch.Coalesce(params.Species, existing.Species())
	breed := existing.Breed()
	if params.Breed != nil {
		breed = params.Breed
	}
	age := existing.Age()
	if params.Age != nil {
		age = params.Age
	}

	if err := existing.Update(name, species, breed, age, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Update(ctx, existing); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return toPetView(existing), nil
}

func (c *petCommandsImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPetNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func toPetView(p *pet.Pet) *queries.PetView {
	return &queries.PetView{
		ID:        p.ID(),
		Name:      p.Name(),
		Species:   p.Species(),
		Breed:     p.Breed(),
		Age:       p.Age(),
		UserID:    p.UserID(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
