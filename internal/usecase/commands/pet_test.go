//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vetclinic-booking-api/internal/domain/pet"
	"vetclinic-booking-api/internal/infra"
	"vetclinic-booking-api/internal/pkg/clock"
	"vetclinic-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePetRepo struct {
	byID      map[uuid.UUID]*pet.Pet
	createErr error
	updateErr error
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{byID: make(map[uuid.UUID]*pet.Pet)}
}

func (r *fakePetRepo) Create(_ context.Context, p *pet.Pet) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[p.ID()] = p
	return nil
}

func (r *fakePetRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*pet.Pet, error) {
	p, ok := r.byID[id]
	if !ok || p.UserID() != userID {
		return nil, infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (r *fakePetRepo) Update(_ context.Context, p *pet.Pet) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.byID[p.ID()] = p
	return nil
}

func (r *fakePetRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	p, ok := r.byID[id]
	if !ok || p.UserID() != userID {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	delete(r.byID, id)
	return nil
}

type petFixture struct {
	commands commands.PetCommands
	repo     *fakePetRepo
	clock    *clock.MockClock
	userID   uuid.UUID
}

func newPetFixture() *petFixture {
	repo := newFakePetRepo()
	mockClock := clock.NewMockClock(frozenNow)

	return &petFixture{
		commands: commands.NewPetCommands(repo, mockClock),
		repo:     repo,
		clock:    mockClock,
		userID:   uuid.New(),
	}
}

func (f *petFixture) createPet(t *testing.T) uuid.UUID {
	t.Helper()
	breed := "Labrador"
	age := 4
	view, err := f.commands.Create(t.Context(), f.userID, commands.CreatePetParams{
		Name:    "Rex",
		Species: "dog",
		Breed:   &breed,
		Age:     &age,
	})
	require.NoError(t, err)
	return view.ID
}

func TestCreatePet(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		f := newPetFixture()

		view, err := f.commands.Create(t.Context(), f.userID, commands.CreatePetParams{
			Name:    "Rex",
			Species: "dog",
		})
		require.NoError(t, err)

		assert.Equal(t, "Rex", view.Name)
		assert.Equal(t, "dog", view.Species)
		assert.Nil(t, view.Breed)
		assert.Nil(t, view.Age)
		assert.Equal(t, f.userID, view.UserID)
		assert.Equal(t, frozenNow, view.CreatedAt)
		assert.Contains(t, f.repo.byID, view.ID)
	})

	t.Run("invalid attributes", func(t *testing.T) {
		f := newPetFixture()

		_, err := f.commands.Create(t.Context(), f.userID, commands.CreatePetParams{
			Name:    "",
			Species: "dog",
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
		assert.Empty(t, f.repo.byID)
	})
}

func TestUpdatePet(t *testing.T) {
	name := func(s string) *string { return &s }

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		f := newPetFixture()
		id := f.createPet(t)

		f.clock.Add(time.Hour)
		view, err := f.commands.Update(t.Context(), f.userID, id, commands.UpdatePetParams{
			Name: name("Buddy"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Buddy", view.Name)
		assert.Equal(t, "dog", view.Species)
		require.NotNil(t, view.Breed)
		assert.Equal(t, "Labrador", *view.Breed)
		require.NotNil(t, view.Age)
		assert.Equal(t, 4, *view.Age)
	})

	t.Run("identity and creation time survive an update", func(t *testing.T) {
		f := newPetFixture()
		id := f.createPet(t)

		f.clock.Add(time.Hour)
		view, err := f.commands.Update(t.Context(), f.userID, id, commands.UpdatePetParams{
			Name: name("Buddy"),
		})
		require.NoError(t, err)

		assert.Equal(t, id, view.ID)
		assert.Equal(t, frozenNow, view.CreatedAt)
		assert.Equal(t, frozenNow.Add(time.Hour), view.UpdatedAt)
	})

	t.Run("invalid attributes", func(t *testing.T) {
		f := newPetFixture()
		id := f.createPet(t)

		_, err := f.commands.Update(t.Context(), f.userID, id, commands.UpdatePetParams{
			Name: name("  "),
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("unknown pet", func(t *testing.T) {
		f := newPetFixture()

		_, err := f.commands.Update(t.Context(), f.userID, uuid.New(), commands.UpdatePetParams{
			Name: name("Buddy"),
		})
		assert.ErrorIs(t, err, commands.ErrPetNotFound)
	})

	t.Run("another user's pet reads as missing", func(t *testing.T) {
		f := newPetFixture()
		id := f.createPet(t)

		_, err := f.commands.Update(t.Context(), uuid.New(), id, commands.UpdatePetParams{
			Name: name("Buddy"),
		})
		assert.ErrorIs(t, err, commands.ErrPetNotFound)
	})
}

func TestDeletePet(t *testing.T) {
	t.Run("deletes an owned pet", func(t *testing.T) {
		f := newPetFixture()
		id := f.createPet(t)

		require.NoError(t, f.commands.Delete(t.Context(), f.userID, id))
		assert.NotContains(t, f.repo.byID, id)
	})

	t.Run("unknown pet", func(t *testing.T) {
		f := newPetFixture()

		err := f.commands.Delete(t.Context(), f.userID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrPetNotFound)
	})

	t.Run("another user's pet reads as missing", func(t *testing.T) {
		f := newPetFixture()
		id := f.createPet(t)

		err := f.commands.Delete(t.Context(), uuid.New(), id)
		assert.ErrorIs(t, err, commands.ErrPetNotFound)
		assert.Contains(t, f.repo.byID, id)
	})
}
