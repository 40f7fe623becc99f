package pet

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("pet name cannot be empty")
	ErrNameTooLong  = errors.New("pet name is too long")
	ErrEmptySpecies = errors.New("pet species cannot be empty")
	ErrNegativeAge  = errors.New("pet age cannot be negative")
)

const MaxNameLength = 100

type Pet struct {
	id        uuid.UUID
	name      string
	species   string
	breed     *string
	age       *int
	userID    uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func New(name, species string, breed *string, age *int, userID uuid.UUID, now time.Time) (*Pet, error) {
	name, species, err := validateAttrs(name, species, age)
	if err != nil {
		return nil, err
	}

	return &Pet{
		id:        uuid.New(),
		name:      name,
		species:   species,
		breed:     breed,
		age:       age,
		userID:    userID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, name, species string, breed *string, age *int, userID uuid.UUID, createdAt, updatedAt time.Time) *Pet {
	return &Pet{
		id:        id,
		name:      name,
		species:   species,
		breed:     breed,
		age:       age,
		userID:    userID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update validates and applies the full attribute set in place; identity and
// creation time are untouched. Callers resolve partial input against the
// current values before calling.
func (p *Pet) Update(name, species string, breed *string, age *int, now time.Time) error {
	name, species, err := validateAttrs(name, species, age)
	if err != nil {
		return err
	}

	p.name = name
	p.species = species
	p.breed = breed
	p.age = age
	p.updatedAt = now
	return nil
}

func validateAttrs(name, species string, age *int) (string, string, error) {
	name = strings.TrimSpace(name)
	species = strings.TrimSpace(species)

	if name == "" {
		return "", "", ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return "", "", ErrNameTooLong
	}
	if species == "" {
		return "", "", ErrEmptySpecies
	}
	if age != nil && *age < 0 {
		return "", "", ErrNegativeAge
	}
	return name, species, nil
}

func (p *Pet) ID() uuid.UUID        { return p.id }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) Species() string      { return p.species }
func (p *Pet) Breed() *string       { return p.breed }
func (p *Pet) Age() *int            { return p.age }
func (p *Pet) UserID() uuid.UUID    { return p.userID }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time { return p.updatedAt }
