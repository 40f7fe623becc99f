package appointment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyReason     = errors.New("reason cannot be empty")
	ErrReasonTooShort  = errors.New("reason is too short")
	ErrReasonTooLong   = errors.New("reason is too long")
	ErrInvalidStatus   = errors.New("invalid appointment status")
	ErrDeleteConfirmed = errors.New("confirmed appointment cannot be deleted")
	ErrMissingPet      = errors.New("appointment requires a pet")
)

const (
	MinReasonLength = 5
	MaxReasonLength = 200
)

type Appointment struct {
	id        uuid.UUID
	date      time.Time
	reason    Reason
	status    Status
	petID     uuid.UUID
	userID    uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// New builds a fresh appointment in the initial PENDING state. Date
// validation (future instant, business hours) is the lifecycle manager's
// responsibility since it needs the clock and the opening-hours policy.
func New(date time.Time, reason string, petID, userID uuid.UUID, now time.Time) (*Appointment, error) {
	r, err := NewReason(reason)
	if err != nil {
		return nil, err
	}
	if petID == uuid.Nil {
		return nil, ErrMissingPet
	}

	return &Appointment{
		id:        uuid.New(),
		date:      date.UTC(),
		reason:    r,
		status:    StatusPending,
		petID:     petID,
		userID:    userID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds an appointment from stored state without
// re-validating; the store is trusted.
func Reconstruct(id uuid.UUID, date time.Time, reason string, status Status, petID, userID uuid.UUID, createdAt, updatedAt time.Time) *Appointment {
	return &Appointment{
		id:        id,
		date:      date.UTC(),
		reason:    Reason(reason),
		status:    status,
		petID:     petID,
		userID:    userID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) Date() time.Time      { return a.date }
func (a *Appointment) Reason() Reason       { return a.reason }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) PetID() uuid.UUID     { return a.petID }
func (a *Appointment) UserID() uuid.UUID    { return a.userID }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time { return a.updatedAt }

func (a *Appointment) Reschedule(date time.Time) {
	a.date = date.UTC()
}

func (a *Appointment) ChangeReason(reason string) error {
	r, err := NewReason(reason)
	if err != nil {
		return err
	}
	a.reason = r
	return nil
}

func (a *Appointment) ChangeStatus(status Status) error {
	if _, err := NewStatus(status.String()); err != nil {
		return err
	}
	a.status = status
	return nil
}

// Touch records the modification time; the lifecycle manager owns the clock.
func (a *Appointment) Touch(now time.Time) {
	a.updatedAt = now
}

// EnsureDeletable guards the only transition rule the lifecycle enforces:
// a CONFIRMED appointment must be cancelled before it can be removed.
func (a *Appointment) EnsureDeletable() error {
	if a.status == StatusConfirmed {
		return ErrDeleteConfirmed
	}
	return nil
}

type Reason string

func NewReason(s string) (Reason, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrEmptyReason
	}
	if len(trimmed) < MinReasonLength {
		return "", ErrReasonTooShort
	}
	if len(trimmed) > MaxReasonLength {
		return "", ErrReasonTooLong
	}
	return Reason(trimmed), nil
}

func (r Reason) String() string {
	return string(r)
}
