package commands

import (
	"context"
	"time"

	"vetclinic-booking-api/internal/domain/appointment"
	"vetclinic-booking-api/internal/domain/schedule"
	"vetclinic-booking-api/internal/infra"
	"vetclinic-booking-api/internal/pkg/clock"
	"vetclinic-booking-api/internal/pkg/errs"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate             = errs.New("appointment date must be in the future")
	ErrOutsideBusinessHours    = errs.New("appointment outside business hours")
	ErrPetNotFound             = errs.New("pet not found")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrTimeSlotUnavailable     = errs.New("time slot unavailable")
	ErrCannotDeleteConfirmed   = errs.New("confirmed appointment cannot be deleted")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateAppointmentParams struct {
	Date   time.Time
	Reason string
	PetID  uuid.UUID
}

type UpdateAppointmentParams struct {
	Date   *time.Time
	Reason *string
	Status *string
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*appointment.Appointment, error)
	Update(ctx context.Context, appt *appointment.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PetFinder interface {
	// FindOwnedSummary resolves a pet by {id, owner}. A pet that exists but
	// belongs to another user is reported the same way as a missing one.
	FindOwnedSummary(ctx context.Context, petID, userID uuid.UUID) (*queries.PetSummary, error)
}

type AppointmentCommands interface {
	Create(ctx context.Context, userID uuid.UUID, params CreateAppointmentParams) (*queries.AppointmentView, error)
	Update(ctx context.Context, userID, id uuid.UUID, params UpdateAppointmentParams) (*queries.AppointmentView, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	repo      AppointmentRepository
	petFinder PetFinder
	readStore queries.AppointmentReadStore
	policy    *schedule.Policy
	clock     clock.Clock
}

func NewAppointmentCommands(
	repo AppointmentRepository,
	petFinder PetFinder,
	readStore queries.AppointmentReadStore,
	policy *schedule.Policy,
	clock clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		repo:      repo,
		petFinder: petFinder,
		readStore: readStore,
		policy:    policy,
		clock:     clock,
	}
}

func (c *appointmentCommandsImpl) Create(ctx context.Context, userID uuid.UUID, params CreateAppointmentParams) (*queries.AppointmentView, error) {
	if err := c.validateDate(params.Date); err != nil {
		return nil, err
	}

	if _, err := c.petFinder.FindOwnedSummary(ctx, params.PetID, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.ensureSlotFree(ctx, params.Date, nil); err != nil {
		return nil, err
	}

	appt, err := appointment.New(params.Date, params.Reason, params.PetID, userID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, appt); err != nil {
		// The partial unique index on active slots is the authoritative
		// conflict signal; losing the check-then-act race lands here.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrTimeSlotUnavailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.readStore.FindByID(ctx, appt.ID(), userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *appointmentCommandsImpl) Update(ctx context.Context, userID, id uuid.UUID, params UpdateAppointmentParams) (*queries.AppointmentView, error) {
	appt, err := c.repo.FindByID(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if params.Date != nil {
		if err := c.validateDate(*params.Date); err != nil {
			return nil, err
		}
		excludeID := appt.ID()
		if err := c.ensureSlotFree(ctx, *params.Date, &excludeID); err != nil {
			return nil, err
		}
		appt.Reschedule(*params.Date)
	}

	if params.Reason != nil {
		if err := appt.ChangeReason(*params.Reason); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	if params.Status != nil {
		status, statusErr := appointment.NewStatus(*params.Status)
		if statusErr != nil {
			return nil, errs.Mark(statusErr, ErrDomainValidation)
		}
		if err := appt.ChangeStatus(status); err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
	}

	appt.Touch(c.clock.Now())

	if err := c.repo.Update(ctx, appt); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrTimeSlotUnavailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.readStore.FindByID(ctx, appt.ID(), userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *appointmentCommandsImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	appt, err := c.repo.FindByID(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := appt.EnsureDeletable(); err != nil {
		return ErrCannotDeleteConfirmed
	}

	if err := c.repo.Delete(ctx, appt.ID()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *appointmentCommandsImpl) validateDate(date time.Time) error {
	if !date.After(c.clock.Now()) {
		return ErrInvalidDate
	}
	if !c.policy.IsBusinessHour(date) {
		return ErrOutsideBusinessHours
	}
	return nil
}

func (c *appointmentCommandsImpl) ensureSlotFree(ctx context.Context, at time.Time, excludeID *uuid.UUID) error {
	exists, err := c.readStore.ActiveExistsAt(ctx, at, excludeID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return ErrTimeSlotUnavailable
	}
	return nil
}
