package queries

import (
	"context"
	"time"

	"vetclinic-booking-api/internal/domain/schedule"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// AppointmentFilter carries the caller-supplied list filters. Day is a
// calendar day widened to the clinic-local day range before hitting the
// store; Status is already validated by the handler layer.
type AppointmentFilter struct {
	Day    *time.Time
	PetID  *uuid.UUID
	Status *string
	Page   int
	Limit  int
}

// StoreFilter is the filter shape the read store understands: resolved
// instant ranges instead of calendar days.
type StoreFilter struct {
	From   *time.Time
	To     *time.Time
	PetID  *uuid.UUID
	Status *string
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*AppointmentView, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter StoreFilter, limit, offset int32) ([]*AppointmentView, error)
	CountByUser(ctx context.Context, userID uuid.UUID, filter StoreFilter) (int64, error)
	// ActiveExistsAt reports whether a PENDING or CONFIRMED appointment
	// starts at exactly the given instant, optionally ignoring one
	// appointment (so an update does not conflict with itself).
	ActiveExistsAt(ctx context.Context, at time.Time, excludeID *uuid.UUID) (bool, error)
}

type AppointmentQueries interface {
	List(ctx context.Context, userID uuid.UUID, filter AppointmentFilter) (*AppointmentPage, error)
	AvailableSlots(ctx context.Context, day time.Time) (*DaySlots, error)
	IsSlotAvailable(ctx context.Context, at time.Time, excludeID *uuid.UUID) (bool, error)
}

type appointmentQueriesImpl struct {
	store  AppointmentReadStore
	policy *schedule.Policy
}

func NewAppointmentQueries(store AppointmentReadStore, policy *schedule.Policy) AppointmentQueries {
	return &appointmentQueriesImpl{store: store, policy: policy}
}

// List returns the caller's appointments ordered by ascending date, never
// another user's, with pagination metadata.
func (q *appointmentQueriesImpl) List(ctx context.Context, userID uuid.UUID, filter AppointmentFilter) (*AppointmentPage, error) {
	page := filter.Page
	if page < DefaultPage {
		page = DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	storeFilter := StoreFilter{
		PetID:  filter.PetID,
		Status: filter.Status,
	}
	if filter.Day != nil {
		from, to := q.policy.DayRange(*filter.Day)
		storeFilter.From = &from
		storeFilter.To = &to
	}

	offset := (page - 1) * limit

	total, err := q.store.CountByUser(ctx, userID, storeFilter)
	if err != nil {
		return nil, err
	}

	views, err := q.store.FindByUser(ctx, userID, storeFilter, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &AppointmentPage{
		Appointments: views,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// AvailableSlots enumerates the bookable hourly slots for a day and marks
// each as free or taken. Checks are independent reads; a slot can be taken
// between enumeration and a later booking attempt, in which case the create
// fails with a slot conflict.
func (q *appointmentQueriesImpl) AvailableSlots(ctx context.Context, day time.Time) (*DaySlots, error) {
	candidates := q.policy.SlotCandidates(day)

	slots := make([]Slot, 0, len(candidates))
	for _, candidate := range candidates {
		exists, err := q.store.ActiveExistsAt(ctx, candidate, nil)
		if err != nil {
			return nil, err
		}
		slots = append(slots, Slot{
			Time:      candidate,
			Available: !exists,
		})
	}

	return &DaySlots{
		Date:  day.In(q.policy.Location()).Format("2006-01-02"),
		Slots: slots,
	}, nil
}

func (q *appointmentQueriesImpl) IsSlotAvailable(ctx context.Context, at time.Time, excludeID *uuid.UUID) (bool, error) {
	exists, err := q.store.ActiveExistsAt(ctx, at, excludeID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
