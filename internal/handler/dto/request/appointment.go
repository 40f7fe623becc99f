package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	Date   string    `json:"date" binding:"required"`
	Reason string    `json:"reason" binding:"required,min=5,max=200"`
	PetID  uuid.UUID `json:"petId" binding:"required"`
}

func (r *CreateAppointmentRequest) ParseDate() (time.Time, error) {
	return time.Parse(time.RFC3339, r.Date)
}

type UpdateAppointmentRequest struct {
	Date   *string `json:"date,omitempty"`
	Reason *string `json:"reason,omitempty" binding:"omitempty,min=5,max=200"`
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

func (r *UpdateAppointmentRequest) ParseDate() (*time.Time, error) {
	if r.Date == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *r.Date)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type ListAppointmentsQuery struct {
	Date   *string    `form:"date"`
	PetID  *uuid.UUID `form:"petId"`
	Status *string    `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
	Page   int        `form:"page,default=1" binding:"omitempty,gte=1"`
	Limit  int        `form:"limit,default=10" binding:"omitempty,gte=1,lte=100"`
}

// ParseDay accepts a bare calendar day or a full timestamp; filtering only
// uses the day component. Bare days are anchored in the clinic location so
// the widened range covers the right day near midnight.
func (q *ListAppointmentsQuery) ParseDay(loc *time.Location) (*time.Time, error) {
	if q.Date == nil {
		return nil, nil
	}
	t, err := parseDay(*q.Date, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type AvailableSlotsQuery struct {
	Date string `form:"date"`
}

func (q *AvailableSlotsQuery) ParseDay(loc *time.Location) (time.Time, error) {
	return parseDay(q.Date, loc)
}

func parseDay(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
