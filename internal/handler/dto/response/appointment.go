package response

import (
	"time"

	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetSummaryResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Species string    `json:"species"`
}

type AppointmentResponse struct {
	ID        uuid.UUID          `json:"id"`
	Date      time.Time          `json:"date"`
	Reason    string             `json:"reason"`
	Status    string             `json:"status"`
	PetID     uuid.UUID          `json:"pet_id"`
	UserID    uuid.UUID          `json:"user_id"`
	Pet       PetSummaryResponse `json:"pet"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type AppointmentEnvelope struct {
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
}

type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Pagination   PaginationResponse    `json:"pagination"`
}

type SlotResponse struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
}

type AvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromAppointmentView(v *queries.AppointmentView) AppointmentResponse {
	return AppointmentResponse{
		ID:     v.ID,
		Date:   v.Date,
		Reason: v.Reason,
		Status: v.Status,
		PetID:  v.PetID,
		UserID: v.UserID,
		Pet: PetSummaryResponse{
			ID:      v.Pet.ID,
			Name:    v.Pet.Name,
			Species: v.Pet.Species,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromAppointmentPage(page *queries.AppointmentPage) AppointmentListResponse {
	appointments := make([]AppointmentResponse, len(page.Appointments))
	for i, v := range page.Appointments {
		appointments[i] = FromAppointmentView(v)
	}
	return AppointmentListResponse{
		Appointments: appointments,
		Pagination: PaginationResponse{
			Page:  page.Pagination.Page,
			Limit: page.Pagination.Limit,
			Total: page.Pagination.Total,
			Pages: page.Pagination.Pages,
		},
	}
}

func FromDaySlots(slots *queries.DaySlots) AvailableSlotsResponse {
	out := make([]SlotResponse, len(slots.Slots))
	for i, s := range slots.Slots {
		out[i] = SlotResponse{Time: s.Time, Available: s.Available}
	}
	return AvailableSlotsResponse{Date: slots.Date, Slots: out}
}
