package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type PetSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Species string    `json:"species"`
}

type AppointmentView struct {
	ID        uuid.UUID  `json:"id"`
	Date      time.Time  `json:"date"`
	Reason    string     `json:"reason"`
	Status    string     `json:"status"`
	PetID     uuid.UUID  `json:"pet_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Pet       PetSummary `json:"pet"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type AppointmentPage struct {
	Appointments []*AppointmentView `json:"appointments"`
	Pagination   Pagination         `json:"pagination"`
}

type Slot struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
}

type DaySlots struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

type PetView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     *string   `json:"breed,omitempty"`
	Age       *int      `json:"age,omitempty"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
