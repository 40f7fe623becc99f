package response

import (
	"time"

	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     *string   `json:"breed,omitempty"`
	Age       *int      `json:"age,omitempty"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPetView(v *queries.PetView) PetResponse {
	return PetResponse{
		ID:        v.ID,
		Name:      v.Name,
		Species:   v.Species,
		Breed:     v.Breed,
		Age:       v.Age,
		UserID:    v.UserID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromPetViews(views []*queries.PetView) []PetResponse {
	out := make([]PetResponse, len(views))
	for i, v := range views {
		out[i] = FromPetView(v)
	}
	return out
}
