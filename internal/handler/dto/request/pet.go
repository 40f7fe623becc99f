package request

type CreatePetRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=100"`
	Species string  `json:"species" binding:"required,min=1,max=100"`
	Breed   *string `json:"breed,omitempty" binding:"omitempty,max=100"`
	Age     *int    `json:"age,omitempty" binding:"omitempty,gte=0,lte=100"`
}

type UpdatePetRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Species *string `json:"species,omitempty" binding:"omitempty,min=1,max=100"`
	Breed   *string `json:"breed,omitempty" binding:"omitempty,max=100"`
	Age     *int    `json:"age,omitempty" binding:"omitempty,gte=0,lte=100"`
}
