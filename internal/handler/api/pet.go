package api

import (
	"errors"
	"net/http"

	"vetclinic-booking-api/internal/infra"

	reqdto "vetclinic-booking-api/internal/handler/dto/request"
	resdto "vetclinic-booking-api/internal/handler/dto/response"
	"vetclinic-booking-api/internal/handler/httperr"
	"vetclinic-booking-api/internal/handler/middleware"
	"vetclinic-booking-api/internal/usecase/commands"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PetHandler struct {
	petCommands commands.PetCommands
	petQueries  queries.PetQueries
}

func NewPetHandler(petCommands commands.PetCommands, petQueries queries.PetQueries) *PetHandler {
	return &PetHandler{
		petCommands: petCommands,
		petQueries:  petQueries,
	}
}

// @Summary Create pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePetRequest true "Pet request"
// @Success 201 {object} resdto.PetResponse
// @Failure 400 {object} httperr.Response
// @Router /pets [post]
func (h *PetHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", nil)
		return
	}

	var req reqdto.CreatePetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid request format", bindErr)
		return
	}

	view, err := h.petCommands.Create(c.Request.Context(), userID, commands.CreatePetParams{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age,
	})
	if err != nil {
		h.abortWithPetError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPetView(view))
}

// @Summary List pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PetResponse
// @Router /pets [get]
func (h *PetHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", nil)
		return
	}

	views, err := h.petQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetViews(views))
}

// @Summary Get pet
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.PetResponse
// @Failure 404 {object} httperr.Response
// @Router /pets/{id} [get]
func (h *PetHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid pet ID format", err)
		return
	}

	view, err := h.petQueries.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodePetNotFound, "Pet not found", err)
			return
		}
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

// @Summary Update pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param request body reqdto.UpdatePetRequest true "Fields to update"
// @Success 200 {object} resdto.PetResponse
// @Failure 404 {object} httperr.Response
// @Router /pets/{id} [put]
func (h *PetHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid pet ID format", err)
		return
	}

	var req reqdto.UpdatePetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid request format", bindErr)
		return
	}

	view, err := h.petCommands.Update(c.Request.Context(), userID, id, commands.UpdatePetParams{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age,
	})
	if err != nil {
		h.abortWithPetError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

// @Summary Delete pet
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid pet ID format", err)
		return
	}

	if err := h.petCommands.Delete(c.Request.Context(), userID, id); err != nil {
		h.abortWithPetError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Pet deleted successfully"})
}

func (h *PetHandler) abortWithPetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPetNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodePetNotFound, "Pet not found", err)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, httperr.CodeValidationError, "Validation failed", err)
	default:
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", err)
	}
}
