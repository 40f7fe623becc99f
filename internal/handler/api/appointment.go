package api

import (
	"errors"
	"net/http"
	"time"

	"vetclinic-booking-api/internal/domain/schedule"
	reqdto "vetclinic-booking-api/internal/handler/dto/request"
	resdto "vetclinic-booking-api/internal/handler/dto/response"
	"vetclinic-booking-api/internal/handler/httperr"
	"vetclinic-booking-api/internal/handler/middleware"
	"vetclinic-booking-api/internal/usecase/commands"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
	policy              *schedule.Policy
}

func NewAppointmentHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
	policy *schedule.Policy,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
		policy:              policy,
	}
}

func (h *AppointmentHandler) clinicLocation() *time.Location {
	return h.policy.Location()
}

// @Summary Create appointment
// @Description Book a time slot for one of the caller's pets
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", nil)
		return
	}

	var req reqdto.CreateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid request format", bindErr)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidDate, "Appointment date must be a valid timestamp", err)
		return
	}

	view, err := h.appointmentCommands.Create(c.Request.Context(), userID, commands.CreateAppointmentParams{
		Date:   date,
		Reason: req.Reason,
		PetID:  req.PetID,
	})
	if err != nil {
		h.abortWithAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.AppointmentEnvelope{
		Message:     "Appointment created successfully",
		Appointment: resdto.FromAppointmentView(view),
	})
}

// @Summary List appointments
// @Description List the caller's appointments with optional filters
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param date query string false "Filter by calendar day (YYYY-MM-DD)"
// @Param petId query string false "Filter by pet"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (1-100, default 10)"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", nil)
		return
	}

	var query reqdto.ListAppointmentsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid query parameters", bindErr)
		return
	}

	day, err := query.ParseDay(h.clinicLocation())
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid date filter", err)
		return
	}

	page, err := h.appointmentQueries.List(c.Request.Context(), userID, queries.AppointmentFilter{
		Day:    day,
		PetID:  query.PetID,
		Status: query.Status,
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentPage(page))
}

// @Summary Update appointment
// @Description Reschedule, edit or change status of an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentRequest true "Fields to update"
// @Success 200 {object} resdto.AppointmentEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid appointment ID format", err)
		return
	}

	var req reqdto.UpdateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid request format", bindErr)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidDate, "Appointment date must be a valid timestamp", err)
		return
	}

	view, err := h.appointmentCommands.Update(c.Request.Context(), userID, id, commands.UpdateAppointmentParams{
		Date:   date,
		Reason: req.Reason,
		Status: req.Status,
	})
	if err != nil {
		h.abortWithAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AppointmentEnvelope{
		Message:     "Appointment updated successfully",
		Appointment: resdto.FromAppointmentView(view),
	})
}

// @Summary Delete appointment
// @Description Remove an appointment; confirmed ones must be cancelled first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeValidationError, "Invalid appointment ID format", err)
		return
	}

	if err := h.appointmentCommands.Delete(c.Request.Context(), userID, id); err != nil {
		h.abortWithAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Appointment deleted successfully"})
}

// @Summary Available slots
// @Description Enumerate the bookable hourly slots for a day
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailableSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments/available-slots [get]
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	var query reqdto.AvailableSlotsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil || query.Date == "" {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeDateRequired, "Date is required", bindErr)
		return
	}

	day, err := query.ParseDay(h.clinicLocation())
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeDateRequired, "Date is required", err)
		return
	}

	slots, err := h.appointmentQueries.AvailableSlots(c.Request.Context(), day)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDaySlots(slots))
}

func (h *AppointmentHandler) abortWithAppointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidDate):
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidDate, "Appointment date must be in the future", err)
	case errors.Is(err, commands.ErrOutsideBusinessHours):
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeOutsideBusinessHours, "Appointment outside business hours (Mon-Fri: 8am-6pm, Sat: 8am-12pm)", err)
	case errors.Is(err, commands.ErrPetNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodePetNotFound, "Pet not found or does not belong to user", err)
	case errors.Is(err, commands.ErrAppointmentNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodeAppointmentNotFound, "Appointment not found", err)
	case errors.Is(err, commands.ErrTimeSlotUnavailable):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeTimeSlotUnavailable, "Time slot not available", err)
	case errors.Is(err, commands.ErrCannotDeleteConfirmed):
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeCannotDeleteConfirmed, "Confirmed appointments cannot be deleted, cancel first", err)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, httperr.CodeValidationError, "Validation failed", err)
	default:
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternalError, "Internal server error", err)
	}
}
