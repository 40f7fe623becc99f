//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vetclinic-booking-api/internal/domain/schedule"
	"vetclinic-booking-api/internal/handler/api"
	"vetclinic-booking-api/internal/usecase/commands"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppointmentCommands struct {
	createView *queries.AppointmentView
	createErr  error
	updateView *queries.AppointmentView
	updateErr  error
	deleteErr  error
}

func (s *stubAppointmentCommands) Create(_ context.Context, _ uuid.UUID, _ commands.CreateAppointmentParams) (*queries.AppointmentView, error) {
	return s.createView, s.createErr
}

func (s *stubAppointmentCommands) Update(_ context.Context, _, _ uuid.UUID, _ commands.UpdateAppointmentParams) (*queries.AppointmentView, error) {
	return s.updateView, s.updateErr
}

func (s *stubAppointmentCommands) Delete(_ context.Context, _, _ uuid.UUID) error {
	return s.deleteErr
}

type stubAppointmentQueries struct {
	page  *queries.AppointmentPage
	slots *queries.DaySlots
	err   error
}

func (s *stubAppointmentQueries) List(_ context.Context, _ uuid.UUID, _ queries.AppointmentFilter) (*queries.AppointmentPage, error) {
	return s.page, s.err
}

func (s *stubAppointmentQueries) AvailableSlots(_ context.Context, _ time.Time) (*queries.DaySlots, error) {
	return s.slots, s.err
}

func (s *stubAppointmentQueries) IsSlotAvailable(_ context.Context, _ time.Time, _ *uuid.UUID) (bool, error) {
	return true, s.err
}

type errBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func newAppointmentRouter(cmds commands.AppointmentCommands, qs queries.AppointmentQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := api.NewAppointmentHandler(cmds, qs, schedule.NewPolicy(time.UTC))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Next()
	})

	router.POST("/appointments", handler.Create)
	router.GET("/appointments", handler.List)
	router.PUT("/appointments/:id", handler.Update)
	router.DELETE("/appointments/:id", handler.Delete)
	router.GET("/appointments/available-slots", handler.AvailableSlots)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errBody {
	t.Helper()
	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateAppointmentHandler(t *testing.T) {
	validBody := `{"date":"2025-01-17T10:00:00Z","reason":"Annual checkup","petId":"` + uuid.NewString() + `"}`

	t.Run("returns the created appointment in an envelope", func(t *testing.T) {
		view := &queries.AppointmentView{
			ID:     uuid.New(),
			Date:   time.Date(2025, 1, 17, 10, 0, 0, 0, time.UTC),
			Reason: "Annual checkup",
			Status: "PENDING",
		}
		router := newAppointmentRouter(&stubAppointmentCommands{createView: view}, &stubAppointmentQueries{})

		rec := performJSON(t, router, http.MethodPost, "/appointments", validBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Message     string `json:"message"`
			Appointment struct {
				ID     uuid.UUID `json:"id"`
				Status string    `json:"status"`
			} `json:"appointment"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Appointment created successfully", body.Message)
		assert.Equal(t, view.ID, body.Appointment.ID)
		assert.Equal(t, "PENDING", body.Appointment.Status)
	})

	t.Run("unparseable date", func(t *testing.T) {
		router := newAppointmentRouter(&stubAppointmentCommands{}, &stubAppointmentQueries{})

		body := `{"date":"tomorrow","reason":"Annual checkup","petId":"` + uuid.NewString() + `"}`
		rec := performJSON(t, router, http.MethodPost, "/appointments", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_DATE", decodeError(t, rec).Code)
	})

	t.Run("error code mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{"past date", commands.ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
			{"outside business hours", commands.ErrOutsideBusinessHours, http.StatusBadRequest, "OUTSIDE_BUSINESS_HOURS"},
			{"pet not found", commands.ErrPetNotFound, http.StatusNotFound, "PET_NOT_FOUND"},
			{"slot taken", commands.ErrTimeSlotUnavailable, http.StatusConflict, "TIME_SLOT_UNAVAILABLE"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				router := newAppointmentRouter(&stubAppointmentCommands{createErr: tt.err}, &stubAppointmentQueries{})

				rec := performJSON(t, router, http.MethodPost, "/appointments", validBody)
				assert.Equal(t, tt.wantStatus, rec.Code)
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			})
		}
	})
}

func TestDeleteAppointmentHandler(t *testing.T) {
	t.Run("confirmed appointments are refused", func(t *testing.T) {
		router := newAppointmentRouter(&stubAppointmentCommands{deleteErr: commands.ErrCannotDeleteConfirmed}, &stubAppointmentQueries{})

		rec := performJSON(t, router, http.MethodDelete, "/appointments/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "CANNOT_DELETE_CONFIRMED", decodeError(t, rec).Code)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		router := newAppointmentRouter(&stubAppointmentCommands{deleteErr: commands.ErrAppointmentNotFound}, &stubAppointmentQueries{})

		rec := performJSON(t, router, http.MethodDelete, "/appointments/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "APPOINTMENT_NOT_FOUND", decodeError(t, rec).Code)
	})

	t.Run("success returns a message", func(t *testing.T) {
		router := newAppointmentRouter(&stubAppointmentCommands{}, &stubAppointmentQueries{})

		rec := performJSON(t, router, http.MethodDelete, "/appointments/"+uuid.NewString(), "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Appointment deleted successfully", body.Message)
	})
}

func TestAvailableSlotsHandler(t *testing.T) {
	t.Run("missing date", func(t *testing.T) {
		router := newAppointmentRouter(&stubAppointmentCommands{}, &stubAppointmentQueries{})

		rec := performJSON(t, router, http.MethodGet, "/appointments/available-slots", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DATE_REQUIRED", decodeError(t, rec).Code)
	})

	t.Run("unparseable date", func(t *testing.T) {
		router := newAppointmentRouter(&stubAppointmentCommands{}, &stubAppointmentQueries{})

		rec := performJSON(t, router, http.MethodGet, "/appointments/available-slots?date=someday", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DATE_REQUIRED", decodeError(t, rec).Code)
	})

	t.Run("returns the annotated grid", func(t *testing.T) {
		slots := &queries.DaySlots{
			Date: "2025-01-17",
			Slots: []queries.Slot{
				{Time: time.Date(2025, 1, 17, 8, 0, 0, 0, time.UTC), Available: true},
				{Time: time.Date(2025, 1, 17, 9, 0, 0, 0, time.UTC), Available: false},
			},
		}
		router := newAppointmentRouter(&stubAppointmentCommands{}, &stubAppointmentQueries{slots: slots})

		rec := performJSON(t, router, http.MethodGet, "/appointments/available-slots?date=2025-01-17", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Date  string `json:"date"`
			Slots []struct {
				Available bool `json:"available"`
			} `json:"slots"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "2025-01-17", body.Date)
		require.Len(t, body.Slots, 2)
		assert.True(t, body.Slots[0].Available)
		assert.False(t, body.Slots[1].Available)
	})
}

func TestListAppointmentsHandler(t *testing.T) {
	page := &queries.AppointmentPage{
		Appointments: []*queries.AppointmentView{
			{ID: uuid.New(), Status: "PENDING"},
		},
		Pagination: queries.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1},
	}
	router := newAppointmentRouter(&stubAppointmentCommands{}, &stubAppointmentQueries{page: page})

	rec := performJSON(t, router, http.MethodGet, "/appointments?page=1&limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Appointments []json.RawMessage `json:"appointments"`
		Pagination   struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
			Pages int   `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Appointments, 1)
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, int64(1), body.Pagination.Total)
	assert.Equal(t, 1, body.Pagination.Pages)
}
