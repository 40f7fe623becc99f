//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"vetclinic-booking-api/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDate = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	testNow  = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

func TestNew(t *testing.T) {
	petID := uuid.New()
	userID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := appointment.New(testDate, "Annual checkup", petID, userID, testNow)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, testDate, actual.Date())
		assert.Equal(t, "Annual checkup", actual.Reason().String())
		assert.Equal(t, appointment.StatusPending, actual.Status())
		assert.Equal(t, petID, actual.PetID())
		assert.Equal(t, userID, actual.UserID())
		assert.Equal(t, testNow, actual.CreatedAt())
		assert.Equal(t, testNow, actual.UpdatedAt())
	})

	t.Run("missing pet", func(t *testing.T) {
		_, err := appointment.New(testDate, "Annual checkup", uuid.Nil, userID, testNow)
		assert.ErrorIs(t, err, appointment.ErrMissingPet)
	})

	t.Run("reason validation", func(t *testing.T) {
		tests := []struct {
			name   string
			reason string
			errIs  error
		}{
			{
				name:   "empty reason",
				reason: "",
				errIs:  appointment.ErrEmptyReason,
			},
			{
				name:   "whitespace only reason",
				reason: "   ",
				errIs:  appointment.ErrEmptyReason,
			},
			{
				name:   "below minimum length",
				reason: "abcd",
				errIs:  appointment.ErrReasonTooShort,
			},
			{
				name:   "minimum valid length",
				reason: "abcde",
			},
			{
				name:   "maximum valid length",
				reason: strings.Repeat("a", appointment.MaxReasonLength),
			},
			{
				name:   "exceeds maximum length",
				reason: strings.Repeat("a", appointment.MaxReasonLength+1),
				errIs:  appointment.ErrReasonTooLong,
			},
			{
				name:   "surrounding whitespace is trimmed",
				reason: "  Annual checkup  ",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				actual, err := appointment.New(testDate, tt.reason, petID, userID, testNow)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tt.reason), actual.Reason().String())
			})
		}
	})
}

func TestChangeStatus(t *testing.T) {
	appt := mustAppointment(t)

	for _, status := range []appointment.Status{
		appointment.StatusPending,
		appointment.StatusConfirmed,
		appointment.StatusCancelled,
		appointment.StatusCompleted,
	} {
		require.NoError(t, appt.ChangeStatus(status))
		assert.Equal(t, status, appt.Status())
	}

	assert.ErrorIs(t, appt.ChangeStatus(appointment.Status("ARCHIVED")), appointment.ErrInvalidStatus)
}

func TestEnsureDeletable(t *testing.T) {
	tests := []struct {
		name   string
		status appointment.Status
		errIs  error
	}{
		{name: "pending is deletable", status: appointment.StatusPending},
		{name: "cancelled is deletable", status: appointment.StatusCancelled},
		{name: "completed is deletable", status: appointment.StatusCompleted},
		{name: "confirmed is not", status: appointment.StatusConfirmed, errIs: appointment.ErrDeleteConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := mustAppointment(t)
			require.NoError(t, appt.ChangeStatus(tt.status))

			err := appt.EnsureDeletable()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReschedule(t *testing.T) {
	appt := mustAppointment(t)

	next := time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)
	appt.Reschedule(next)
	assert.Equal(t, next, appt.Date())
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, appointment.StatusPending.IsActive())
	assert.True(t, appointment.StatusConfirmed.IsActive())
	assert.False(t, appointment.StatusCancelled.IsActive())
	assert.False(t, appointment.StatusCompleted.IsActive())
}

func mustAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	appt, err := appointment.New(testDate, "Annual checkup", uuid.New(), uuid.New(), testNow)
	require.NoError(t, err)
	return appt
}
