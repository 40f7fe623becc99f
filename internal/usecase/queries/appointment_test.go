//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"vetclinic-booking-api/internal/domain/schedule"
	"vetclinic-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentReadStore struct {
	views []*queries.AppointmentView
	taken map[time.Time]uuid.UUID

	lastFilter queries.StoreFilter
	lastLimit  int32
	lastOffset int32
}

func newFakeAppointmentReadStore() *fakeAppointmentReadStore {
	return &fakeAppointmentReadStore{taken: make(map[time.Time]uuid.UUID)}
}

func (s *fakeAppointmentReadStore) FindByID(_ context.Context, id, userID uuid.UUID) (*queries.AppointmentView, error) {
	for _, v := range s.views {
		if v.ID == id && v.UserID == userID {
			return v, nil
		}
	}
	return nil, nil
}

func (s *fakeAppointmentReadStore) FindByUser(_ context.Context, userID uuid.UUID, filter queries.StoreFilter, limit, offset int32) ([]*queries.AppointmentView, error) {
	s.lastFilter = filter
	s.lastLimit = limit
	s.lastOffset = offset

	matched := s.matchingViews(userID, filter)

	if int(offset) >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if int(limit) < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *fakeAppointmentReadStore) CountByUser(_ context.Context, userID uuid.UUID, filter queries.StoreFilter) (int64, error) {
	return int64(len(s.matchingViews(userID, filter))), nil
}

func (s *fakeAppointmentReadStore) ActiveExistsAt(_ context.Context, at time.Time, excludeID *uuid.UUID) (bool, error) {
	id, ok := s.taken[at.UTC()]
	if !ok {
		return false, nil
	}
	if excludeID != nil && id == *excludeID {
		return false, nil
	}
	return true, nil
}

func (s *fakeAppointmentReadStore) matchingViews(userID uuid.UUID, filter queries.StoreFilter) []*queries.AppointmentView {
	var matched []*queries.AppointmentView
	for _, v := range s.views {
		if v.UserID != userID {
			continue
		}
		if filter.From != nil && v.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && v.Date.After(*filter.To) {
			continue
		}
		if filter.Status != nil && v.Status != *filter.Status {
			continue
		}
		matched = append(matched, v)
	}
	return matched
}

func seedViews(store *fakeAppointmentReadStore, userID uuid.UUID, n int) {
	base := time.Date(2025, 1, 13, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		store.views = append(store.views, &queries.AppointmentView{
			ID:     uuid.New(),
			Date:   base.Add(time.Duration(i) * time.Hour),
			Status: "PENDING",
			UserID: userID,
		})
	}
}

func TestListAppointments(t *testing.T) {
	policy := schedule.NewPolicy(time.UTC)
	userID := uuid.New()

	t.Run("paginates with ceiling page count", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		seedViews(store, userID, 25)
		q := queries.NewAppointmentQueries(store, policy)

		page, err := q.List(t.Context(), userID, queries.AppointmentFilter{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Len(t, page.Appointments, 10)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 10, page.Pagination.Limit)
		assert.Equal(t, int64(25), page.Pagination.Total)
		assert.Equal(t, 3, page.Pagination.Pages)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		seedViews(store, userID, 25)
		q := queries.NewAppointmentQueries(store, policy)

		page, err := q.List(t.Context(), userID, queries.AppointmentFilter{Page: 3, Limit: 10})
		require.NoError(t, err)

		assert.Len(t, page.Appointments, 5)
		assert.Equal(t, int32(20), store.lastOffset)
	})

	t.Run("zero and negative paging fall back to defaults", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		seedViews(store, userID, 3)
		q := queries.NewAppointmentQueries(store, policy)

		page, err := q.List(t.Context(), userID, queries.AppointmentFilter{Page: -1, Limit: 0})
		require.NoError(t, err)

		assert.Equal(t, queries.DefaultPage, page.Pagination.Page)
		assert.Equal(t, queries.DefaultLimit, page.Pagination.Limit)
	})

	t.Run("limit is capped", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		q := queries.NewAppointmentQueries(store, policy)

		page, err := q.List(t.Context(), userID, queries.AppointmentFilter{Page: 1, Limit: 500})
		require.NoError(t, err)

		assert.Equal(t, queries.MaxLimit, page.Pagination.Limit)
	})

	t.Run("never returns another user's rows", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		seedViews(store, userID, 2)
		seedViews(store, uuid.New(), 4)
		q := queries.NewAppointmentQueries(store, policy)

		page, err := q.List(t.Context(), userID, queries.AppointmentFilter{})
		require.NoError(t, err)

		assert.Equal(t, int64(2), page.Pagination.Total)
		for _, v := range page.Appointments {
			assert.Equal(t, userID, v.UserID)
		}
	})

	t.Run("day filter widens to the full day range", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		q := queries.NewAppointmentQueries(store, policy)

		day := time.Date(2025, 1, 13, 15, 0, 0, 0, time.UTC)
		_, err := q.List(t.Context(), userID, queries.AppointmentFilter{Day: &day})
		require.NoError(t, err)

		require.NotNil(t, store.lastFilter.From)
		require.NotNil(t, store.lastFilter.To)
		assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), *store.lastFilter.From)
		assert.Equal(t, time.Date(2025, 1, 13, 23, 59, 59, 999999999, time.UTC), *store.lastFilter.To)
	})

	t.Run("empty result still reports zero pages", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		q := queries.NewAppointmentQueries(store, policy)

		page, err := q.List(t.Context(), userID, queries.AppointmentFilter{})
		require.NoError(t, err)

		assert.Empty(t, page.Appointments)
		assert.Equal(t, int64(0), page.Pagination.Total)
		assert.Equal(t, 0, page.Pagination.Pages)
	})
}

func TestAvailableSlots(t *testing.T) {
	policy := schedule.NewPolicy(time.UTC)

	t.Run("marks taken slots on a weekday", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		day := time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC) // Friday
		store.taken[time.Date(2025, 1, 17, 10, 0, 0, 0, time.UTC)] = uuid.New()
		q := queries.NewAppointmentQueries(store, policy)

		slots, err := q.AvailableSlots(t.Context(), day)
		require.NoError(t, err)

		assert.Equal(t, "2025-01-17", slots.Date)
		require.Len(t, slots.Slots, 10)

		for _, slot := range slots.Slots {
			if slot.Time.Hour() == 10 {
				assert.False(t, slot.Available)
			} else {
				assert.True(t, slot.Available)
			}
		}
	})

	t.Run("saturday exposes only the morning grid", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		q := queries.NewAppointmentQueries(store, policy)

		slots, err := q.AvailableSlots(t.Context(), time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		require.Len(t, slots.Slots, 4)
		assert.Equal(t, 8, slots.Slots[0].Time.Hour())
		assert.Equal(t, 11, slots.Slots[3].Time.Hour())
	})

	t.Run("sunday has no slots", func(t *testing.T) {
		store := newFakeAppointmentReadStore()
		q := queries.NewAppointmentQueries(store, policy)

		slots, err := q.AvailableSlots(t.Context(), time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Equal(t, "2025-01-19", slots.Date)
		assert.Empty(t, slots.Slots)
	})
}

func TestIsSlotAvailable(t *testing.T) {
	policy := schedule.NewPolicy(time.UTC)
	store := newFakeAppointmentReadStore()
	q := queries.NewAppointmentQueries(store, policy)

	at := time.Date(2025, 1, 17, 10, 0, 0, 0, time.UTC)
	holder := uuid.New()
	store.taken[at] = holder

	free, err := q.IsSlotAvailable(t.Context(), at, nil)
	require.NoError(t, err)
	assert.False(t, free)

	free, err = q.IsSlotAvailable(t.Context(), at, &holder)
	require.NoError(t, err)
	assert.True(t, free)

	free, err = q.IsSlotAvailable(t.Context(), at.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.True(t, free)
}
