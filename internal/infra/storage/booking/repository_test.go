package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
	"github.com/m04kA/SalonSchedulingService/pkg/ptr"
)

func seedBooking(id, staffID string, status domain.BookingStatus, start time.Time) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		SalonID:         "SALON-1",
		StaffID:         staffID,
		CustomerID:      "CUS-1",
		ServiceName:     "Стрижка",
		DurationMinutes: 60,
		StartTime:       start,
		Status:          status,
	}
}

func TestRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	b := seedBooking("APT-1", "STF-1", domain.StatusRequested, time.Now())
	created, err := repo.Create(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "APT-1", created.ID)

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, seedBooking("APT-1", "STF-2", domain.StatusRequested, time.Now()))
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
}

func TestRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, seedBooking("APT-1", "STF-1", domain.StatusRequested, time.Now()))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "APT-1")
		require.NoError(t, err)
		assert.Equal(t, "APT-1", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "APT-404")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("returned copy does not leak internal state", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "APT-1")
		require.NoError(t, err)

		got.Status = domain.StatusCancelled

		again, err := repo.GetByID(ctx, "APT-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRequested, again.Status)
	})
}

func TestRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	day := time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	for _, b := range []*domain.Booking{
		seedBooking("APT-1", "STF-1", domain.StatusRequested, day),
		seedBooking("APT-2", "STF-1", domain.StatusCancelled, day.Add(time.Hour)),
		seedBooking("APT-3", "STF-2", domain.StatusApproved, day.Add(2*time.Hour)),
		seedBooking("APT-4", "STF-1", domain.StatusCompleted, nextDay),
	} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	t.Run("insertion order is preserved", func(t *testing.T) {
		all, err := repo.List(ctx, domain.LedgerFilter{})
		require.NoError(t, err)
		require.Len(t, all, 4)

		ids := []string{all[0].ID, all[1].ID, all[2].ID, all[3].ID}
		assert.Equal(t, []string{"APT-1", "APT-2", "APT-3", "APT-4"}, ids)
	})

	t.Run("filter by staff keeps cancelled bookings", func(t *testing.T) {
		got, err := repo.List(ctx, domain.LedgerFilter{StaffID: ptr.Ptr("STF-1")})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("only active excludes cancelled", func(t *testing.T) {
		got, err := repo.List(ctx, domain.LedgerFilter{StaffID: ptr.Ptr("STF-1"), OnlyActive: true})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "APT-1", got[0].ID)
		assert.Equal(t, "APT-4", got[1].ID)
	})

	t.Run("filter by date uses the calendar day", func(t *testing.T) {
		got, err := repo.List(ctx, domain.LedgerFilter{Date: ptr.Ptr(day)})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		got, err := repo.List(ctx, domain.LedgerFilter{Status: ptr.Ptr(domain.StatusApproved)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "APT-3", got[0].ID)
	})
}

func TestRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, seedBooking("APT-1", "STF-1", domain.StatusRequested, time.Now()))
	require.NoError(t, err)

	t.Run("mutation is applied to the authoritative copy", func(t *testing.T) {
		updated, err := repo.Update(ctx, "APT-1", func(b *domain.Booking) error {
			return b.Approve()
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, updated.Status)

		got, err := repo.GetByID(ctx, "APT-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, got.Status)
	})

	t.Run("failed mutation leaves state unchanged", func(t *testing.T) {
		_, err := repo.Update(ctx, "APT-1", func(b *domain.Booking) error {
			return b.Approve() // уже approved
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		got, err := repo.GetByID(ctx, "APT-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, got.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.Update(ctx, "APT-404", func(b *domain.Booking) error { return nil })
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestRepositoryCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	for _, b := range []*domain.Booking{
		seedBooking("APT-1", "STF-1", domain.StatusRequested, time.Now()),
		seedBooking("APT-2", "STF-1", domain.StatusRequested, time.Now()),
		seedBooking("APT-3", "STF-2", domain.StatusCompleted, time.Now()),
	} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	pending, err := repo.CountByStatus(ctx, domain.StatusRequested)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)
}
