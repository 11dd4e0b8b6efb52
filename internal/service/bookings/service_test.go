package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonSchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SalonSchedulingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{}) {}
func (noopLogger) Error(string, ...interface{}) {}

// gaugeRecorder запоминает последние значения gauge по статусам
type gaugeRecorder struct {
	byStatus map[string]int
}

func (g *gaugeRecorder) SetBookingsByStatus(status string, count int) {
	if g.byStatus == nil {
		g.byStatus = make(map[string]int)
	}
	g.byStatus[status] = count
}

func day(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func newService(t *testing.T) (*Service, *bookingRepo.Repository, *gaugeRecorder) {
	t.Helper()
	repo := bookingRepo.NewRepository()
	gauges := &gaugeRecorder{}
	return NewService(repo, gauges, noopLogger{}), repo, gauges
}

func seed(t *testing.T, repo *bookingRepo.Repository, id, staffID, customerID string, status domain.BookingStatus, start time.Time) {
	t.Helper()
	_, err := repo.Create(context.Background(), &domain.Booking{
		ID:              id,
		SalonID:         "SALON-1",
		StaffID:         staffID,
		CustomerID:      customerID,
		ServiceName:     "Стрижка",
		DurationMinutes: 60,
		StartTime:       start,
		Status:          status,
	})
	require.NoError(t, err)
}

func TestServiceApprove(t *testing.T) {
	svc, repo, gauges := newService(t)
	ctx := context.Background()
	seed(t, repo, "APT-1", "STF-1", "CUS-1", domain.StatusRequested, day(10, 0))

	resp, err := svc.Approve(ctx, "APT-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)

	// Gauge статусов пересчитан после перехода
	assert.Equal(t, 1, gauges.byStatus["approved"])
	assert.Equal(t, 0, gauges.byStatus["requested"])

	t.Run("double approve", func(t *testing.T) {
		_, err := svc.Approve(ctx, "APT-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.Approve(ctx, "APT-404")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestServiceReject(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()
	seed(t, repo, "APT-1", "STF-1", "CUS-1", domain.StatusRequested, day(10, 0))

	t.Run("empty reason is rejected upfront", func(t *testing.T) {
		_, err := svc.Reject(ctx, "APT-1", "")
		assert.ErrorIs(t, err, ErrEmptyReason)
	})

	t.Run("reason is stored", func(t *testing.T) {
		resp, err := svc.Reject(ctx, "APT-1", "мастер заболел")
		require.NoError(t, err)
		assert.Equal(t, "rejected", resp.Status)
		require.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "мастер заболел", *resp.RejectionReason)
	})

	t.Run("rejected booking cannot be approved", func(t *testing.T) {
		_, err := svc.Approve(ctx, "APT-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

// Жизненный цикл: requested -> approved -> completed,
// завершенное бронирование отменить нельзя
func TestServiceCompleteLifecycle(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()
	seed(t, repo, "APT-1", "STF-1", "CUS-1", domain.StatusRequested, day(10, 0))

	_, err := svc.Complete(ctx, "APT-1")
	assert.ErrorIs(t, err, ErrInvalidTransition, "requested booking cannot complete")

	_, err = svc.Approve(ctx, "APT-1")
	require.NoError(t, err)

	resp, err := svc.Complete(ctx, "APT-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	_, err = svc.Cancel(ctx, "APT-1")
	assert.ErrorIs(t, err, ErrInvalidTransition, "completed booking cannot be cancelled")
}

func TestServiceCancel(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()
	seed(t, repo, "APT-1", "STF-1", "CUS-1", domain.StatusRequested, day(10, 0))
	seed(t, repo, "APT-2", "STF-1", "CUS-1", domain.StatusApproved, day(12, 0))

	for _, id := range []string{"APT-1", "APT-2"} {
		resp, err := svc.Cancel(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	}
}

func TestServiceQueries(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	otherDay := day(10, 0).AddDate(0, 0, 1)
	seed(t, repo, "APT-1", "STF-1", "CUS-1", domain.StatusRequested, day(10, 0))
	seed(t, repo, "APT-2", "STF-2", "CUS-1", domain.StatusApproved, day(12, 0))
	seed(t, repo, "APT-3", "STF-1", "CUS-2", domain.StatusCancelled, day(14, 0))
	seed(t, repo, "APT-4", "STF-1", "CUS-1", domain.StatusRequested, otherDay)

	t.Run("by customer includes inactive bookings", func(t *testing.T) {
		resp, err := svc.ListByCustomer(ctx, "CUS-1")
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
	})

	t.Run("by staff", func(t *testing.T) {
		resp, err := svc.ListByStaff(ctx, "STF-1")
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
	})

	t.Run("by status", func(t *testing.T) {
		resp, err := svc.ListByStatus(ctx, "requested")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.ListByStatus(ctx, "pending")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("by date", func(t *testing.T) {
		resp, err := svc.ListByDate(ctx, day(23, 59))
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Total)
	})

	t.Run("by salon with status and date", func(t *testing.T) {
		resp, err := svc.ListBySalon(ctx, "SALON-1", ptr.Ptr("requested"), ptr.Ptr(day(0, 0)))
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "APT-1", resp.Bookings[0].ID)
	})

	t.Run("generic list without filters", func(t *testing.T) {
		resp, err := svc.List(ctx, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 4, resp.Total)
	})

	t.Run("get by id", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, "APT-2")
		require.NoError(t, err)
		assert.Equal(t, "approved", resp.Status)

		_, err = svc.GetByID(ctx, "APT-404")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestServiceCounts(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	seed(t, repo, "APT-1", "STF-1", "CUS-1", domain.StatusRequested, day(10, 0))
	seed(t, repo, "APT-2", "STF-1", "CUS-1", domain.StatusRequested, day(12, 0))
	seed(t, repo, "APT-3", "STF-1", "CUS-1", domain.StatusCompleted, day(14, 0))

	total, err := svc.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	pending, err := svc.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)
}
