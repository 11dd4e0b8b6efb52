package get_available_staff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SalonSchedulingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SalonSchedulingService/internal/infra/storage/catalog"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{}) {}
func (noopLogger) Error(string, ...interface{}) {}

func day(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

// newFixture поднимает салон с услугой "Стрижка" (60 мин)
// и двумя умеющими мастерами с окном 09:00-18:00
func newFixture(t *testing.T) (*UseCase, *bookingRepo.Repository) {
	t.Helper()
	ctx := context.Background()

	catalog := catalogRepo.NewRepository()
	bookings := bookingRepo.NewRepository()

	salon, err := domain.NewSalon("SALON-1", "У Марии", domain.WorkingHours{})
	require.NoError(t, err)
	_, err = catalog.CreateSalon(ctx, salon)
	require.NoError(t, err)

	require.NoError(t, catalog.AddService(ctx, "SALON-1", &domain.Service{
		Name:            "Стрижка",
		Kind:            domain.KindHaircut,
		DurationMinutes: 60,
		Price:           1500,
	}))

	window, err := domain.NewTimeWindow(day(9, 0), day(18, 0))
	require.NoError(t, err)

	for _, id := range []string{"STF-1", "STF-2"} {
		staff := domain.NewStaff(id, "Мастер "+id, nil)
		require.NoError(t, catalog.AddStaff(ctx, "SALON-1", staff))
		require.NoError(t, catalog.GrantCapability(ctx, "SALON-1", id, "Стрижка"))
		require.NoError(t, catalog.AddStaffWindow(ctx, "SALON-1", id, window))
	}

	return NewUseCase(catalog, bookings, noopLogger{}), bookings
}

func staffIDs(resp *Response) []string {
	out := make([]string, 0, len(resp.Staff))
	for _, s := range resp.Staff {
		out = append(out, s.ID)
	}
	return out
}

func TestExecuteReturnsFreeStaff(t *testing.T) {
	uc, _ := newFixture(t)

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:     "SALON-1",
		ServiceName: "Стрижка",
		At:          day(10, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	assert.ElementsMatch(t, []string{"STF-1", "STF-2"}, staffIDs(resp))
}

func TestExecuteExcludesBookedStaff(t *testing.T) {
	uc, bookings := newFixture(t)
	ctx := context.Background()

	// STF-1 занят с 10:00 до 11:00
	_, err := bookings.Create(ctx, &domain.Booking{
		ID:              "APT-1",
		SalonID:         "SALON-1",
		StaffID:         "STF-1",
		CustomerID:      "CUS-1",
		DurationMinutes: 60,
		StartTime:       day(10, 0),
		Status:          domain.StatusApproved,
	})
	require.NoError(t, err)

	t.Run("overlapping moment", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{SalonID: "SALON-1", ServiceName: "Стрижка", At: day(10, 30)})
		require.NoError(t, err)
		assert.Equal(t, []string{"STF-2"}, staffIDs(resp))
	})

	t.Run("back to back is free", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{SalonID: "SALON-1", ServiceName: "Стрижка", At: day(11, 0)})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"STF-1", "STF-2"}, staffIDs(resp))
	})

	t.Run("cancelled booking frees the staff", func(t *testing.T) {
		_, err := bookings.Update(ctx, "APT-1", func(b *domain.Booking) error {
			return b.Cancel()
		})
		require.NoError(t, err)

		resp, err := uc.Execute(ctx, &Request{SalonID: "SALON-1", ServiceName: "Стрижка", At: day(10, 30)})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"STF-1", "STF-2"}, staffIDs(resp))
	})
}

func TestExecuteOutsideWindows(t *testing.T) {
	uc, _ := newFixture(t)

	// Интервал вылезает за окно доступности обоих мастеров
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:     "SALON-1",
		ServiceName: "Стрижка",
		At:          day(17, 30),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Staff)
}

func TestExecuteErrors(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	t.Run("unknown salon", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{SalonID: "SALON-404", ServiceName: "Стрижка", At: day(10, 0)})
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{SalonID: "SALON-1", ServiceName: "Массаж", At: day(10, 0)})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
