package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SalonSchedulingService/internal/domain"
)

func newSalon(t *testing.T, id, name string) *domain.Salon {
	t.Helper()
	salon, err := domain.NewSalon(id, name, domain.WorkingHours{Start: "09:00", End: "20:00"})
	require.NoError(t, err)
	return salon
}

func TestCreateSalonAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.CreateSalon(ctx, newSalon(t, "SALON-1", "У Марии"))
	require.NoError(t, err)

	t.Run("duplicate id", func(t *testing.T) {
		_, err := repo.CreateSalon(ctx, newSalon(t, "SALON-1", "Другой"))
		assert.ErrorIs(t, err, ErrDuplicateSalonID)
	})

	t.Run("by id", func(t *testing.T) {
		salon, err := repo.GetByID(ctx, "SALON-1")
		require.NoError(t, err)
		assert.Equal(t, "У Марии", salon.Name)

		_, err = repo.GetByID(ctx, "SALON-404")
		assert.ErrorIs(t, err, ErrSalonNotFound)
	})

	t.Run("by name is case insensitive", func(t *testing.T) {
		salon, err := repo.GetByName(ctx, "у марии")
		require.NoError(t, err)
		assert.Equal(t, "SALON-1", salon.ID)
	})
}

func TestCatalogMutations(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.CreateSalon(ctx, newSalon(t, "SALON-1", "У Марии"))
	require.NoError(t, err)

	require.NoError(t, repo.AddService(ctx, "SALON-1", &domain.Service{
		Name: "Стрижка", Kind: domain.KindHaircut, DurationMinutes: 60, Price: 1500,
	}))
	require.NoError(t, repo.AddStaff(ctx, "SALON-1", domain.NewStaff("STF-1", "Анна", nil)))

	t.Run("mutations against unknown salon", func(t *testing.T) {
		assert.ErrorIs(t, repo.AddService(ctx, "SALON-404", &domain.Service{
			Name: "Борода", Kind: domain.KindBeard, DurationMinutes: 30, Price: 800,
		}), ErrSalonNotFound)
		assert.ErrorIs(t, repo.AddStaff(ctx, "SALON-404", domain.NewStaff("STF-2", "Борис", nil)), ErrSalonNotFound)
	})

	t.Run("grant capability requires catalog service", func(t *testing.T) {
		assert.ErrorIs(t, repo.GrantCapability(ctx, "SALON-1", "STF-1", "Массаж"), ErrServiceNotFound)
		require.NoError(t, repo.GrantCapability(ctx, "SALON-1", "STF-1", "Стрижка"))

		staff, err := repo.GetStaff(ctx, "SALON-1", "STF-1")
		require.NoError(t, err)
		assert.True(t, staff.CanPerform("Стрижка"))
	})

	t.Run("add staff window", func(t *testing.T) {
		start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
		w, err := domain.NewTimeWindow(start, start.Add(4*time.Hour))
		require.NoError(t, err)

		require.NoError(t, repo.AddStaffWindow(ctx, "SALON-1", "STF-1", w))
		assert.ErrorIs(t, repo.AddStaffWindow(ctx, "SALON-1", "STF-1", w), domain.ErrWindowConflict)
		assert.ErrorIs(t, repo.AddStaffWindow(ctx, "SALON-1", "STF-404", w), ErrStaffNotFound)
	})

	t.Run("get service", func(t *testing.T) {
		service, err := repo.GetService(ctx, "SALON-1", "Стрижка")
		require.NoError(t, err)
		assert.Equal(t, domain.KindHaircut, service.Kind)

		_, err = repo.GetService(ctx, "SALON-1", "Массаж")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

// Выборки возвращают копии: мутации каталога не видны в ранее
// полученном снимке, а правка снимка не меняет каталог
func TestSalonSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.CreateSalon(ctx, newSalon(t, "SALON-1", "У Марии"))
	require.NoError(t, err)
	require.NoError(t, repo.AddService(ctx, "SALON-1", &domain.Service{
		Name: "Стрижка", Kind: domain.KindHaircut, DurationMinutes: 60, Price: 1500,
	}))
	require.NoError(t, repo.AddStaff(ctx, "SALON-1", domain.NewStaff("STF-1", "Анна", nil)))

	snapshot, err := repo.GetByID(ctx, "SALON-1")
	require.NoError(t, err)

	t.Run("catalog mutations do not leak into earlier snapshot", func(t *testing.T) {
		require.NoError(t, repo.GrantCapability(ctx, "SALON-1", "STF-1", "Стрижка"))

		start := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
		w, err := domain.NewTimeWindow(start, start.Add(4*time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.AddStaffWindow(ctx, "SALON-1", "STF-1", w))

		staff := snapshot.StaffByID("STF-1")
		require.NotNil(t, staff)
		assert.False(t, staff.CanPerform("Стрижка"))
		assert.Empty(t, staff.Windows())
	})

	t.Run("snapshot mutations do not leak into the catalog", func(t *testing.T) {
		snapshot.StaffByID("STF-1").GrantCapability("Массаж")
		snapshot.AddStaff(domain.NewStaff("STF-99", "Борис", nil))

		fresh, err := repo.GetByID(ctx, "SALON-1")
		require.NoError(t, err)
		assert.False(t, fresh.StaffByID("STF-1").CanPerform("Массаж"))
		assert.Nil(t, fresh.StaffByID("STF-99"))
	})
}

func TestFindSalonsWithService(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.CreateSalon(ctx, newSalon(t, "SALON-1", "У Марии"))
	require.NoError(t, err)
	_, err = repo.CreateSalon(ctx, newSalon(t, "SALON-2", "Барбершоп"))
	require.NoError(t, err)

	require.NoError(t, repo.AddService(ctx, "SALON-2", &domain.Service{
		Name: "Борода", Kind: domain.KindBeard, DurationMinutes: 30, Price: 800,
	}))

	found, err := repo.FindSalonsWithService(ctx, "Борода")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "SALON-2", found[0].ID)

	none, err := repo.FindSalonsWithService(ctx, "Массаж")
	require.NoError(t, err)
	assert.Empty(t, none)
}
