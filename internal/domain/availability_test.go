package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityAddWindow(t *testing.T) {
	t.Run("disjoint windows are accepted", func(t *testing.T) {
		var a Availability

		require.NoError(t, a.AddWindow(mustWindow(t, at(9, 0), at(12, 0))))
		require.NoError(t, a.AddWindow(mustWindow(t, at(13, 0), at(17, 0))))
		assert.Equal(t, 2, a.Len())
	})

	t.Run("overlapping window is rejected", func(t *testing.T) {
		var a Availability

		require.NoError(t, a.AddWindow(mustWindow(t, at(9, 0), at(12, 0))))
		err := a.AddWindow(mustWindow(t, at(11, 0), at(14, 0)))
		assert.ErrorIs(t, err, ErrWindowConflict)
		assert.Equal(t, 1, a.Len(), "rejected window must not be stored")
	})

	t.Run("back to back windows are accepted and not merged", func(t *testing.T) {
		var a Availability

		require.NoError(t, a.AddWindow(mustWindow(t, at(9, 0), at(12, 0))))
		require.NoError(t, a.AddWindow(mustWindow(t, at(12, 0), at(15, 0))))
		assert.Equal(t, 2, a.Len())
	})
}

func TestAvailabilityAnyWindowContaining(t *testing.T) {
	var a Availability
	require.NoError(t, a.AddWindow(mustWindow(t, at(9, 0), at(12, 0))))
	require.NoError(t, a.AddWindow(mustWindow(t, at(13, 0), at(17, 0))))

	tests := []struct {
		name      string
		query     [2]time.Time
		contained bool
	}{
		{"inside the first window", [2]time.Time{at(10, 0), at(11, 0)}, true},
		{"exactly the second window", [2]time.Time{at(13, 0), at(17, 0)}, true},
		{"ends at window boundary", [2]time.Time{at(11, 0), at(12, 0)}, true},
		{"spans the gap between windows", [2]time.Time{at(11, 0), at(14, 0)}, false},
		{"entirely in the gap", [2]time.Time{at(12, 15), at(12, 45)}, false},
		{"before all windows", [2]time.Time{at(7, 0), at(8, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mustWindow(t, tt.query[0], tt.query[1])
			assert.Equal(t, tt.contained, a.AnyWindowContaining(q))
		})
	}
}

// Окна, вместе покрывающие интервал, не содержат его по отдельности:
// реестр не склеивает соседние окна
func TestAvailabilityNoWindowMerging(t *testing.T) {
	var a Availability
	require.NoError(t, a.AddWindow(mustWindow(t, at(9, 0), at(12, 0))))
	require.NoError(t, a.AddWindow(mustWindow(t, at(12, 0), at(15, 0))))

	spanning := mustWindow(t, at(11, 0), at(13, 0))
	assert.False(t, a.AnyWindowContaining(spanning))
}

func TestAvailabilityWindowsReturnsCopy(t *testing.T) {
	var a Availability
	require.NoError(t, a.AddWindow(mustWindow(t, at(9, 0), at(12, 0))))

	got := a.Windows()
	require.Len(t, got, 1)

	got[0] = mustWindow(t, at(20, 0), at(21, 0))
	assert.Equal(t, at(9, 0), a.Windows()[0].Start(), "mutating the copy must not affect the registry")
}
