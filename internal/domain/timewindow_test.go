package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end time.Time) TimeWindow {
	t.Helper()
	w, err := NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func TestNewTimeWindow(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		w, err := NewTimeWindow(at(10, 0), at(11, 0))
		require.NoError(t, err)
		assert.Equal(t, at(10, 0), w.Start())
		assert.Equal(t, at(11, 0), w.End())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := NewTimeWindow(at(10, 0), at(10, 0))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := NewTimeWindow(at(11, 0), at(10, 0))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

// TestTimeWindowConflictsWith проверяет строгое (открытое) пересечение:
// окна, соприкасающиеся границами, не конфликтуют
func TestTimeWindowConflictsWith(t *testing.T) {
	tests := []struct {
		name     string
		a        [2]time.Time
		b        [2]time.Time
		conflict bool
	}{
		{
			name:     "partial overlap",
			a:        [2]time.Time{at(10, 0), at(11, 0)},
			b:        [2]time.Time{at(10, 30), at(11, 30)},
			conflict: true,
		},
		{
			name:     "full containment",
			a:        [2]time.Time{at(9, 0), at(12, 0)},
			b:        [2]time.Time{at(10, 0), at(11, 0)},
			conflict: true,
		},
		{
			name:     "identical windows",
			a:        [2]time.Time{at(10, 0), at(11, 0)},
			b:        [2]time.Time{at(10, 0), at(11, 0)},
			conflict: true,
		},
		{
			name:     "back to back windows do not conflict",
			a:        [2]time.Time{at(10, 0), at(11, 0)},
			b:        [2]time.Time{at(11, 0), at(12, 0)},
			conflict: false,
		},
		{
			name:     "disjoint windows",
			a:        [2]time.Time{at(10, 0), at(11, 0)},
			b:        [2]time.Time{at(13, 0), at(14, 0)},
			conflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustWindow(t, tt.a[0], tt.a[1])
			b := mustWindow(t, tt.b[0], tt.b[1])

			// Пересечение симметрично
			assert.Equal(t, tt.conflict, a.ConflictsWith(b))
			assert.Equal(t, tt.conflict, b.ConflictsWith(a))
		})
	}
}

// TestTimeWindowContains проверяет нестрогое вхождение: обе границы включительно
func TestTimeWindowContains(t *testing.T) {
	w := mustWindow(t, at(10, 0), at(12, 0))

	assert.True(t, w.Contains(at(10, 0)), "start boundary is inclusive")
	assert.True(t, w.Contains(at(12, 0)), "end boundary is inclusive")
	assert.True(t, w.Contains(at(11, 0)))
	assert.False(t, w.Contains(at(9, 59)))
	assert.False(t, w.Contains(at(12, 1)))
}

func TestTimeWindowFullyContains(t *testing.T) {
	outer := mustWindow(t, at(9, 0), at(18, 0))

	tests := []struct {
		name      string
		inner     [2]time.Time
		contained bool
	}{
		{"strictly inside", [2]time.Time{at(10, 0), at(11, 0)}, true},
		{"same boundaries", [2]time.Time{at(9, 0), at(18, 0)}, true},
		{"ends exactly at boundary", [2]time.Time{at(17, 0), at(18, 0)}, true},
		{"starts exactly at boundary", [2]time.Time{at(9, 0), at(10, 0)}, true},
		{"spills over the end", [2]time.Time{at(17, 30), at(18, 30)}, false},
		{"starts before the window", [2]time.Time{at(8, 30), at(9, 30)}, false},
		{"fully outside", [2]time.Time{at(19, 0), at(20, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := mustWindow(t, tt.inner[0], tt.inner[1])
			assert.Equal(t, tt.contained, outer.FullyContains(inner))
		})
	}
}

// Окна, соприкасающиеся границами, не пересекаются, но граница
// принадлежит обоим окнам при проверке вхождения момента
func TestTimeWindowBoundarySemantics(t *testing.T) {
	a := mustWindow(t, at(10, 0), at(11, 0))
	b := mustWindow(t, at(11, 0), at(12, 0))

	assert.False(t, a.ConflictsWith(b))
	assert.True(t, a.Contains(at(11, 0)))
	assert.True(t, b.Contains(at(11, 0)))
}
