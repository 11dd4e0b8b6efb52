package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SalonSchedulingService/pkg/ptr"
)

func TestLedgerFilterMatches(t *testing.T) {
	b := &Booking{
		ID:         "APT-1",
		SalonID:    "SALON-1",
		StaffID:    "STF-1",
		CustomerID: "CUS-1",
		Status:     StatusApproved,
		StartTime:  at(10, 0),
	}

	tests := []struct {
		name   string
		filter LedgerFilter
		want   bool
	}{
		{"empty filter matches everything", LedgerFilter{}, true},
		{"matching staff", LedgerFilter{StaffID: ptr.Ptr("STF-1")}, true},
		{"other staff", LedgerFilter{StaffID: ptr.Ptr("STF-2")}, false},
		{"matching salon and customer", LedgerFilter{SalonID: ptr.Ptr("SALON-1"), CustomerID: ptr.Ptr("CUS-1")}, true},
		{"matching status", LedgerFilter{Status: ptr.Ptr(StatusApproved)}, true},
		{"other status", LedgerFilter{Status: ptr.Ptr(StatusRequested)}, false},
		{"same calendar day", LedgerFilter{Date: ptr.Ptr(at(23, 59))}, true},
		{"other day", LedgerFilter{Date: ptr.Ptr(at(10, 0).AddDate(0, 0, 1))}, false},
		{"combined mismatch", LedgerFilter{StaffID: ptr.Ptr("STF-1"), Status: ptr.Ptr(StatusCancelled)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(b))
		})
	}
}

// OnlyActive отбрасывает только отклоненные и отмененные бронирования:
// завершенные продолжают занимать слот мастера
func TestLedgerFilterOnlyActive(t *testing.T) {
	filter := LedgerFilter{OnlyActive: true}

	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusRequested, true},
		{StatusApproved, true},
		{StatusCompleted, true},
		{StatusRejected, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Matches(&Booking{Status: tt.status, StartTime: time.Now()}))
		})
	}
}
