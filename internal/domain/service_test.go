package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceValidate(t *testing.T) {
	tests := []struct {
		name    string
		service Service
		wantErr error
	}{
		{
			name:    "valid haircut",
			service: Service{Name: "Стрижка", Kind: KindHaircut, DurationMinutes: 45, Price: 1200},
		},
		{
			name:    "empty name",
			service: Service{Kind: KindHaircut, DurationMinutes: 45, Price: 1200},
			wantErr: ErrEmptyServiceName,
		},
		{
			name:    "zero duration",
			service: Service{Name: "Стрижка", Kind: KindHaircut, Price: 1200},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "negative price",
			service: Service{Name: "Стрижка", Kind: KindHaircut, DurationMinutes: 45, Price: -1},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "unknown kind",
			service: Service{Name: "Массаж", Kind: "massage", DurationMinutes: 45, Price: 1200},
			wantErr: ErrUnknownServiceKind,
		},
		{
			name:    "free service is allowed",
			service: Service{Name: "Консультация", Kind: KindColoring, DurationMinutes: 15, Price: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.service.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceDescription(t *testing.T) {
	t.Run("haircut mentions type", func(t *testing.T) {
		s := Service{Name: "Fade", Kind: KindHaircut, DurationMinutes: 45, Price: 1200, HaircutType: "fade"}
		assert.Contains(t, s.Description(), "Haircut Service")
		assert.Contains(t, s.Description(), "fade")
	})

	t.Run("beard reflects trim flag", func(t *testing.T) {
		withTrim := Service{Name: "Борода", Kind: KindBeard, DurationMinutes: 30, Price: 800, IncludesTrim: true}
		without := Service{Name: "Борода", Kind: KindBeard, DurationMinutes: 30, Price: 800}

		assert.Contains(t, withTrim.Description(), "with trim")
		assert.Contains(t, without.Description(), "styling only")
	})

	t.Run("coloring mentions consultation", func(t *testing.T) {
		s := Service{Name: "Балаяж", Kind: KindColoring, DurationMinutes: 120, Price: 5000,
			ColorType: "balayage", RequiresConsultation: true}
		assert.Contains(t, s.Description(), "consultation required")
	})
}

func TestServiceIncludesWash(t *testing.T) {
	assert.True(t, (&Service{Kind: KindHaircut, DurationMinutes: 30}).IncludesWash())
	assert.True(t, (&Service{Kind: KindHaircut, DurationMinutes: 60}).IncludesWash())
	assert.False(t, (&Service{Kind: KindHaircut, DurationMinutes: 20}).IncludesWash())
	assert.False(t, (&Service{Kind: KindBeard, DurationMinutes: 60}).IncludesWash())
}

func TestServiceRequiresSpecialTools(t *testing.T) {
	assert.True(t, (&Service{Kind: KindBeard, IncludesTrim: true}).RequiresSpecialTools())
	assert.False(t, (&Service{Kind: KindBeard}).RequiresSpecialTools())
	assert.False(t, (&Service{Kind: KindHaircut, IncludesTrim: true}).RequiresSpecialTools())
}

func TestServiceEstimatedChemicalCost(t *testing.T) {
	tests := []struct {
		name      string
		kind      ServiceKind
		colorType string
		want      float64
	}{
		{"highlights cost more", KindColoring, "Highlights", 50},
		{"partial highlights match", KindColoring, "partial highlights", 50},
		{"plain coloring", KindColoring, "full color", 30},
		{"non-coloring has no chemicals", KindHaircut, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Service{Kind: tt.kind, ColorType: tt.colorType}
			assert.Equal(t, tt.want, s.EstimatedChemicalCost())
		})
	}
}
