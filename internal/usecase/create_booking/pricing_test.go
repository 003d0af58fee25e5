package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePrice(t *testing.T) {
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		priceHour int64
		duration  time.Duration
		want      int64
	}{
		{"one hour", 25000, time.Hour, 25000},
		{"half hour", 25000, 30 * time.Minute, 12500},
		{"hour and a half", 25000, 90 * time.Minute, 37500},
		{"two hours", 25000, 2 * time.Hour, 50000},
		{"rounding up", 999, 100 * time.Minute, 1665},
		{"rounds to nearest", 100, 20 * time.Minute, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculatePrice(tt.priceHour, base, base.Add(tt.duration))
			assert.Equal(t, tt.want, got)
		})
	}
}
