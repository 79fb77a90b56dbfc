package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestOverlaps(t *testing.T) {
	// existing reservation [2026-03-10, 2026-03-15)
	existingIn := date("2026-03-10")
	existingOut := date("2026-03-15")

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"overlap at right boundary", "2026-03-14", "2026-03-20", true},
		{"touching right boundary", "2026-03-15", "2026-03-20", false},
		{"touching left boundary", "2026-03-01", "2026-03-10", false},
		{"fully inside", "2026-03-11", "2026-03-13", true},
		{"fully covering", "2026-03-01", "2026-03-20", true},
		{"identical range", "2026-03-10", "2026-03-15", true},
		{"disjoint before", "2026-03-01", "2026-03-05", false},
		{"disjoint after", "2026-03-20", "2026-03-25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(tt.checkIn), date(tt.checkOut), existingIn, existingOut)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 3, NightsBetween(date("2026-04-01"), date("2026-04-04")))
	assert.Equal(t, 1, NightsBetween(date("2026-04-01"), date("2026-04-02")))
	assert.Equal(t, 0, NightsBetween(date("2026-04-01"), date("2026-04-01")))
	assert.Equal(t, -2, NightsBetween(date("2026-04-04"), date("2026-04-02")))
}

func TestReservationLive(t *testing.T) {
	r := Reservation{Status: ReservationStatusPending}
	assert.True(t, r.Live())

	r.Status = ReservationStatusConfirmed
	assert.True(t, r.Live())

	r.Status = ReservationStatusCancelled
	assert.False(t, r.Live())
}
