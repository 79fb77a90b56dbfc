package builders

import (
	"testing"
	"time"

	"hostelhub/constants"
	"hostelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationBuilder(t *testing.T) {
	checkIn, _ := time.Parse("2006-01-02", "2026-04-01")
	checkOut, _ := time.Parse("2006-01-02", "2026-04-04")

	room := &models.Room{
		RoomId:   7,
		RoomName: "Dorm A",
		Price:    30,
	}

	reservation := NewReservationBuilder().
		WithHostel(3).
		WithRoom(room).
		WithStay(checkIn, checkOut, 3).
		WithGuest("Alejandra Ruiz", "ale@example.com").
		WithStatus(constants.ReservationStatusPending).
		Build()

	require.NotNil(t, reservation)
	assert.Equal(t, uint(3), reservation.HostelID)
	assert.Equal(t, uint(7), reservation.RoomID)
	assert.Equal(t, "Dorm A", reservation.RoomName)
	assert.Equal(t, 30, reservation.PricePerNight)
	assert.Equal(t, 3, reservation.Nights)
	assert.Equal(t, 90, reservation.Total)
	assert.Equal(t, constants.ReservationStatusPending, reservation.Status)
}
