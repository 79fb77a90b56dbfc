package builders

import (
	"time"

	"hostelhub/models"
)

// ReservationBuilder assembles a reservation step by step.
type ReservationBuilder struct {
	reservation *models.Reservation
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{},
	}
}

func (b *ReservationBuilder) WithHostel(hostelID uint) *ReservationBuilder {
	b.reservation.HostelID = hostelID
	return b
}

// WithRoom snapshots the room's name and nightly price onto the
// reservation.
func (b *ReservationBuilder) WithRoom(room *models.Room) *ReservationBuilder {
	b.reservation.RoomID = room.RoomId
	b.reservation.RoomName = room.RoomName
	b.reservation.PricePerNight = room.Price
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time, nights int) *ReservationBuilder {
	b.reservation.CheckInDate = checkIn
	b.reservation.CheckOutDate = checkOut
	b.reservation.Nights = nights
	b.reservation.Total = nights * b.reservation.PricePerNight
	return b
}

func (b *ReservationBuilder) WithGuest(fullName, email string) *ReservationBuilder {
	b.reservation.FullName = fullName
	b.reservation.Email = email
	return b
}

func (b *ReservationBuilder) WithStatus(status int) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
