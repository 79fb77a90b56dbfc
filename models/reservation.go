package models

import (
	"time"

	"hostelhub/constants"
)

// Reservation status values, aliased from constants so model logic and
// its tests can stay in-package.
const (
	ReservationStatusPending   = constants.ReservationStatusPending
	ReservationStatusConfirmed = constants.ReservationStatusConfirmed
	ReservationStatusCancelled = constants.ReservationStatusCancelled
)

// Reservation is a guest's stay request for one room. Dates form a
// half-open interval [CheckInDate, CheckOutDate); RoomName and
// PricePerNight are snapshots taken at booking time so later room edits
// do not rewrite history.
type Reservation struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	HostelID      uint      `json:"hostelId" gorm:"index:idx_hostel_room"`
	RoomID        uint      `json:"roomId" gorm:"index:idx_hostel_room"`
	Room          Room      `json:"-" gorm:"foreignKey:RoomID"`
	RoomName      string    `json:"roomName"`
	PricePerNight int       `json:"pricePerNight"`
	CheckInDate   time.Time `json:"checkInDate" gorm:"index"`
	CheckOutDate  time.Time `json:"checkOutDate" gorm:"index"`
	Nights        int       `json:"nights"`
	Total         int       `json:"total"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Status        int       `json:"status" gorm:"default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// NightsBetween counts whole days in [in, out). Both instants are treated
// as local midnight.
func NightsBetween(in, out time.Time) int {
	return int(out.Sub(in).Hours() / 24)
}

// Overlaps reports whether [aIn, aOut) intersects [bIn, bOut). Touching
// boundaries do not overlap: a check-out day frees the room for a new
// check-in.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// Live reports whether the reservation still holds its dates. Cancelled
// reservations free the room.
func (r *Reservation) Live() bool {
	return r.Status != ReservationStatusCancelled
}
