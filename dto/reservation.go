package dto

import "time"

// CreateReservationRequest is the guest-facing booking submission. Dates
// are ISO calendar dates (2006-01-02); check-out is exclusive.
type CreateReservationRequest struct {
	HostelSlug   string `json:"hostelSlug" binding:"required"`
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	FullName     string `json:"fullName" binding:"required"`
	Email        string `json:"email" binding:"required"`
}

type StatusUpdateRequest struct {
	HostelSlug string `json:"hostelSlug" binding:"required"`
	ID         uint   `json:"id" binding:"required"`
	Status     int    `json:"status"`
}

type CancelReservationRequest struct {
	HostelSlug string `json:"hostelSlug" binding:"required"`
	ID         uint   `json:"id" binding:"required"`
}

type ReservationRoomResponse struct {
	ID       uint   `json:"id"`
	HostelID uint   `json:"hostelId"`
	RoomName string `json:"roomName"`
	Price    int    `json:"price"`
}

type ReservationResponse struct {
	ID            uint                    `json:"id"`
	Guest         ActorResponse           `json:"guest"`
	Room          ReservationRoomResponse `json:"room"`
	CheckInDate   string                  `json:"checkInDate"`
	CheckOutDate  string                  `json:"checkOutDate"`
	Nights        int                     `json:"nights"`
	PricePerNight int                     `json:"pricePerNight"`
	Total         int                     `json:"total"`
	Status        int                     `json:"status"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

type AvailabilityResponse struct {
	RoomID       uint   `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Available    bool   `json:"available"`
}
