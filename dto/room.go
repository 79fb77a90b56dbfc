package dto

import "time"

type CreateRoomRequest struct {
	HostelSlug  string   `json:"hostelSlug" binding:"required"`
	RoomName    string   `json:"roomName" binding:"required"`
	Description string   `json:"description"`
	Price       int      `json:"price" binding:"required"`
	Capacity    int      `json:"capacity" binding:"required"`
	ImageURLs   []string `json:"imageUrls"`
}

type UpdateRoomRequest struct {
	RoomID      uint     `json:"id" binding:"required"`
	HostelSlug  string   `json:"hostelSlug" binding:"required"`
	RoomName    string   `json:"roomName"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Capacity    int      `json:"capacity"`
	ImageURLs   []string `json:"imageUrls"`
}

type RoomResponse struct {
	ID          uint      `json:"id"`
	HostelID    uint      `json:"hostelId"`
	RoomName    string    `json:"roomName"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	Capacity    int       `json:"capacity"`
	ImageURLs   []string  `json:"imageUrls"`
	CreatedAt   time.Time `json:"createdAt"`
}
