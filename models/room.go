package models

import (
	"time"

	"github.com/lib/pq"
)

type Room struct {
	RoomId      uint           `json:"id" gorm:"primaryKey"`
	HostelID    uint           `json:"hostelId" gorm:"index"`
	RoomName    string         `json:"roomName"`
	Description string         `json:"description"`
	Price       int            `json:"price"`
	Capacity    int            `json:"capacity"`
	ImageURLs   pq.StringArray `json:"imageUrls" gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Parent      Hostel         `json:"-" gorm:"foreignKey:HostelID"`
}
