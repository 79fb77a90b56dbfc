package models

import (
	"time"
)

// User is a global principal. Roles are never stored here; they live in
// the per-hostel Member rows.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name             string    `gorm:"default:New User" json:"name"`
	Email            string    `gorm:"unique" json:"email"`
	Password         string    `json:"-"`
	GoogleID         string    `json:"-"`
	Status           int       `gorm:"default:1" json:"status"`
	ActiveHostelSlug string    `json:"activeHostelSlug"`
	Members          []Member  `json:"members,omitempty" gorm:"foreignKey:UserID"`
}
