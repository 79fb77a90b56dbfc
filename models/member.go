package models

import (
	"time"

	"hostelhub/constants"
)

// Member binds a principal to a role within one hostel. Invites are stored
// with UserID nil until the invited email signs in; one row per
// (hostel, email).
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HostelID  uint      `gorm:"uniqueIndex:idx_hostel_email" json:"hostelId"`
	UserID    *uint     `json:"userId,omitempty"`
	Email     string    `gorm:"uniqueIndex:idx_hostel_email;type:varchar(255)" json:"email"`
	Role      int       `json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Hostel    Hostel    `json:"-" gorm:"foreignKey:HostelID"`
}

// IsGrantableRole reports whether role is one a member row may carry.
func IsGrantableRole(role int) bool {
	switch role {
	case constants.RoleStaff, constants.RoleManager, constants.RoleOwner:
		return true
	}
	return false
}

// RoleAtLeast reports whether role meets the given minimum level.
func RoleAtLeast(role, min int) bool {
	return role >= min
}
