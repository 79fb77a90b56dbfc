package dto

import "time"

type InviteMemberRequest struct {
	HostelSlug string `json:"hostelSlug" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Role       int    `json:"role" binding:"required"`
}

type MemberResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	UserID    *uint     `json:"userId,omitempty"`
	Role      int       `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
