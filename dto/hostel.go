package dto

import "time"

type CreateHostelRequest struct {
	Name            string `json:"name" binding:"required"`
	Slug            string `json:"slug"`
	DefaultLanguage string `json:"defaultLanguage"`
}

type UpdateHostelRequest struct {
	Slug            string `json:"slug" binding:"required"`
	Name            string `json:"name"`
	DefaultLanguage string `json:"defaultLanguage"`
}

type HostelResponse struct {
	ID              uint      `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	DefaultLanguage string    `json:"defaultLanguage"`
	OwnerUserID     uint      `json:"ownerUserId"`
	CreatedAt       time.Time `json:"createdAt"`
}

type HostelSearchResponse struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}
