package models

import (
	"fmt"
	"time"

	"hostelhub/constants"
)

// Hostel is the tenant: every room, reservation and member hangs off one
// hostel, addressed by its unique slug.
type Hostel struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Slug            string        `json:"slug" gorm:"uniqueIndex;type:varchar(64);not null"`
	Name            string        `json:"name"`
	DefaultLanguage string        `json:"defaultLanguage" gorm:"type:varchar(2);default:'es'"`
	OwnerUserID     uint          `json:"ownerUserId"`
	Owner           User          `json:"owner" gorm:"foreignKey:OwnerUserID"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms           []Room        `json:"rooms,omitempty" gorm:"foreignKey:HostelID"`
	Members         []Member      `json:"members,omitempty" gorm:"foreignKey:HostelID"`
	Reservations    []Reservation `json:"-" gorm:"foreignKey:HostelID"`
}

func (h *Hostel) ValidateLanguage() error {
	switch h.DefaultLanguage {
	case constants.LangES, constants.LangEN, constants.LangPT:
		return nil
	}
	return fmt.Errorf("invalid default language: %s", h.DefaultLanguage)
}
