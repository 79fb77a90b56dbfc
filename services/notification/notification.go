package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService broadcasts staff dashboard events over the websocket.
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// ReservationMessageBuilder assembles dashboard messages for booking
// events.
type ReservationMessageBuilder struct {
	hostelSlug    string
	roomName      string
	reservationID uint
}

func NewReservationMessageBuilder(hostelSlug, roomName string, reservationID uint) *ReservationMessageBuilder {
	return &ReservationMessageBuilder{
		hostelSlug:    hostelSlug,
		roomName:      roomName,
		reservationID: reservationID,
	}
}

func (b *ReservationMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 New reservation #%d for room %q at %s", b.reservationID, b.roomName, b.hostelSlug)
}
