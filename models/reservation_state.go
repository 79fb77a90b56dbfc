package models

import "errors"

// ReservationState defines the allowed transitions out of one status.
type ReservationState interface {
	Confirm(r *Reservation) error
	Cancel(r *Reservation) error
}

// PendingState: awaiting staff action
type PendingState struct{}

func (s *PendingState) Confirm(r *Reservation) error {
	r.Status = ReservationStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

// ConfirmedState: accepted by staff, can still be cancelled
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(r *Reservation) error {
	return errors.New("reservation already confirmed")
}

func (s *ConfirmedState) Cancel(r *Reservation) error {
	r.Status = ReservationStatusCancelled
	return nil
}

// CancelledState is terminal.
type CancelledState struct{}

func (s *CancelledState) Confirm(r *Reservation) error {
	return errors.New("cannot confirm cancelled reservation")
}

func (s *CancelledState) Cancel(r *Reservation) error {
	return errors.New("reservation already cancelled")
}

// GetReservationState returns the state handler for a status value.
func GetReservationState(status int) ReservationState {
	switch status {
	case ReservationStatusPending:
		return &PendingState{}
	case ReservationStatusConfirmed:
		return &ConfirmedState{}
	case ReservationStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
