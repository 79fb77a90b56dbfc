package services

import (
	"strings"
	"time"

	"hostelhub/builders"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/errors"
	"hostelhub/models"
	"hostelhub/services/logger"
	"hostelhub/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService owns the booking lifecycle: availability checks,
// creation and status transitions.
type ReservationService struct {
	db     *gorm.DB
	logger logger.Logger
}

type ReservationServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReservationService{
		db:     opts.DB,
		logger: l,
	}
}

// CheckAvailability reports whether the room is free for [checkIn,
// checkOut). Inverted or empty ranges and read errors all report
// unavailable; callers must never book without a positive answer.
func (s *ReservationService) CheckAvailability(hostelID, roomID uint, checkIn, checkOut time.Time) bool {
	available, err := checkAvailabilityTx(s.db, hostelID, roomID, checkIn, checkOut)
	if err != nil {
		s.logger.Error("availability check failed for room %d: %v", roomID, err)
		return false
	}
	return available
}

func checkAvailabilityTx(tx *gorm.DB, hostelID, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, nil
	}

	var count int64
	err := tx.Model(&models.Reservation{}).
		Where("hostel_id = ? AND room_id = ? AND status <> ? AND check_in_date < ? AND check_out_date > ?",
			hostelID, roomID, constants.ReservationStatusCancelled, checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

// CreateReservation validates the guest submission and books the room.
// The availability check and the insert run inside one transaction that
// first locks the room row, so two guests racing for the same dates
// cannot both get in.
func (s *ReservationService) CreateReservation(hostel *models.Hostel, req *dto.CreateReservationRequest) (*models.Reservation, error) {
	if err := validator.ValidateReservationInput(req); err != nil {
		return nil, err
	}

	checkIn, checkOut, err := validator.ValidateStayRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	var reservation *models.Reservation
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND hostel_id = ?", req.RoomID, hostel.ID).
			First(&room).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeRoomNotFound, "Room not found", nil)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Could not load room", err)
		}

		available, err := checkAvailabilityTx(tx, hostel.ID, room.RoomId, checkIn, checkOut)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Availability check failed", err)
		}
		if !available {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Room is already booked for these dates", nil)
		}

		nights := models.NightsBetween(checkIn, checkOut)
		reservation = builders.NewReservationBuilder().
			WithHostel(hostel.ID).
			WithRoom(&room).
			WithStay(checkIn, checkOut, nights).
			WithGuest(strings.TrimSpace(req.FullName), validator.NormalizeEmail(req.Email)).
			WithStatus(constants.ReservationStatusPending).
			Build()

		if err := tx.Create(reservation).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Could not create reservation", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// SetReservationStatus applies a staff-driven status transition. The
// actor's role must already be resolved server side. The second return
// value reports whether anything changed: re-applying the current status
// is an idempotent success with no side effects.
func (s *ReservationService) SetReservationStatus(hostelID, reservationID uint, newStatus, actorRole int) (*models.Reservation, bool, error) {
	if !models.RoleAtLeast(actorRole, constants.RoleStaff) {
		return nil, false, errors.NewAppError(errors.ErrCodeForbiddenRole, "Only hostel staff can change reservation status", nil)
	}

	if err := validator.ValidateStatusValue(newStatus); err != nil {
		return nil, false, err
	}

	var reservation models.Reservation
	if err := s.db.Where("id = ? AND hostel_id = ?", reservationID, hostelID).
		First(&reservation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, errors.NewAppError(errors.ErrCodeReservationNotFound, "Reservation not found", nil)
		}
		return nil, false, errors.NewAppError(errors.ErrCodeDBError, "Could not load reservation", err)
	}

	if reservation.Status == newStatus {
		return &reservation, false, nil
	}

	state := models.GetReservationState(reservation.Status)
	var transitionErr error
	switch newStatus {
	case constants.ReservationStatusConfirmed:
		transitionErr = state.Confirm(&reservation)
	case constants.ReservationStatusCancelled:
		transitionErr = state.Cancel(&reservation)
	default:
		transitionErr = errors.ErrInvalidInput
	}
	if transitionErr != nil {
		return nil, false, errors.NewAppError(errors.ErrCodeInvalidTransition, "Invalid status transition", transitionErr)
	}

	if err := s.db.Save(&reservation).Error; err != nil {
		return nil, false, errors.NewAppError(errors.ErrCodeDBError, "Could not update reservation", err)
	}

	return &reservation, true, nil
}

// CancelReservation is the staff cancellation shortcut.
func (s *ReservationService) CancelReservation(hostelID, reservationID uint, actorRole int) (*models.Reservation, bool, error) {
	return s.SetReservationStatus(hostelID, reservationID, constants.ReservationStatusCancelled, actorRole)
}

// GetByID loads a reservation scoped to a hostel.
func (s *ReservationService) GetByID(hostelID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.Where("id = ? AND hostel_id = ?", reservationID, hostelID).
		First(&reservation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeReservationNotFound, "Reservation not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not load reservation", err)
	}
	return &reservation, nil
}

// ListByHostel returns all reservations for a hostel, newest update first.
func (s *ReservationService) ListByHostel(hostelID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Where("hostel_id = ?", hostelID).
		Order("updated_at DESC").
		Find(&reservations).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list reservations", err)
	}
	return reservations, nil
}

// CancelExpiredPending cancels pending reservations whose check-in date
// has already passed. Run daily by the cron job. Check-in instants are
// stored as UTC midnights, so the cutoff is the UTC calendar day of now.
func (s *ReservationService) CancelExpiredPending(now time.Time) (int64, error) {
	y, m, d := now.UTC().Date()
	cutoff := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	res := s.db.Model(&models.Reservation{}).
		Where("status = ? AND check_in_date < ?", constants.ReservationStatusPending, cutoff).
		Update("status", constants.ReservationStatusCancelled)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		s.logger.Info("cancelled %d expired pending reservations", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
