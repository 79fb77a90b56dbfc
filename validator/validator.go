package validator

import (
	"regexp"
	"strings"
	"time"

	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/errors"
	"hostelhub/models"
)

const DateLayout = "2006-01-02"

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateEmail checks email format.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}
	return nil
}

// ValidateSlug checks that a slug is lowercase, URL-safe and non-empty.
func ValidateSlug(slug string) error {
	if slug == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Slug is required", nil)
	}
	if len(slug) > 64 || !slugRegex.MatchString(slug) {
		return errors.NewAppError(errors.ErrCodeInvalidSlug, "Slug must contain only lowercase letters, digits and hyphens", nil)
	}
	return nil
}

// ParseDate parses an ISO calendar date at midnight.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "Invalid date, expected YYYY-MM-DD", err)
	}
	return parsed, nil
}

// ValidateStayRange enforces a strictly positive number of nights.
// Unset or inverted dates are a hard validation failure, never a
// silently zeroed total.
func ValidateStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	if checkIn == "" || checkOut == "" {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Check-in and check-out dates are required", nil)
	}

	in, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !out.After(in) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Check-out must be after check-in", nil)
	}

	return in, out, nil
}

// ValidateReservationInput checks the guest booking submission.
func ValidateReservationInput(req *dto.CreateReservationRequest) error {
	if req.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room is required", nil)
	}

	if len(strings.TrimSpace(req.FullName)) <= 2 {
		return errors.NewAppError(errors.ErrCodeValidation, "Full name must be longer than 2 characters", nil)
	}

	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}

	if _, _, err := ValidateStayRange(req.CheckInDate, req.CheckOutDate); err != nil {
		return err
	}

	return nil
}

// ValidateRoom checks room field constraints.
func ValidateRoom(room *models.Room) error {
	if room.RoomName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room name is required", nil)
	}

	if room.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Price must be positive", nil)
	}

	if room.Capacity < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Capacity must be at least 1", nil)
	}

	return nil
}

// ValidateHostel checks hostel name, slug and language.
func ValidateHostel(hostel *models.Hostel) error {
	if hostel.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hostel name is required", nil)
	}

	if err := ValidateSlug(hostel.Slug); err != nil {
		return err
	}

	if err := hostel.ValidateLanguage(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Default language must be es, en or pt", err)
	}

	return nil
}

// ValidateInvite checks an invite submission; the email is normalized by
// the caller before storage.
func ValidateInvite(email string, role int) error {
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}

	if !models.IsGrantableRole(role) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role must be staff, manager or owner", nil)
	}

	return nil
}

// ValidatePassword checks minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password must be at least 6 characters", nil)
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateStatusValue checks a requested reservation status value.
func ValidateStatusValue(status int) error {
	switch status {
	case constants.ReservationStatusPending,
		constants.ReservationStatusConfirmed,
		constants.ReservationStatusCancelled:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatusValue, "Unknown reservation status", nil)
}
