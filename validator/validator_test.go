package validator

import (
	"testing"

	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReservationRequest() *dto.CreateReservationRequest {
	return &dto.CreateReservationRequest{
		HostelSlug:   "casa-azul",
		RoomID:       1,
		CheckInDate:  "2026-04-01",
		CheckOutDate: "2026-04-04",
		FullName:     "Alejandra Ruiz",
		Email:        "ale@example.com",
	}
}

func TestValidateReservationInput(t *testing.T) {
	require.NoError(t, ValidateReservationInput(validReservationRequest()))
}

func TestFullNameBoundary(t *testing.T) {
	req := validReservationRequest()

	req.FullName = "Al"
	err := ValidateReservationInput(req)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)

	req.FullName = "Ale"
	assert.NoError(t, ValidateReservationInput(req))

	// whitespace padding does not rescue a short name
	req.FullName = "  Al  "
	assert.Error(t, ValidateReservationInput(req))
}

func TestEmailBoundary(t *testing.T) {
	req := validReservationRequest()

	req.Email = "a@b"
	err := ValidateReservationInput(req)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidEmail, errors.GetAppError(err).Code)

	req.Email = "a@b.com"
	assert.NoError(t, ValidateReservationInput(req))
}

func TestStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		in, out, err := ValidateStayRange("2026-04-01", "2026-04-04")
		require.NoError(t, err)
		assert.True(t, out.After(in))
	})

	t.Run("zero nights rejected", func(t *testing.T) {
		_, _, err := ValidateStayRange("2026-04-01", "2026-04-01")
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, _, err := ValidateStayRange("2026-04-04", "2026-04-01")
		assert.Error(t, err)
	})

	t.Run("unset dates rejected", func(t *testing.T) {
		_, _, err := ValidateStayRange("", "2026-04-04")
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)
	})

	t.Run("garbage date rejected", func(t *testing.T) {
		_, _, err := ValidateStayRange("01/04/2026", "2026-04-04")
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInvalidDate, errors.GetAppError(err).Code)
	})
}

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("casa-azul"))
	assert.NoError(t, ValidateSlug("hostel123"))
	assert.Error(t, ValidateSlug(""))
	assert.Error(t, ValidateSlug("Casa-Azul"))
	assert.Error(t, ValidateSlug("casa azul"))
	assert.Error(t, ValidateSlug("-casa"))
	assert.Error(t, ValidateSlug("casa--azul--"))
}

func TestValidateInvite(t *testing.T) {
	assert.NoError(t, ValidateInvite("staff@example.com", constants.RoleStaff))
	assert.NoError(t, ValidateInvite("  Manager@Example.com ", constants.RoleManager))

	err := ValidateInvite("staff@example.com", constants.RoleGuest)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRole, errors.GetAppError(err).Code)

	assert.Error(t, ValidateInvite("not-an-email", constants.RoleStaff))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "guest@example.com", NormalizeEmail("  Guest@Example.COM "))
}

func TestValidateStatusValue(t *testing.T) {
	assert.NoError(t, ValidateStatusValue(constants.ReservationStatusPending))
	assert.NoError(t, ValidateStatusValue(constants.ReservationStatusConfirmed))
	assert.NoError(t, ValidateStatusValue(constants.ReservationStatusCancelled))
	assert.Error(t, ValidateStatusValue(7))
}
