package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/errors"
	"hostelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN. The
// booking-engine tests need Postgres for row locking and are skipped
// when no test database is configured.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping database tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hostel{},
		&models.Room{},
		&models.Member{},
		&models.Reservation{},
	))
	return db
}

func seedHostelAndRoom(t *testing.T, db *gorm.DB) (*models.Hostel, *models.Room) {
	t.Helper()

	owner := &models.User{
		Name:  "Owner",
		Email: fmt.Sprintf("owner-%d@example.com", time.Now().UnixNano()),
	}
	require.NoError(t, db.Create(owner).Error)

	hostel := &models.Hostel{
		Slug:        fmt.Sprintf("test-hostel-%d", time.Now().UnixNano()),
		Name:        "Test Hostel",
		OwnerUserID: owner.ID,
	}
	require.NoError(t, db.Create(hostel).Error)

	room := &models.Room{
		HostelID: hostel.ID,
		RoomName: "Dorm A",
		Price:    30,
		Capacity: 4,
	}
	require.NoError(t, db.Create(room).Error)

	t.Cleanup(func() {
		db.Where("hostel_id = ?", hostel.ID).Delete(&models.Reservation{})
		db.Delete(room)
		db.Delete(hostel)
		db.Delete(owner)
	})

	return hostel, room
}

func bookingRequest(roomID uint, checkIn, checkOut string) *dto.CreateReservationRequest {
	return &dto.CreateReservationRequest{
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		FullName:     "Ana Lopez",
		Email:        "ana@example.com",
	}
}

func TestCreateReservationRejectsOverlap(t *testing.T) {
	db := openTestDB(t)
	hostel, room := seedHostelAndRoom(t, db)
	svc := NewReservationService(ReservationServiceOptions{DB: db})

	first, err := svc.CreateReservation(hostel, bookingRequest(room.RoomId, "2026-10-10", "2026-10-15"))
	require.NoError(t, err)
	assert.Equal(t, constants.ReservationStatusPending, first.Status)
	assert.Equal(t, 5, first.Nights)
	assert.Equal(t, 150, first.Total)
	assert.Equal(t, "Dorm A", first.RoomName)

	// overlapping stay on the same room must be refused
	_, err = svc.CreateReservation(hostel, bookingRequest(room.RoomId, "2026-10-12", "2026-10-18"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRoomUnavailable))

	// back to back is fine, the check-out day frees the room
	_, err = svc.CreateReservation(hostel, bookingRequest(room.RoomId, "2026-10-15", "2026-10-18"))
	assert.NoError(t, err)
}

func TestCancelledReservationFreesDates(t *testing.T) {
	db := openTestDB(t)
	hostel, room := seedHostelAndRoom(t, db)
	svc := NewReservationService(ReservationServiceOptions{DB: db})

	first, err := svc.CreateReservation(hostel, bookingRequest(room.RoomId, "2026-11-01", "2026-11-05"))
	require.NoError(t, err)

	_, changed, err := svc.CancelReservation(hostel.ID, first.ID, constants.RoleStaff)
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = svc.CreateReservation(hostel, bookingRequest(room.RoomId, "2026-11-01", "2026-11-05"))
	assert.NoError(t, err)
}

func TestSetReservationStatusIdempotentAndGuarded(t *testing.T) {
	db := openTestDB(t)
	hostel, room := seedHostelAndRoom(t, db)
	svc := NewReservationService(ReservationServiceOptions{DB: db})

	res, err := svc.CreateReservation(hostel, bookingRequest(room.RoomId, "2026-12-01", "2026-12-03"))
	require.NoError(t, err)

	// guests cannot drive transitions
	_, _, err = svc.SetReservationStatus(hostel.ID, res.ID, constants.ReservationStatusConfirmed, constants.RoleGuest)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeForbiddenRole))

	confirmed, changed, err := svc.SetReservationStatus(hostel.ID, res.ID, constants.ReservationStatusConfirmed, constants.RoleStaff)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, constants.ReservationStatusConfirmed, confirmed.Status)

	// re-applying the same status is a no-op success
	same, changed, err := svc.SetReservationStatus(hostel.ID, res.ID, constants.ReservationStatusConfirmed, constants.RoleStaff)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, constants.ReservationStatusConfirmed, same.Status)

	// cancelled is terminal
	_, changed, err = svc.CancelReservation(hostel.ID, res.ID, constants.RoleManager)
	require.NoError(t, err)
	assert.True(t, changed)

	_, _, err = svc.SetReservationStatus(hostel.ID, res.ID, constants.ReservationStatusConfirmed, constants.RoleOwner)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTransition))
}

func TestCancelExpiredPendingUsesCalendarCutoff(t *testing.T) {
	db := openTestDB(t)
	hostel, room := seedHostelAndRoom(t, db)
	svc := NewReservationService(ReservationServiceOptions{DB: db})

	stale, err := svc.CreateReservation(hostel, bookingRequest(room.RoomId, "2026-02-01", "2026-02-03"))
	require.NoError(t, err)
	upcoming, err := svc.CreateReservation(hostel, bookingRequest(room.RoomId, "2026-02-10", "2026-02-12"))
	require.NoError(t, err)

	// late evening in a UTC-7 zone is already the next calendar day in
	// UTC, where the check-in instants live
	now := time.Date(2026, 2, 1, 20, 0, 0, 0, time.FixedZone("UTC-7", -7*3600))
	count, err := svc.CancelExpiredPending(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	swept, err := svc.GetByID(hostel.ID, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ReservationStatusCancelled, swept.Status)

	kept, err := svc.GetByID(hostel.ID, upcoming.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ReservationStatusPending, kept.Status)
}
