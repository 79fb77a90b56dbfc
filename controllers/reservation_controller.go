package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/services"
	"hostelhub/services/notification"
	"hostelhub/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ReservationController struct {
	db                 *gorm.DB
	redis              *redis.Client
	reservationService *services.ReservationService
	hostelService      *services.HostelService
	memberService      *services.MemberService
	mailer             notification.Mailer
	notify             notification.Service
}

func NewReservationController(db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *ReservationController {
	return &ReservationController{
		db:    db,
		redis: redisCli,
		reservationService: services.NewReservationService(services.ReservationServiceOptions{
			DB: db,
		}),
		hostelService: services.NewHostelService(db),
		memberService: services.NewMemberService(db),
		mailer:        notification.NewSendgridMailer(),
		notify:        notification.NewMelodyService(m),
	}
}

func statusName(status int) string {
	switch status {
	case constants.ReservationStatusConfirmed:
		return "confirmed"
	case constants.ReservationStatusCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

func toReservationResponse(r *models.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID: r.ID,
		Guest: dto.ActorResponse{
			Name:  r.FullName,
			Email: r.Email,
		},
		Room: dto.ReservationRoomResponse{
			ID:       r.RoomID,
			HostelID: r.HostelID,
			RoomName: r.RoomName,
			Price:    r.PricePerNight,
		},
		CheckInDate:   r.CheckInDate.Format(validator.DateLayout),
		CheckOutDate:  r.CheckOutDate.Format(validator.DateLayout),
		Nights:        r.Nights,
		PricePerNight: r.PricePerNight,
		Total:         r.Total,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func reservationsCacheKey(hostelID uint) string {
	return fmt.Sprintf("reservations:hostel:%d", hostelID)
}

func (rc *ReservationController) invalidateReservationCache(hostelID uint) {
	if rc.redis == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rc.redis, reservationsCacheKey(hostelID))
}

// CheckRoom is the public availability probe for a room and date range.
func (rc *ReservationController) CheckRoom(c *gin.Context) {
	hostel, err := rc.hostelService.ResolveHostel(c.Query("hostelSlug"))
	if err != nil {
		writeAppError(c, err)
		return
	}

	roomID, err := strconv.Atoi(c.Query("roomId"))
	if err != nil || roomID <= 0 {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := rc.db.Where("room_id = ? AND hostel_id = ?", roomID, hostel.ID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	checkInStr := c.Query("checkInDate")
	checkOutStr := c.Query("checkOutDate")
	checkIn, checkOut, err := validator.ValidateStayRange(checkInStr, checkOutStr)
	if err != nil {
		writeAppError(c, err)
		return
	}

	available := rc.reservationService.CheckAvailability(hostel.ID, uint(roomID), checkIn, checkOut)
	response.Success(c, dto.AvailabilityResponse{
		RoomID:       uint(roomID),
		CheckInDate:  checkInStr,
		CheckOutDate: checkOutStr,
		Available:    available,
	})
}

// CreateReservation is the guest-facing booking submission. No
// authentication required; the reservation starts pending.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hostel, err := rc.hostelService.ResolveHostel(req.HostelSlug)
	if err != nil {
		writeAppError(c, err)
		return
	}

	reservation, err := rc.reservationService.CreateReservation(hostel, &req)
	if err != nil {
		writeAppError(c, err)
		return
	}

	rc.invalidateReservationCache(hostel.ID)

	// Notifications are fire and forget; a failed email never rolls
	// back the booking.
	go func(r models.Reservation) {
		if err := rc.mailer.SendReservationCreated(r.Email, r.ID, r.RoomName,
			r.CheckInDate.Format(validator.DateLayout),
			r.CheckOutDate.Format(validator.DateLayout),
			r.Total); err != nil {
			log.Printf("Failed to send reservation email: %v", err)
		}
	}(*reservation)

	message := notification.NewReservationMessageBuilder(hostel.Slug, reservation.RoomName, reservation.ID).Build()
	if err := rc.notify.SendMessage(message); err != nil {
		log.Printf("Failed to broadcast reservation event: %v", err)
	}

	response.Success(c, toReservationResponse(reservation))
}

// GetReservations lists a hostel's reservations for staff, cached in
// Redis, with optional status and date filters.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	hostel, err := rc.hostelService.ResolveHostel(c.Query("hostelSlug"))
	if err != nil {
		writeAppError(c, err)
		return
	}

	if !models.RoleAtLeast(rc.memberService.RoleFor(hostel.ID, userID), constants.RoleStaff) {
		response.Forbidden(c)
		return
	}

	cacheKey := reservationsCacheKey(hostel.ID)

	var allReservations []models.Reservation
	if err := services.GetFromRedis(config.Ctx, rc.redis, cacheKey, &allReservations); err != nil || len(allReservations) == 0 {
		allReservations, err = rc.reservationService.ListByHostel(hostel.ID)
		if err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rc.redis, cacheKey, allReservations, 10*time.Minute); err != nil {
			log.Printf("Failed to cache reservation list: %v", err)
		}
	}

	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	statusFilter := c.Query("status")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	filtered := make([]models.Reservation, 0, len(allReservations))
	for _, r := range allReservations {
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && r.Status != parsedStatus {
				continue
			}
		}
		if fromDateStr != "" {
			fromDate, err := validator.ParseDate(fromDateStr)
			if err != nil {
				response.BadRequest(c, "Invalid fromDate")
				return
			}
			if r.CheckInDate.Before(fromDate) {
				continue
			}
		}
		if toDateStr != "" {
			toDate, err := validator.ParseDate(toDateStr)
			if err != nil {
				response.BadRequest(c, "Invalid toDate")
				return
			}
			if r.CheckOutDate.After(toDate) {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Reservation{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	reservationResponses := make([]dto.ReservationResponse, 0, len(filtered))
	for i := range filtered {
		reservationResponses = append(reservationResponses, toReservationResponse(&filtered[i]))
	}

	response.SuccessWithPagination(c, reservationResponses, page, limit, total)
}

// GetReservationDetail returns one reservation for staff.
func (rc *ReservationController) GetReservationDetail(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	hostel, err := rc.hostelService.ResolveHostel(c.Query("hostelSlug"))
	if err != nil {
		writeAppError(c, err)
		return
	}

	if !models.RoleAtLeast(rc.memberService.RoleFor(hostel.ID, userID), constants.RoleStaff) {
		response.Forbidden(c)
		return
	}

	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid reservation id")
		return
	}

	reservation, err := rc.reservationService.GetByID(hostel.ID, uint(reservationID))
	if err != nil {
		writeAppError(c, err)
		return
	}

	response.Success(c, toReservationResponse(reservation))
}

// ChangeReservationStatus applies confirm/cancel transitions. The
// actor's role always comes from the members table.
func (rc *ReservationController) ChangeReservationStatus(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hostel, err := rc.hostelService.ResolveHostel(req.HostelSlug)
	if err != nil {
		writeAppError(c, err)
		return
	}

	actorRole := rc.memberService.RoleFor(hostel.ID, userID)
	reservation, changed, err := rc.reservationService.SetReservationStatus(hostel.ID, req.ID, req.Status, actorRole)
	if err != nil {
		writeAppError(c, err)
		return
	}

	if changed {
		rc.invalidateReservationCache(hostel.ID)
		go func(r models.Reservation) {
			if err := rc.mailer.SendReservationStatus(r.Email, r.ID, statusName(r.Status)); err != nil {
				log.Printf("Failed to send status email: %v", err)
			}
		}(*reservation)
	}

	response.Success(c, toReservationResponse(reservation))
}

// CancelReservation is the explicit cancellation operation.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hostel, err := rc.hostelService.ResolveHostel(req.HostelSlug)
	if err != nil {
		writeAppError(c, err)
		return
	}

	actorRole := rc.memberService.RoleFor(hostel.ID, userID)
	reservation, changed, err := rc.reservationService.CancelReservation(hostel.ID, req.ID, actorRole)
	if err != nil {
		writeAppError(c, err)
		return
	}

	if changed {
		rc.invalidateReservationCache(hostel.ID)
		go func(r models.Reservation) {
			if err := rc.mailer.SendReservationStatus(r.Email, r.ID, statusName(r.Status)); err != nil {
				log.Printf("Failed to send status email: %v", err)
			}
		}(*reservation)
	}

	response.Success(c, toReservationResponse(reservation))
}
