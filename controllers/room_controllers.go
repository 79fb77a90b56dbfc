package controllers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/services"
	"hostelhub/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RoomController struct {
	db            *gorm.DB
	redis         *redis.Client
	hostelService *services.HostelService
	memberService *services.MemberService
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client) *RoomController {
	return &RoomController{
		db:            db,
		redis:         redisCli,
		hostelService: services.NewHostelService(db),
		memberService: services.NewMemberService(db),
	}
}

func toRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.RoomId,
		HostelID:    room.HostelID,
		RoomName:    room.RoomName,
		Description: room.Description,
		Price:       room.Price,
		Capacity:    room.Capacity,
		ImageURLs:   room.ImageURLs,
		CreatedAt:   room.CreatedAt,
	}
}

func roomsCacheKey(hostelID uint) string {
	return fmt.Sprintf("rooms:hostel:%d", hostelID)
}

func (rc *RoomController) invalidateRoomCache(hostelID uint) {
	if rc.redis == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rc.redis, roomsCacheKey(hostelID))
}

// requireRole resolves the hostel by slug and checks the caller's stored
// role against the minimum. Returns nil when the check fails (the
// response is already written).
func (rc *RoomController) requireRole(c *gin.Context, slug string, minRole int) *models.Hostel {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return nil
	}

	hostel, err := rc.hostelService.ResolveHostel(slug)
	if err != nil {
		writeAppError(c, err)
		return nil
	}

	if !models.RoleAtLeast(rc.memberService.RoleFor(hostel.ID, userID), minRole) {
		response.Forbidden(c)
		return nil
	}

	return hostel
}

// GetRooms lists a hostel's rooms, served from Redis when warm. Public.
func (rc *RoomController) GetRooms(c *gin.Context) {
	hostel, err := rc.hostelService.ResolveHostel(c.Param("slug"))
	if err != nil {
		writeAppError(c, err)
		return
	}

	cacheKey := roomsCacheKey(hostel.ID)

	var rooms []models.Room
	if err := services.GetFromRedis(config.Ctx, rc.redis, cacheKey, &rooms); err != nil || len(rooms) == 0 {
		if err := rc.db.Where("hostel_id = ?", hostel.ID).Order("room_id ASC").Find(&rooms).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, rc.redis, cacheKey, rooms, 10*time.Minute); err != nil {
			log.Printf("Failed to cache room list: %v", err)
		}
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		roomResponses = append(roomResponses, toRoomResponse(&rooms[i]))
	}

	response.SuccessWithTotal(c, roomResponses, len(roomResponses))
}

// GetRoomDetail returns one room of a hostel. Public.
func (rc *RoomController) GetRoomDetail(c *gin.Context) {
	hostel, err := rc.hostelService.ResolveHostel(c.Param("slug"))
	if err != nil {
		writeAppError(c, err)
		return
	}

	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := rc.db.Where("room_id = ? AND hostel_id = ?", roomID, hostel.ID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRoomResponse(&room))
}

// CreateRoom adds a room; staff and above.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hostel := rc.requireRole(c, req.HostelSlug, constants.RoleStaff)
	if hostel == nil {
		return
	}

	room := models.Room{
		HostelID:    hostel.ID,
		RoomName:    req.RoomName,
		Description: req.Description,
		Price:       req.Price,
		Capacity:    req.Capacity,
		ImageURLs:   req.ImageURLs,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		writeAppError(c, err)
		return
	}

	if err := rc.db.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	rc.invalidateRoomCache(hostel.ID)
	response.Success(c, toRoomResponse(&room))
}

// UpdateRoom edits a room; staff and above.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hostel := rc.requireRole(c, req.HostelSlug, constants.RoleStaff)
	if hostel == nil {
		return
	}

	var room models.Room
	if err := rc.db.Where("room_id = ? AND hostel_id = ?", req.RoomID, hostel.ID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.RoomName != "" {
		room.RoomName = req.RoomName
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if req.Price != 0 {
		room.Price = req.Price
	}
	if req.Capacity != 0 {
		room.Capacity = req.Capacity
	}
	if req.ImageURLs != nil {
		room.ImageURLs = req.ImageURLs
	}

	if err := validator.ValidateRoom(&room); err != nil {
		writeAppError(c, err)
		return
	}

	if err := rc.db.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	rc.invalidateRoomCache(hostel.ID)
	response.Success(c, toRoomResponse(&room))
}

// DeleteRoom removes a room and best-effort destroys its Cloudinary
// images; manager and above.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	slug := c.Query("hostelSlug")
	hostel := rc.requireRole(c, slug, constants.RoleManager)
	if hostel == nil {
		return
	}

	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := rc.db.Where("room_id = ? AND hostel_id = ?", roomID, hostel.ID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := rc.db.Delete(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	for _, url := range room.ImageURLs {
		publicID := cloudinaryPublicID(url)
		if publicID == "" {
			continue
		}
		if _, err := config.Cloudinary.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID}); err != nil {
			log.Printf("Failed to destroy image %s: %v", publicID, err)
		}
	}

	rc.invalidateRoomCache(hostel.ID)
	response.Success(c, gin.H{"deleted": room.RoomId})
}

// cloudinaryPublicID extracts the public id from a delivery URL, e.g.
// .../upload/v123/rooms/abc.jpg -> rooms/abc.
func cloudinaryPublicID(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx < 0 {
		return ""
	}
	path := url[idx+len("/upload/"):]
	if slash := strings.Index(path, "/"); slash >= 0 && strings.HasPrefix(path, "v") {
		if _, err := strconv.Atoi(path[1:slash]); err == nil {
			path = path[slash+1:]
		}
	}
	if dot := strings.LastIndex(path, "."); dot >= 0 {
		path = path[:dot]
	}
	return path
}
