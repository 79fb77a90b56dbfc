package controllers

import (
	"strconv"

	"hostelhub/dto"
	apperrors "hostelhub/errors"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HostelController struct {
	hostelService *services.HostelService
	memberService *services.MemberService
	searchService *services.SearchService
	authService   *services.AuthService
}

func NewHostelController(db *gorm.DB) *HostelController {
	return &HostelController{
		hostelService: services.NewHostelService(db),
		memberService: services.NewMemberService(db),
		searchService: services.NewSearchService(db),
		authService:   services.NewAuthService(db),
	}
}

func toHostelResponse(hostel *models.Hostel) dto.HostelResponse {
	return dto.HostelResponse{
		ID:              hostel.ID,
		Slug:            hostel.Slug,
		Name:            hostel.Name,
		DefaultLanguage: hostel.DefaultLanguage,
		OwnerUserID:     hostel.OwnerUserID,
		CreatedAt:       hostel.CreatedAt,
	}
}

func writeAppError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeSlugTaken, apperrors.ErrCodeRoomUnavailable:
		response.Conflict(c, appErr.Message)
	case apperrors.ErrCodeHostelNotFound, apperrors.ErrCodeRoomNotFound, apperrors.ErrCodeReservationNotFound:
		response.NotFound(c)
	case apperrors.ErrCodeForbiddenRole:
		response.Forbidden(c)
	case apperrors.ErrCodeDBError:
		response.ServerError(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}

// CreateHostel registers a new hostel and binds the caller as owner.
func (hc *HostelController) CreateHostel(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	owner, err := hc.authService.GetUser(userID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	hostel, err := hc.hostelService.RegisterHostel(&req, owner)
	if err != nil {
		writeAppError(c, err)
		return
	}

	response.Success(c, toHostelResponse(hostel))
}

// GetHostel resolves a hostel by slug. Public.
func (hc *HostelController) GetHostel(c *gin.Context) {
	slug := c.Param("slug")

	hostel, err := hc.hostelService.ResolveHostel(slug)
	if err != nil {
		writeAppError(c, err)
		return
	}

	response.Success(c, toHostelResponse(hostel))
}

// UpdateHostel changes name or default language; owner/manager only. The
// actor's role is re-read from the members table here, never from the
// request.
func (hc *HostelController) UpdateHostel(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hostel, err := hc.hostelService.ResolveHostel(req.Slug)
	if err != nil {
		writeAppError(c, err)
		return
	}

	actorRole := hc.memberService.RoleFor(hostel.ID, userID)
	updated, err := hc.hostelService.UpdateHostel(hostel, &req, actorRole)
	if err != nil {
		writeAppError(c, err)
		return
	}

	response.Success(c, toHostelResponse(updated))
}

// SearchHostels fuzzily matches hostel names. Public.
func (hc *HostelController) SearchHostels(c *gin.Context) {
	query := c.Query("q")
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := hc.searchService.SearchHostels(query, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, results, len(results))
}
