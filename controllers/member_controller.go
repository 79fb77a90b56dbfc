package controllers

import (
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberController struct {
	memberService *services.MemberService
	hostelService *services.HostelService
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{
		memberService: services.NewMemberService(db),
		hostelService: services.NewHostelService(db),
	}
}

func toMemberResponse(member *models.Member) dto.MemberResponse {
	return dto.MemberResponse{
		ID:        member.ID,
		Email:     member.Email,
		UserID:    member.UserID,
		Role:      member.Role,
		CreatedAt: member.CreatedAt,
	}
}

// InviteMember grants or updates a role for an email within a hostel;
// owner/manager only.
func (mc *MemberController) InviteMember(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req dto.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hostel, err := mc.hostelService.ResolveHostel(req.HostelSlug)
	if err != nil {
		writeAppError(c, err)
		return
	}

	actorRole := mc.memberService.RoleFor(hostel.ID, userID)
	member, err := mc.memberService.InviteMember(hostel.ID, req.Email, req.Role, actorRole)
	if err != nil {
		writeAppError(c, err)
		return
	}

	response.Success(c, toMemberResponse(member))
}

// GetMembers lists a hostel's members for staff.
func (mc *MemberController) GetMembers(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	hostel, err := mc.hostelService.ResolveHostel(c.Query("hostelSlug"))
	if err != nil {
		writeAppError(c, err)
		return
	}

	if !models.RoleAtLeast(mc.memberService.RoleFor(hostel.ID, userID), constants.RoleStaff) {
		response.Forbidden(c)
		return
	}

	members, err := mc.memberService.ListMembers(hostel.ID)
	if err != nil {
		writeAppError(c, err)
		return
	}

	memberResponses := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		memberResponses = append(memberResponses, toMemberResponse(&members[i]))
	}

	response.SuccessWithTotal(c, memberResponses, len(memberResponses))
}
