package services

import (
	"hostelhub/constants"
	"hostelhub/errors"
	"hostelhub/models"
	"hostelhub/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberService is the membership registry: it answers "what role does
// this principal hold in this hostel" and manages invites.
type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

// RoleFor resolves the actor's role from stored member rows at operation
// time. Principals without a member row are guests. Invite rows are
// matched by the user's email and linked to the user id on first hit.
func (s *MemberService) RoleFor(hostelID, userID uint) int {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return constants.RoleGuest
	}

	var member models.Member
	err := s.db.Where("hostel_id = ? AND (user_id = ? OR email = ?)",
		hostelID, userID, validator.NormalizeEmail(user.Email)).
		First(&member).Error
	if err != nil {
		return constants.RoleGuest
	}

	if member.UserID == nil {
		id := userID
		member.UserID = &id
		if err := s.db.Save(&member).Error; err != nil {
			// role still applies; the link retries on the next lookup
			return member.Role
		}
	}

	return member.Role
}

// InviteMember upserts a member row keyed by (hostel, email).
// Re-inviting the same address updates the granted role instead of
// duplicating the row.
func (s *MemberService) InviteMember(hostelID uint, email string, role, actorRole int) (*models.Member, error) {
	if !models.RoleAtLeast(actorRole, constants.RoleManager) {
		return nil, errors.NewAppError(errors.ErrCodeForbiddenRole, "Only owners and managers can invite members", nil)
	}

	if err := validator.ValidateInvite(email, role); err != nil {
		return nil, err
	}

	member := models.Member{
		HostelID: hostelID,
		Email:    validator.NormalizeEmail(email),
		Role:     role,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hostel_id"}, {Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(&member).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not save invite", err)
	}

	return &member, nil
}

// ListMembers returns all member rows for a hostel.
func (s *MemberService) ListMembers(hostelID uint) ([]models.Member, error) {
	var members []models.Member
	if err := s.db.Where("hostel_id = ?", hostelID).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not list members", err)
	}
	return members, nil
}
