package services

import (
	"fmt"
	"testing"

	"hostelhub/constants"
	"hostelhub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteMemberUpsertsRole(t *testing.T) {
	db := openTestDB(t)
	hostel, _ := seedHostelAndRoom(t, db)
	svc := NewMemberService(db)

	email := fmt.Sprintf("invitee-%s@example.com", uuid.NewString()[:8])
	t.Cleanup(func() {
		db.Where("hostel_id = ? AND email = ?", hostel.ID, email).Delete(&models.Member{})
	})

	first, err := svc.InviteMember(hostel.ID, email, constants.RoleStaff, constants.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleStaff, first.Role)

	// re-inviting the same address updates the role instead of adding a row
	_, err = svc.InviteMember(hostel.ID, email, constants.RoleManager, constants.RoleOwner)
	require.NoError(t, err)

	var rows []models.Member
	require.NoError(t, db.Where("hostel_id = ? AND email = ?", hostel.ID, email).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, constants.RoleManager, rows[0].Role)
	assert.Nil(t, rows[0].UserID)
}

func TestRoleForLinksInvitedEmail(t *testing.T) {
	db := openTestDB(t)
	hostel, _ := seedHostelAndRoom(t, db)
	svc := NewMemberService(db)

	invited := seedUser(t, db)
	t.Cleanup(func() {
		db.Where("hostel_id = ? AND email = ?", hostel.ID, invited.Email).Delete(&models.Member{})
	})

	_, err := svc.InviteMember(hostel.ID, invited.Email, constants.RoleStaff, constants.RoleOwner)
	require.NoError(t, err)

	assert.Equal(t, constants.RoleStaff, svc.RoleFor(hostel.ID, invited.ID))

	// the first lookup links the pending invite to the principal
	var member models.Member
	require.NoError(t, db.Where("hostel_id = ? AND email = ?", hostel.ID, invited.Email).First(&member).Error)
	require.NotNil(t, member.UserID)
	assert.Equal(t, invited.ID, *member.UserID)

	// principals without a member row are guests
	stranger := seedUser(t, db)
	assert.Equal(t, constants.RoleGuest, svc.RoleFor(hostel.ID, stranger.ID))
}
