package services

import (
	"regexp"
	"strings"

	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/errors"
	"hostelhub/models"
	"hostelhub/validator"

	"github.com/fiam/gounidecode/unidecode"
	"gorm.io/gorm"
)

// HostelService owns the tenant directory: slug resolution and
// transactional registration.
type HostelService struct {
	db *gorm.DB
}

func NewHostelService(db *gorm.DB) *HostelService {
	return &HostelService{db: db}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a hostel name, stripping accents
// first so "Hostal Cañón" becomes "hostal-canon".
func Slugify(name string) string {
	s := strings.ToLower(unidecode.Unidecode(name))
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 64 {
		s = strings.Trim(s[:64], "-")
	}
	return s
}

// RegisterHostel creates a hostel and binds the owner in one
// transaction. The slug's uniqueness is enforced by the unique index, so
// two concurrent registrations of the same slug end with exactly one
// success and one SLUG_TAKEN failure.
func (s *HostelService) RegisterHostel(req *dto.CreateHostelRequest, owner *models.User) (*models.Hostel, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}

	lang := req.DefaultLanguage
	if lang == "" {
		lang = constants.LangES
	}

	hostel := &models.Hostel{
		Slug:            slug,
		Name:            req.Name,
		DefaultLanguage: lang,
		OwnerUserID:     owner.ID,
	}

	if err := validator.ValidateHostel(hostel); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(hostel).Error; err != nil {
			if isDuplicateKeyError(err) {
				return errors.NewAppError(errors.ErrCodeSlugTaken, "Slug is already taken", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Could not create hostel", err)
		}

		ownerID := owner.ID
		member := models.Member{
			HostelID: hostel.ID,
			UserID:   &ownerID,
			Email:    validator.NormalizeEmail(owner.Email),
			Role:     constants.RoleOwner,
		}
		if err := tx.Create(&member).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Could not bind hostel owner", err)
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", owner.ID).
			Update("active_hostel_slug", hostel.Slug).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Could not update active hostel", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return hostel, nil
}

// ResolveHostel looks a hostel up by slug. A missing slug is a distinct
// not-found, never a crash.
func (s *HostelService) ResolveHostel(slug string) (*models.Hostel, error) {
	var hostel models.Hostel
	if err := s.db.Where("slug = ?", slug).First(&hostel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeHostelNotFound, "Hostel not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not resolve hostel", err)
	}
	return &hostel, nil
}

// UpdateHostel lets owners and managers change the name and default
// language. The slug is immutable.
func (s *HostelService) UpdateHostel(hostel *models.Hostel, req *dto.UpdateHostelRequest, actorRole int) (*models.Hostel, error) {
	if !models.RoleAtLeast(actorRole, constants.RoleManager) {
		return nil, errors.NewAppError(errors.ErrCodeForbiddenRole, "Only owners and managers can update the hostel", nil)
	}

	if req.Name != "" {
		hostel.Name = req.Name
	}
	if req.DefaultLanguage != "" {
		hostel.DefaultLanguage = req.DefaultLanguage
	}

	if err := validator.ValidateHostel(hostel); err != nil {
		return nil, err
	}

	if err := s.db.Save(hostel).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not update hostel", err)
	}
	return hostel, nil
}

func isDuplicateKeyError(err error) bool {
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	// pq unique_violation surfaces as SQLSTATE 23505
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
