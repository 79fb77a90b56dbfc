package services

import (
	"hostelhub/constants"
	"hostelhub/errors"
	"hostelhub/models"
	"hostelhub/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles principal registration and sign-in. It knows
// nothing about roles; those belong to the membership registry.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterUser creates a principal with a bcrypt password hash.
func (s *AuthService) RegisterUser(name, email, password string) (*models.User, error) {
	email = validator.NormalizeEmail(email)
	if err := validator.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validator.ValidatePassword(password); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists, "Email is already registered", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not hash password", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Status:   constants.UserStatusActive,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not create user", err)
	}

	return &user, nil
}

// Login verifies credentials and mints an access token.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	email = validator.NormalizeEmail(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeUserNotFound, "Invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid email or password", nil)
	}

	token, err := GenerateToken(user.ID)
	if err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeDBError, "Could not generate token", err)
	}

	return token, &user, nil
}

// FindOrCreateGoogleUser resolves a Google-verified identity to a local
// principal, creating one on first sign-in.
func (s *AuthService) FindOrCreateGoogleUser(googleID, email, name string) (*models.User, error) {
	email = validator.NormalizeEmail(email)

	var user models.User
	err := s.db.Where("google_id = ? OR email = ?", googleID, email).First(&user).Error
	if err == nil {
		if user.GoogleID == "" {
			user.GoogleID = googleID
			if err := s.db.Save(&user).Error; err != nil {
				return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not link Google account", err)
			}
		}
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not look up user", err)
	}

	user = models.User{
		Name:     name,
		Email:    email,
		GoogleID: googleID,
		Status:   constants.UserStatusActive,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Could not create user", err)
	}
	return &user, nil
}

// GetUser loads a principal by id.
func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "User not found", nil)
	}
	return &user, nil
}
