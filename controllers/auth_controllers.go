package controllers

import (
	"context"
	"os"

	"hostelhub/dto"
	apperrors "hostelhub/errors"
	"hostelhub/models"
	"hostelhub/response"
	"hostelhub/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		authService: services.NewAuthService(db),
	}
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		ActiveHostelSlug: user.ActiveHostelSlug,
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := ac.authService.RegisterUser(input.Name, input.Email, input.Password)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	token, err := services.GenerateToken(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AuthResponse{Token: token, User: toUserResponse(user)})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, user, err := ac.authService.Login(input.Email, input.Password)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	response.Success(c, dto.AuthResponse{Token: token, User: toUserResponse(user)})
}

// AuthGoogle signs a principal in with a Google ID token.
func (ac *AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payload, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	user, err := ac.authService.FindOrCreateGoogleUser(payload.Subject, email, name)
	if err != nil {
		response.ServerError(c)
		return
	}

	token, err := services.GenerateToken(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AuthResponse{Token: token, User: toUserResponse(user)})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	user, err := ac.authService.GetUser(userID)
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
