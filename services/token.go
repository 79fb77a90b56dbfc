package services

import (
	"os"
	"time"

	"hostelhub/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserId uint `json:"userid"`
}

// Claims carries only the principal id. Roles are looked up in the
// members table at operation time, never trusted from the token.
type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken mints a signed access token for a user.
func GenerateToken(userID uint) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{UserId: userID},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(72 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// GetUserIDFromToken verifies the token signature and returns the
// principal id.
func GetUserIDFromToken(tokenString string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Unexpected signing method", nil)
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Could not parse token", err)
	}

	if !token.Valid || claims.UserInfo.UserId == 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", nil)
	}

	return claims.UserInfo.UserId, nil
}
