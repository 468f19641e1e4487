package security

import (
	"context"
	"errors"
	"time"

	"jobtrack/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateToken signs a bearer token carrying exactly the user id and role.
// Validity is config.AppConfig.JWTExp (30 days by default); there is no
// refresh or revocation mechanism, logout is purely client-side.
func GenerateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(config.AppConfig.JWTExp).Unix(),
		"iat":     time.Now().Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// ParseToken verifies signature and expiry of a raw token string and returns
// the embedded user id and role. Used by the websocket handshake, which
// cannot go through the HTTP auth middleware.
func ParseToken(tokenString string) (userID, role string, err error) {
	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	if err != nil {
		return "", "", err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", "", err
	}
	userID, err = GetUserIDFromClaims(claims)
	if err != nil {
		return "", "", err
	}
	role, err = GetUserRoleFromClaims(claims)
	if err != nil {
		return "", "", err
	}
	return userID, role, nil
}

func GetUserIDFromClaims(claims map[string]interface{}) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetUserRoleFromClaims(claims map[string]interface{}) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
