package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"edurisk_backend/internals/configs"
	"edurisk_backend/internals/features/users/auth/model"
)

// Roles carried in the access token.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

const accessTokenTTL = 24 * time.Hour

// CreateAccessToken issues an HMAC-signed JWT carrying the user ID and role.
func CreateAccessToken(userID, role string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("missing JWT secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// IsBlacklisted reports whether a raw token has been revoked.
func IsBlacklisted(db *gorm.DB, rawToken string) (bool, error) {
	var existing model.TokenBlacklist
	err := db.Where("token = ?", rawToken).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// BlacklistToken revokes a raw token until its expiry claim runs out.
func BlacklistToken(db *gorm.DB, rawToken string) error {
	expiredAt := time.Now().Add(accessTokenTTL)

	// Best effort: read exp from the claims without re-verifying, so the
	// blacklist row can be swept as soon as the token itself dies.
	parser := jwt.Parser{SkipClaimsValidation: true}
	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := model.TokenBlacklist{
		Token:     rawToken,
		ExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}
