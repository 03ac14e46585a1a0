package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"edurisk_backend/internals/configs"
	"edurisk_backend/internals/features/users/auth/model"
)

func newBlacklistDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE token_blacklist (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		token TEXT NOT NULL UNIQUE,
		expired_at DATETIME,
		created_at DATETIME,
		deleted_at DATETIME
	)`).Error)

	return db
}

func withJWTSecret(t *testing.T, secret string) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = secret
	t.Cleanup(func() { configs.JWTSecret = old })
}

func TestCreateAccessToken(t *testing.T) {
	withJWTSecret(t, "test-secret")

	raw, err := CreateAccessToken("user-123", RoleAdmin)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, RoleAdmin, claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	ttl := time.Until(time.Unix(int64(exp), 0))
	assert.Greater(t, ttl, 23*time.Hour)
	assert.LessOrEqual(t, ttl, 24*time.Hour)
}

func TestCreateAccessTokenMissingSecret(t *testing.T) {
	withJWTSecret(t, "")

	_, err := CreateAccessToken("user-123", RoleStudent)
	require.Error(t, err)
}

func TestBlacklistRoundTrip(t *testing.T) {
	withJWTSecret(t, "test-secret")
	db := newBlacklistDB(t)

	raw, err := CreateAccessToken("user-123", RoleStudent)
	require.NoError(t, err)

	revoked, err := IsBlacklisted(db, raw)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, BlacklistToken(db, raw))

	revoked, err = IsBlacklisted(db, raw)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestBlacklistTokenUsesExpClaim(t *testing.T) {
	withJWTSecret(t, "test-secret")
	db := newBlacklistDB(t)

	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	claims := jwt.MapClaims{"user_id": "user-123", "exp": exp.Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	require.NoError(t, BlacklistToken(db, raw))

	var entry model.TokenBlacklist
	require.NoError(t, db.Where("token = ?", raw).First(&entry).Error)
	assert.WithinDuration(t, exp, entry.ExpiredAt, time.Second)
}

func TestBlacklistOpaqueTokenFallsBackToTTL(t *testing.T) {
	withJWTSecret(t, "test-secret")
	db := newBlacklistDB(t)

	require.NoError(t, BlacklistToken(db, "not-a-jwt"))

	revoked, err := IsBlacklisted(db, "not-a-jwt")
	require.NoError(t, err)
	assert.True(t, revoked)
}
