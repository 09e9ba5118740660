package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/workforce-console/internal/domain/session"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "1h")
	sess := session.Session{
		UserID:     "u-1",
		Name:       "Ana Putri",
		IsAdmin:    true,
		IsManager:  false,
		Department: "dept-eng",
	}

	tokenString, expiresAt, err := svc.GenerateAccessToken(sess)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access", claims["type"])

	decoded, err := SessionFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, sess, decoded)
}

func TestSessionFromClaims_MissingUserID(t *testing.T) {
	t.Parallel()

	_, err := SessionFromClaims(map[string]interface{}{"name": "nobody"})
	assert.ErrorIs(t, err, session.ErrSessionMissing)
}

func TestSessionFromClaims_EmptyDepartmentPreserved(t *testing.T) {
	t.Parallel()

	decoded, err := SessionFromClaims(map[string]interface{}{
		"user_id":    "u-2",
		"is_manager": true,
		"department": "",
	})
	require.NoError(t, err)
	assert.True(t, decoded.IsManager)
	assert.Empty(t, decoded.Department)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "not-a-duration")
	_, _, err := svc.GenerateAccessToken(session.Session{UserID: "u-1"})
	assert.Error(t, err)
}
