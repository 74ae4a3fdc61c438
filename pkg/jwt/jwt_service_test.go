package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plateful-backend/domain"
)

func newTestJWTService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "PLATEFUL"}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token := svc.GenerateToken("8ff8ac20-0031-4a46-a8cb-9dbbfa1a4a6a")
	require.NotEmpty(t, token)

	userID, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "8ff8ac20-0031-4a46-a8cb-9dbbfa1a4a6a", userID)
}

func TestJWTService_RejectsTampering(t *testing.T) {
	svc := newTestJWTService()
	token := svc.GenerateToken("user-1")

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.GetUserIDByToken("not.a.token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := &jwtService{secretKey: "different-secret", issuer: "PLATEFUL"}
		_, err := other.GetUserIDByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
