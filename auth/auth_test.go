package auth

import (
	"testing"

	"dev-events/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshClaimsRejectsAccessToken(t *testing.T) {
	user := models.User{UserID: "u-1", Username: "alice"}

	access, err := mintToken(user, accessTokenType, accessTokenTTL)
	require.NoError(t, err)
	_, err = refreshClaims("Bearer " + access)
	assert.Error(t, err, "an access token must not mint new tokens")

	refresh, err := mintToken(user, refreshTokenType, refreshTokenTTL)
	require.NoError(t, err)
	claims, err := refreshClaims("Bearer " + refresh)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, refreshTokenType, claims.TokenType)
}
