package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionRoundTrip(t *testing.T) {
	signed, err := GenerateSession(42, RolePlayer, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateSession(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.PlayerID)
	assert.Equal(t, RolePlayer, claims.Role)
	assert.Equal(t, "clubhouse", claims.Issuer)
}

func TestAdminSessionHasNoPlayerID(t *testing.T) {
	signed, err := GenerateSession(0, RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateSession(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Zero(t, claims.PlayerID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateSession(42, RolePlayer, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateSession(signed, "other-secret")
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	signed, err := GenerateSession(42, RolePlayer, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateSession(signed, testSecret)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateRejectsPlayerWithoutID(t *testing.T) {
	signed, err := GenerateSession(0, RolePlayer, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateSession(signed, testSecret)
	assert.Error(t, err, "a player session without a player id is invalid")
}

func TestValidateRejectsUnknownRole(t *testing.T) {
	signed, err := GenerateSession(1, "superuser", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateSession(signed, testSecret)
	assert.Error(t, err)
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, err := GenerateSession(1, RolePlayer, "", time.Hour)
	assert.Error(t, err)
}
