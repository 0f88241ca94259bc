package utils

import (
	"testing"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	userID := uuid.New()

	token, err := GenerateAuthToken(&AuthTokenWrapper{UserID: userID})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
}

func TestParseAuthTokenRejectsGarbage(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")

	_, err := ParseAuthToken("not-a-token")
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestParseAuthTokenRejectsWrongSecret(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "first-secret")
	token, err := GenerateAuthToken(&AuthTokenWrapper{UserID: uuid.New()})
	require.NoError(t, err)

	viper.Set(constants.ViperSecretKey, "second-secret")
	_, err = ParseAuthToken(token)
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}
