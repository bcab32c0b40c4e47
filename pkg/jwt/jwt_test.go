package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("secret", "user-1", "asha@example.com", 3600)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "engage-crm", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Generate("secret", "user-1", "asha@example.com", 3600)
	require.NoError(t, err)

	_, err = Parse("other-secret", token)
	assert.Error(t, err)
}

func TestParseRejectsMalformedToken(t *testing.T) {
	_, err := Parse("secret", "not.a.token")
	assert.Error(t, err)
}
