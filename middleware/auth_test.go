package middleware

import (
	"testing"

	userModel "github.com/kodraiti-design/eagles-transportes/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := &userModel.User{
		ID:          3,
		Username:    "maria",
		Role:        userModel.RoleOperator,
		Permissions: "create_freight,assign_driver",
	}

	token, err := CreateAccessToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims["username"])
	assert.Equal(t, "OPERATOR", claims["role"])

	perms, ok := claims["permissions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, perms, 2)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	u := &userModel.User{ID: 1, Username: "maria", Role: userModel.RoleAdmin}
	token, err := CreateAccessToken(u)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := VerifyJWT("not.a.token")
	assert.Error(t, err)
}
