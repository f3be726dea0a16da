package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
)

func TestIDTokenClaimsIdentity(t *testing.T) {
	id, err := idTokenClaims{
		Subject:    "41892011",
		Email:      "priya@ssn.edu.in",
		GivenName:  "Priya",
		FamilyName: "Raman",
		Picture:    "https://img.test/p.png",
	}.identity()
	require.NoError(t, err)
	assert.Equal(t, "41892011", id.Subject)
	assert.Equal(t, "Priya", id.FirstName)
	assert.Equal(t, "Raman", id.LastName)
	assert.Equal(t, "https://img.test/p.png", id.ProfileImageURL)

	id, err = idTokenClaims{Subject: "1", FirstName: "Arun", GivenName: "ignored"}.identity()
	require.NoError(t, err)
	assert.Equal(t, "Arun", id.FirstName)
}

func TestIDTokenClaimsIdentity_NoSubject(t *testing.T) {
	_, err := idTokenClaims{Email: "x@y.z"}.identity()
	assert.True(t, errors.Is(err, apperrors.ErrLoginFailed))
}

func TestNewState(t *testing.T) {
	a, err := NewState()
	require.NoError(t, err)
	b, err := NewState()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
