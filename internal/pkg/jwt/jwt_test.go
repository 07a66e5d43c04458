package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_AccessRoundTrip(t *testing.T) {
	codec := NewCodec("access-secret", "refresh-secret", time.Minute, time.Hour)

	token, err := codec.IssueAccess(42, "APPLICANT")
	require.NoError(t, err)

	claims, err := codec.ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "APPLICANT", claims.Role)
}

func TestCodec_ClassesAreNotInterchangeable(t *testing.T) {
	codec := NewCodec("access-secret", "refresh-secret", time.Minute, time.Hour)

	access, err := codec.IssueAccess(1, "ADMIN")
	require.NoError(t, err)
	refresh, err := codec.IssueRefresh(1, "ADMIN")
	require.NoError(t, err)

	_, err = codec.ParseRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = codec.ParseAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_Expired(t *testing.T) {
	codec := NewCodec("a", "r", -time.Minute, time.Hour)

	token, err := codec.IssueAccess(7, "APPLICANT")
	require.NoError(t, err)

	_, err = codec.ParseAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_TokensAreUnique(t *testing.T) {
	codec := NewCodec("a", "r", time.Minute, time.Hour)

	first, err := codec.IssueRefresh(7, "APPLICANT")
	require.NoError(t, err)
	second, err := codec.IssueRefresh(7, "APPLICANT")
	require.NoError(t, err)

	// same subject, same second: the jti still separates them
	assert.NotEqual(t, first, second)
}

func TestCodec_Garbage(t *testing.T) {
	codec := NewCodec("a", "r", time.Minute, time.Hour)

	_, err := codec.ParseAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
