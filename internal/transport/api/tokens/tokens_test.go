package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberJWTRoundTrip(t *testing.T) {
	key := []byte("super secret key")

	tokenString, err := GenerateMemberJWT(MemberClaims{
		MemberID: 42,
		Phone:    "+233240000042",
		FullName: "Ama Mensah",
	}, time.Hour, key)
	require.NoError(t, err)

	token, validateErr := ValidateMemberJWT(tokenString, key)
	require.NoError(t, validateErr)

	claims, ok := token.Claims.(*MemberClaims)
	require.True(t, ok)
	assert.Equal(t, int64(42), claims.MemberID)
	assert.Equal(t, "+233240000042", claims.Phone)
	assert.Equal(t, "Ama Mensah", claims.FullName)
}

func TestValidateMemberJWT_WrongKey(t *testing.T) {
	tokenString, err := GenerateMemberJWT(MemberClaims{MemberID: 1}, time.Hour, []byte("key one"))
	require.NoError(t, err)

	_, validateErr := ValidateMemberJWT(tokenString, []byte("key two"))
	require.Error(t, validateErr)
}

func TestValidateMemberJWT_Expired(t *testing.T) {
	tokenString, err := GenerateMemberJWT(MemberClaims{MemberID: 1}, -time.Minute, []byte("key"))
	require.NoError(t, err)

	_, validateErr := ValidateMemberJWT(tokenString, []byte("key"))
	require.ErrorIs(t, validateErr, ErrTokenExpired)
}
