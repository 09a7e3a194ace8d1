package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nyumbani/listing-api/internal/model"
)

func TestIssueAndVerify(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	token, err := codec.Issue("user-1", model.RoleLandlord)
	require.NoError(t, err)

	ident, err := codec.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", ident.UserID)
	assert.Equal(t, model.RoleLandlord, ident.Role)
}

func TestVerifyExpired(t *testing.T) {
	codec := NewTokenCodec("test-secret", -time.Hour)

	token, err := codec.Issue("user-1", model.RoleTenant)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	token, err := codec.Issue("user-1", model.RoleTenant)
	require.NoError(t, err)

	other := NewTokenCodec("other-secret", time.Hour)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformed(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	_, err := codec.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

// Older deployments issued the subject under "userId". Those tokens must
// still resolve until they age out
func TestVerifyLegacyClaimName(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "legacy-user",
		"role":   "Agent",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	ident, err := codec.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, "legacy-user", ident.UserID)
	assert.Equal(t, model.RoleAgent, ident.Role)
}

func TestVerifyCanonicalClaimWins(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":     "canonical",
		"userId": "legacy",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	ident, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "canonical", ident.UserID)
}

func TestVerifyRejectsOtherAlg(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyMissingSubject(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "Tenant",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
