package vault

import (
	"crypto/x509"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/celerix-dev/gamingtech-store/internal/common"
	"github.com/celerix-dev/gamingtech-store/pkg/schema"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("abcdef")
	require.NoError(t, err)

	assert.NotEqual(t, "abcdef", hash)
	assert.True(t, IsHash(hash))
	assert.True(t, h.Compare(hash, "abcdef"))
	assert.False(t, h.Compare(hash, "abcdeg"))
	assert.False(t, h.Compare("admin123", "admin123"), "plaintext stored passwords never match")

	other, err := h.Hash("abcdef")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes are salted")
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, common.ErrPasswordTooLong)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	assert.Equal(t, DefaultCost, NewPasswordHasher(0).Cost)
	assert.Equal(t, DefaultCost, NewPasswordHasher(bcrypt.MaxCost+1).Cost)
	assert.Equal(t, 10, NewPasswordHasher(10).Cost)
}

func testUser() schema.UserRecord {
	return schema.UserRecord{ID: "u1", Email: "a@b.com", Role: schema.RoleAdmin}
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	m := NewTokenManager("secret", 0).WithClock(func() time.Time { return now })
	require.Equal(t, DefaultTokenTTL, m.TTL())

	token, exp, err := m.Issue(testUser())
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(7*24*time.Hour), exp)

	now = issuedAt.Add(time.Minute)
	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, schema.RoleAdmin, claims.Role)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt)

	now = issuedAt.Add(7*24*time.Hour + time.Second)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenManager_RejectsForeignTokens(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	other := NewTokenManager("another-secret", time.Hour)

	token, _, err := other.Issue(testUser())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: token},
		{name: "malformed", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "tampered", token: token[:len(token)-2] + "xx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.True(t, errors.Is(err, common.ErrInvalidToken), "got %v", err)
		})
	}
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenManager_RequiresExpiry(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	forever := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{UserID: "u1"})
	token, err := forever.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGenerateSelfSignedCert(t *testing.T) {
	cert, err := GenerateSelfSignedCert()
	require.NoError(t, err)
	require.Len(t, cert.Certificate, 1)
	require.NotNil(t, cert.PrivateKey)

	parsed, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)
	assert.Contains(t, parsed.DNSNames, "localhost")
	assert.True(t, parsed.NotAfter.After(time.Now()))
}
