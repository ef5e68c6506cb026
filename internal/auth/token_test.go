package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

func testAccount() *domain.Account {
	return &domain.Account{
		ID:          "acc-1",
		Username:    "alice",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Role:        domain.RoleManager,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600)

	token, expiresAt, err := tm.Issue(testAccount())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "acc-1", claims.SubjectID)
	require.Equal(t, domain.RoleManager, claims.Role)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "Alice", claims.DisplayName)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600)

	for _, token := range []string{
		"",
		"onlyonesegment",
		"two.segments",
		"a.b.c.d",
		"!!!.###.$$$",
	} {
		_, err := tm.Verify(token)
		require.ErrorIs(t, err, ErrMalformedToken, "token %q", token)
	}
}

func TestTokenSignatureTamper(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600)

	token, _, err := tm.Issue(testAccount())
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)

	sig := []byte(segments[2])
	if sig[5] == 'A' {
		sig[5] = 'B'
	} else {
		sig[5] = 'A'
	}
	tampered := segments[0] + "." + segments[1] + "." + string(sig)

	_, err = tm.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenClaimsTamper(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600)

	account := testAccount()
	account.Role = domain.RoleCustomer
	token, _, err := tm.Issue(account)
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)

	decoded, err := base64.RawURLEncoding.DecodeString(segments[1])
	require.NoError(t, err)

	// Privilege escalation attempt: rewrite the role and keep the old signature.
	escalated := strings.Replace(string(decoded), string(domain.RoleCustomer), string(domain.RoleAdmin), 1)
	require.NotEqual(t, string(decoded), escalated)
	segments[1] = base64.RawURLEncoding.EncodeToString([]byte(escalated))

	_, err = tm.Verify(strings.Join(segments, "."))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", 3600)
	verifier := NewTokenManager("secret-two", 3600)

	token, _, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600)

	claims := &Claims{
		SubjectID: "acc-1",
		Role:      domain.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenShortTTLExpires(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	token, _, err := tm.Issue(testAccount())
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.NoError(t, err)

	time.Sleep(2 * time.Second)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenRejectsWrongAlgorithm(t *testing.T) {
	tm := NewTokenManager("test-secret", 3600)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{SubjectID: "acc-1"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}
