package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// TokenManager issues and verifies signed bearer tokens. The signing secret
// and TTL are injected at construction so tests can supply their own; the
// manager is read-only after construction and safe for concurrent use.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager. A non-positive TTL falls back to one hour.
func NewTokenManager(secret string, ttlSeconds int) *TokenManager {
	if ttlSeconds <= 0 {
		ttlSeconds = 3600
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlSeconds) * time.Second}
}

// TTL returns the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Claims is the signed token payload. Profile fields are denormalized copies
// taken at issuance; a later role or profile change is not reflected until
// the token expires or is reissued.
type Claims struct {
	SubjectID   string      `json:"sub"`
	Role        domain.Role `json:"role"`
	Username    string      `json:"username,omitempty"`
	Email       string      `json:"email,omitempty"`
	DisplayName string      `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a token for the account, stamping issued-at and expiry.
func (tm *TokenManager) Issue(account *domain.Account) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		SubjectID:   account.ID,
		Role:        account.Role,
		Username:    account.Username,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify checks the token's wire format, signature, and expiry, in that
// order, and returns the embedded claims. Failures collapse onto the
// taxonomy: ErrMalformedToken, ErrInvalidToken, or ErrTokenExpired.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrInvalidToken
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
