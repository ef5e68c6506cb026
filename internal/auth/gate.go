package auth

import (
	"strings"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// The bearer scheme is matched case-sensitively with a single space.
const bearerPrefix = "Bearer "

// Gate composes the request authenticator and the role evaluator into a
// single guard. It is pure: no persistence is consulted, so a stale role in
// a still-valid token is honored until expiry.
type Gate struct {
	tokens *TokenManager
}

// NewGate builds a gate over the token manager.
func NewGate(tokens *TokenManager) *Gate {
	return &Gate{tokens: tokens}
}

// Authenticate extracts a bearer token from the authorization header value
// and resolves its claims. The claims must carry a subject id.
func (g *Gate) Authenticate(header string) (*Claims, error) {
	if header == "" {
		return nil, ErrNoToken
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, ErrNoToken
	}

	claims, err := g.tokens.Verify(header[len(bearerPrefix):])
	if err != nil {
		return nil, err
	}
	if claims.SubjectID == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}

// Authorize authenticates the header and checks the caller's role against
// the required set under the given strictness. An empty required set means
// any authenticated caller passes. The call has no side effects, so
// repeating it with the same inputs yields the same result.
func (g *Gate) Authorize(header string, strictness Strictness, required ...domain.Role) (*Claims, error) {
	claims, err := g.Authenticate(header)
	if err != nil {
		return nil, err
	}
	if len(required) == 0 {
		return claims, nil
	}
	if !Satisfies(claims.Role, required, strictness) {
		return nil, ErrInsufficientRole
	}
	return claims, nil
}
