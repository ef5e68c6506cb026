package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/domain"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util/errorutil"
)

const claimsKey = "auth_claims"

// Require returns a fiber handler that authorizes the request and stores
// the caller's claims in request locals. Protected routes call this once;
// handlers read the claims back with ClaimsFromContext.
func (g *Gate) Require(strictness Strictness, required ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := g.Authorize(c.Get(fiber.HeaderAuthorization), strictness, required...)
		if err != nil {
			return MapFailure(err)
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromContext retrieves the authenticated caller's claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}

// MapFailure converts a taxonomy error into a transport-facing error.
// Anything outside the taxonomy passes through untouched.
func MapFailure(err error) error {
	switch {
	case errors.Is(err, ErrNoToken),
		errors.Is(err, ErrMalformedToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrMissingSubject),
		errors.Is(err, ErrCredentialMismatch):
		return apperrors.NewUnauthorized(err.Error())
	case errors.Is(err, ErrInsufficientRole):
		return apperrors.NewForbidden(err.Error())
	case errors.Is(err, ErrDuplicateCredential):
		return apperrors.NewConflict(err.Error(), nil)
	default:
		return err
	}
}
