package auth

import "errors"

// Failure taxonomy for authentication and credential flows. These are
// returned by the verifier, the gate, and the credential store; transport
// code maps them to status codes and never sees raw token internals.
var (
	// ErrNoToken means the authorization header is absent or does not use
	// the bearer scheme.
	ErrNoToken = errors.New("missing bearer token")

	// ErrMalformedToken means the token violates the three-segment wire
	// format or its claims segment is not decodable.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidToken means the signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired means the signature verifies but the token is past
	// its expiry. Expiry is the only invalidation mechanism; there is no
	// revocation list.
	ErrTokenExpired = errors.New("token expired")

	// ErrMissingSubject means the claims decoded but carry no subject id.
	ErrMissingSubject = errors.New("token has no subject")

	// ErrInsufficientRole means the caller is authenticated but the role
	// does not satisfy the endpoint's requirement.
	ErrInsufficientRole = errors.New("insufficient role")

	// ErrDuplicateCredential means the registration username or email is
	// already taken.
	ErrDuplicateCredential = errors.New("username or email already registered")

	// ErrCredentialMismatch means password verification failed.
	ErrCredentialMismatch = errors.New("invalid credentials")
)
