package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/domain"
	"github.com/spec-kit/restaurant-service/internal/repository"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util/errorutil"
)

// AuthService coordinates registration, login, and account credential flows.
type AuthService struct {
	store      repository.CredentialStore
	tokenMgr   *auth.TokenManager
	gate       *auth.Gate
	bcryptCost int
}

// NewAuthService builds the service. The token manager and gate are
// constructed here from the injected config so every caller shares one
// secret and TTL.
func NewAuthService(cfg config.Config, store repository.CredentialStore) *AuthService {
	tokenMgr := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLSeconds)
	return &AuthService{
		store:      store,
		tokenMgr:   tokenMgr,
		gate:       auth.NewGate(tokenMgr),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a customer account and issues its first token. The
// password policy is enforced before the credential store is touched.
func (s *AuthService) Register(ctx context.Context, username, email, displayName, phone, password string) (*domain.Account, string, time.Time, error) {
	if err := auth.ValidatePassword(password); err != nil {
		return nil, "", time.Time{}, apperrors.NewValidationError(err.Error(), nil)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	account := &domain.Account{
		Username:     username,
		Email:        email,
		DisplayName:  displayName,
		Phone:        phone,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		Status:       domain.AccountStatusActive,
	}
	if err := s.store.Create(ctx, account); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(account)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// Login authenticates by username or email and returns a role-bearing token.
// Unknown identifiers and wrong passwords collapse onto the same failure;
// infrastructure errors propagate unchanged.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.store.FindByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, auth.ErrCredentialMismatch
		}
		return nil, "", time.Time{}, err
	}
	if account.Status != domain.AccountStatusActive {
		return nil, "", time.Time{}, apperrors.NewForbidden("account suspended")
	}
	if !s.store.VerifyPassword(account, password) {
		return nil, "", time.Time{}, auth.ErrCredentialMismatch
	}

	token, exp, err := s.tokenMgr.Issue(account)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// ChangePassword re-verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	account, err := s.store.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !s.store.VerifyPassword(account, currentPassword) {
		return auth.ErrCredentialMismatch
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, account.ID, hash)
}

// ChangeRole applies the operation-specific policy on top of the generic
// gate: a manager may neither modify an admin account nor grant the admin
// role. Admins are unrestricted.
func (s *AuthService) ChangeRole(ctx context.Context, actor *auth.Claims, targetID string, newRole domain.Role) (*domain.Account, error) {
	if !newRole.Valid() {
		return nil, apperrors.NewValidationError("unknown role", nil)
	}

	target, err := s.store.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if actor.Role == domain.RoleManager {
		if target.Role == domain.RoleAdmin || newRole == domain.RoleAdmin {
			return nil, auth.ErrInsufficientRole
		}
	}

	if err := s.store.UpdateRole(ctx, target.ID, newRole); err != nil {
		return nil, err
	}
	target.Role = newRole
	return target, nil
}

// Profile loads the caller's own account.
func (s *AuthService) Profile(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.store.GetByID(ctx, accountID)
}

// ListAccounts returns every account for the back office.
func (s *AuthService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.store.List(ctx)
}

// Gate exposes the authorization gate for route registration.
func (s *AuthService) Gate() *auth.Gate {
	return s.gate
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
