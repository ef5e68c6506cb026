package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/domain"
)

// fakeCredentialStore is an in-memory CredentialStore for service tests.
type fakeCredentialStore struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{accounts: make(map[string]*domain.Account)}
}

func (f *fakeCredentialStore) FindByLogin(_ context.Context, identifier string) (*domain.Account, error) {
	for _, account := range f.accounts {
		if account.Username == identifier || account.Email == identifier {
			copied := *account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCredentialStore) GetByID(_ context.Context, id string) (*domain.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *account
	return &copied, nil
}

func (f *fakeCredentialStore) VerifyPassword(account *domain.Account, plaintext string) bool {
	return auth.ComparePassword(account.PasswordHash, plaintext) == nil
}

func (f *fakeCredentialStore) Create(_ context.Context, account *domain.Account) error {
	for _, existing := range f.accounts {
		if existing.Username == account.Username || existing.Email == account.Email {
			return auth.ErrDuplicateCredential
		}
	}
	f.nextID++
	account.ID = fmt.Sprintf("acc-%d", f.nextID)
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	copied := *account
	f.accounts[account.ID] = &copied
	return nil
}

func (f *fakeCredentialStore) UpdatePassword(_ context.Context, id, newHash string) error {
	account, ok := f.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.PasswordHash = newHash
	return nil
}

func (f *fakeCredentialStore) UpdateRole(_ context.Context, id string, role domain.Role) error {
	account, ok := f.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.Role = role
	return nil
}

func (f *fakeCredentialStore) List(_ context.Context) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

func (f *fakeCredentialStore) seed(t *testing.T, username string, role domain.Role, password string) *domain.Account {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	account := &domain.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
		Status:       domain.AccountStatusActive,
	}
	require.NoError(t, f.Create(context.Background(), account))
	return account
}

// failingCredentialStore simulates an unavailable backing store.
type failingCredentialStore struct {
	*fakeCredentialStore
	findErr error
}

func (f *failingCredentialStore) FindByLogin(context.Context, string) (*domain.Account, error) {
	return nil, f.findErr
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "service-test-secret",
			TokenTTLSeconds: 3600,
			BcryptCost:      bcrypt.MinCost,
		},
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("valid password creates a customer account", func(t *testing.T) {
		store := newFakeCredentialStore()
		svc := NewAuthService(testConfig(), store)

		account, token, _, err := svc.Register(ctx, "alice", "alice@example.com", "Alice", "", "abcd1234")
		require.NoError(t, err)
		require.Equal(t, domain.RoleCustomer, account.Role)
		require.NotEmpty(t, token)

		claims, err := svc.TokenManager().Verify(token)
		require.NoError(t, err)
		require.Equal(t, account.ID, claims.SubjectID)
		require.Equal(t, domain.RoleCustomer, claims.Role)
	})

	t.Run("short password is rejected before the store", func(t *testing.T) {
		store := newFakeCredentialStore()
		svc := NewAuthService(testConfig(), store)

		_, _, _, err := svc.Register(ctx, "bob", "bob@example.com", "Bob", "", "short1")
		require.Error(t, err)
		require.Empty(t, store.accounts)
	})

	t.Run("duplicate username collides", func(t *testing.T) {
		store := newFakeCredentialStore()
		svc := NewAuthService(testConfig(), store)

		_, _, _, err := svc.Register(ctx, "carol", "carol@example.com", "Carol", "", "abcd1234")
		require.NoError(t, err)

		_, _, _, err = svc.Register(ctx, "carol", "other@example.com", "Carol", "", "abcd1234")
		require.ErrorIs(t, err, auth.ErrDuplicateCredential)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := newFakeCredentialStore()
	svc := NewAuthService(testConfig(), store)
	store.seed(t, "mia", domain.RoleManager, "abcd1234")

	t.Run("token carries the stored role", func(t *testing.T) {
		_, token, _, err := svc.Login(ctx, "mia", "abcd1234")
		require.NoError(t, err)

		claims, err := svc.TokenManager().Verify(token)
		require.NoError(t, err)
		require.Equal(t, domain.RoleManager, claims.Role)
	})

	t.Run("login by email works", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "mia@example.com", "abcd1234")
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "mia", "wrongpass1")
		require.ErrorIs(t, err, auth.ErrCredentialMismatch)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "nobody", "abcd1234")
		require.ErrorIs(t, err, auth.ErrCredentialMismatch)
	})

	t.Run("store failure is not a credential mismatch", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		failing := &failingCredentialStore{fakeCredentialStore: store, findErr: storeErr}
		failingSvc := NewAuthService(testConfig(), failing)

		_, _, _, err := failingSvc.Login(ctx, "mia", "abcd1234")
		require.ErrorIs(t, err, storeErr)
		require.NotErrorIs(t, err, auth.ErrCredentialMismatch)
	})

	t.Run("suspended account", func(t *testing.T) {
		suspended := store.seed(t, "sam", domain.RoleCustomer, "abcd1234")
		store.accounts[suspended.ID].Status = domain.AccountStatusSuspended

		_, _, _, err := svc.Login(ctx, "sam", "abcd1234")
		require.Error(t, err)
		require.NotErrorIs(t, err, auth.ErrCredentialMismatch)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	store := newFakeCredentialStore()
	svc := NewAuthService(testConfig(), store)
	account := store.seed(t, "nina", domain.RoleCustomer, "abcd1234")

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, account.ID, "wrongpass1", "newpass99")
		require.ErrorIs(t, err, auth.ErrCredentialMismatch)
	})

	t.Run("weak new password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, account.ID, "abcd1234", "short1")
		require.Error(t, err)
	})

	t.Run("successful change allows login with the new password", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, account.ID, "abcd1234", "newpass99"))

		_, _, _, err := svc.Login(ctx, "nina", "newpass99")
		require.NoError(t, err)

		_, _, _, err = svc.Login(ctx, "nina", "abcd1234")
		require.ErrorIs(t, err, auth.ErrCredentialMismatch)
	})
}

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	store := newFakeCredentialStore()
	svc := NewAuthService(testConfig(), store)

	adminAcc := store.seed(t, "root", domain.RoleAdmin, "abcd1234")
	customer := store.seed(t, "carl", domain.RoleCustomer, "abcd1234")

	manager := &auth.Claims{SubjectID: "mgr-1", Role: domain.RoleManager}
	admin := &auth.Claims{SubjectID: adminAcc.ID, Role: domain.RoleAdmin}

	t.Run("manager promotes a customer to staff", func(t *testing.T) {
		updated, err := svc.ChangeRole(ctx, manager, customer.ID, domain.RoleStaff)
		require.NoError(t, err)
		require.Equal(t, domain.RoleStaff, updated.Role)
	})

	t.Run("manager cannot touch an admin account", func(t *testing.T) {
		_, err := svc.ChangeRole(ctx, manager, adminAcc.ID, domain.RoleStaff)
		require.ErrorIs(t, err, auth.ErrInsufficientRole)
	})

	t.Run("manager cannot grant admin", func(t *testing.T) {
		_, err := svc.ChangeRole(ctx, manager, customer.ID, domain.RoleAdmin)
		require.ErrorIs(t, err, auth.ErrInsufficientRole)
	})

	t.Run("admin can grant admin", func(t *testing.T) {
		updated, err := svc.ChangeRole(ctx, admin, customer.ID, domain.RoleAdmin)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, updated.Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := svc.ChangeRole(ctx, admin, customer.ID, domain.Role("OWNER"))
		require.Error(t, err)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := svc.ChangeRole(ctx, admin, "missing", domain.RoleStaff)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
