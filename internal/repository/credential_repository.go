package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/auth"
	"github.com/spec-kit/restaurant-service/internal/domain"
)

// CredentialStore abstracts account persistence and password verification so
// login, registration, and password-change flows are testable without a real
// database. Callers verify passwords through VerifyPassword and never compare
// hashes themselves.
type CredentialStore interface {
	// FindByLogin resolves an account by username or email.
	FindByLogin(ctx context.Context, identifier string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	VerifyPassword(account *domain.Account, plaintext string) bool
	// Create inserts a new account, failing with auth.ErrDuplicateCredential
	// when the username or email is already taken. The existence check runs
	// before the insert; the race window under concurrent duplicate
	// registration is accepted.
	Create(ctx context.Context, account *domain.Account) error
	UpdatePassword(ctx context.Context, id, newHash string) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	List(ctx context.Context) ([]domain.Account, error)
}

type credentialStore struct {
	pool *pgxpool.Pool
}

// NewCredentialStore returns a Postgres-backed implementation.
func NewCredentialStore(pool *pgxpool.Pool) CredentialStore {
	return &credentialStore{pool: pool}
}

const accountColumns = `id, username, email, display_name, phone, password_hash, role, status, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.DisplayName,
		&account.Phone,
		&account.PasswordHash,
		&account.Role,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *credentialStore) FindByLogin(ctx context.Context, identifier string) (*domain.Account, error) {
	const query = `
        SELECT ` + accountColumns + `
        FROM accounts WHERE username=$1 OR email=$1`

	return scanAccount(s.pool.QueryRow(ctx, query, identifier))
}

func (s *credentialStore) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `
        SELECT ` + accountColumns + `
        FROM accounts WHERE id=$1`

	return scanAccount(s.pool.QueryRow(ctx, query, id))
}

func (s *credentialStore) VerifyPassword(account *domain.Account, plaintext string) bool {
	return auth.ComparePassword(account.PasswordHash, plaintext) == nil
}

func (s *credentialStore) Create(ctx context.Context, account *domain.Account) error {
	const existsQuery = `
        SELECT EXISTS(SELECT 1 FROM accounts WHERE username=$1 OR email=$2)`

	var taken bool
	if err := s.pool.QueryRow(ctx, existsQuery, account.Username, account.Email).Scan(&taken); err != nil {
		return err
	}
	if taken {
		return auth.ErrDuplicateCredential
	}

	const insertQuery = `
        INSERT INTO accounts (username, email, display_name, phone, password_hash, role, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return s.pool.QueryRow(ctx, insertQuery,
		account.Username,
		account.Email,
		account.DisplayName,
		account.Phone,
		account.PasswordHash,
		account.Role,
		account.Status,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (s *credentialStore) UpdatePassword(ctx context.Context, id, newHash string) error {
	const query = `
        UPDATE accounts SET password_hash=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := s.pool.Exec(ctx, query, newHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *credentialStore) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	const query = `
        UPDATE accounts SET role=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := s.pool.Exec(ctx, query, role, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (s *credentialStore) List(ctx context.Context) ([]domain.Account, error) {
	const query = `
        SELECT ` + accountColumns + `
        FROM accounts ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}
