// Package repo contains all database access logic for the Grazing Trail API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here; only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/google/uuid"

	"github.com/grazingtrail/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// UserRepo defines the persistence operations for user accounts.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type UserRepo interface {
	// Create inserts a new user and returns the persisted record (with
	// DB-generated id and created_at populated).
	// Returns domain.ErrDuplicateUser if the username is already taken;
	// the unique constraint guarantees at most one winner under concurrency.
	Create(ctx context.Context, username, passwordHash string) (domain.User, error)

	// GetByUsername retrieves a single user by their unique username.
	// Returns domain.ErrNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// Create inserts a new user row and returns the full persisted record.
func (r *pgUserRepo) Create(ctx context.Context, username, passwordHash string) (domain.User, error) {
	const q = `
		INSERT INTO users (username, password_hash)
		VALUES (@username, @password_hash)
		RETURNING id, username, password_hash, created_at`

	args := pgx.NamedArgs{
		"username":      username,
		"password_hash": passwordHash,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", domain.ErrDuplicateUser)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

// GetByUsername retrieves a user by their unique username.
func (r *pgUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const q = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = @username`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": username})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByUsername: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)
	err := s.Scan(&id, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}
