// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noor-saray-dubai/admin-panel-sub002/internal/adapter/postgres"
	"github.com/noor-saray-dubai/admin-panel-sub002/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, password_hash, role, collections, created_at, updated_at`

const createSQL = `INSERT INTO users (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const updateGrantsSQL = `UPDATE users
SET role = $2, collections = $3, updated_at = $4
WHERE id = $1
RETURNING ` + userColumns

const updatePasswordSQL = `UPDATE users
SET password_hash = $2, updated_at = $3
WHERE id = $1`

const listSQL = `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted record.
// A duplicate email surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Role.String(), collectionsToStrings(u.Collections), now, now)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// UpdateGrants changes the user's role and writable collections.
func (r *Repo) UpdateGrants(ctx context.Context, id uuid.UUID, role domain.Role, collections []domain.Collection) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	row := querier.QueryRow(ctx, updateGrantsSQL, id, role.String(), collectionsToStrings(collections), now)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// UpdatePassword replaces the user's password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag, err := querier.Exec(ctx, updatePasswordSQL, id, passwordHash, now)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id.String())
	}
	return nil
}

// List returns all users ordered by creation time.
func (r *Repo) List(ctx context.Context) ([]*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user", "list")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}
	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u           domain.User
		role        string
		collections []string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &collections, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	u.Collections = collectionsFromStrings(collections)
	return &u, nil
}

func collectionsToStrings(cs []domain.Collection) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func collectionsFromStrings(ss []string) []domain.Collection {
	if len(ss) == 0 {
		return nil
	}
	out := make([]domain.Collection, len(ss))
	for i, s := range ss {
		out[i] = domain.Collection(s)
	}
	return out
}
