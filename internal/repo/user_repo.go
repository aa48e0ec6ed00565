package repo

import (
	"context"

	"github.com/pjavier1988/todo-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	SetSuperuser(ctx context.Context, id int64) (domain.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

const userColumns = `id, email, COALESCE(password_hash, ''), name, last_name, is_active, is_staff, is_superuser, created_at`

// Create inserts a new user and returns it. An empty password hash is stored as NULL.
func (r *PGUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name, last_name, is_active, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns
	var hash *string
	if u.PasswordHash != "" {
		hash = &u.PasswordHash
	}
	var out domain.User
	err := r.db.QueryRow(ctx, query,
		u.Email, hash, u.Name, u.LastName, u.IsActive, u.IsStaff, u.IsSuperuser,
	).Scan(
		&out.ID, &out.Email, &out.PasswordHash, &out.Name, &out.LastName,
		&out.IsActive, &out.IsStaff, &out.IsSuperuser, &out.CreatedAt,
	)
	return out, err
}

// GetByEmail returns the user by email.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.LastName,
		&u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt,
	)
	return u, err
}

// GetByID returns the user by ID.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.LastName,
		&u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt,
	)
	return u, err
}

// SetSuperuser sets is_staff and is_superuser and returns the updated user.
func (r *PGUserRepo) SetSuperuser(ctx context.Context, id int64) (domain.User, error) {
	query := `
		UPDATE users SET is_staff = TRUE, is_superuser = TRUE
		WHERE id = $1
		RETURNING ` + userColumns
	var u domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.LastName,
		&u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt,
	)
	return u, err
}
