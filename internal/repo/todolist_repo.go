package repo

import (
	"context"

	"github.com/pjavier1988/todo-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoListRepo provides to-do list persistence. Every read and write except
// Create is scoped to the owning user in the query itself, so an entry that
// belongs to someone else is indistinguishable from one that does not exist.
type TodoListRepo interface {
	Create(ctx context.Context, t domain.TodoList) (domain.TodoList, error)
	GetByOwner(ctx context.Context, userID, id int64) (domain.TodoList, error)
	ListByOwner(ctx context.Context, userID int64) ([]domain.TodoList, error)
	Update(ctx context.Context, userID, id int64, title, description string) (domain.TodoList, error)
	Delete(ctx context.Context, userID, id int64) error
}

// PGTodoListRepo implements TodoListRepo with Postgres.
type PGTodoListRepo struct {
	db *pgxpool.Pool
}

// NewPGTodoListRepo returns a new PGTodoListRepo.
func NewPGTodoListRepo(db *pgxpool.Pool) *PGTodoListRepo {
	return &PGTodoListRepo{db: db}
}

func (r *PGTodoListRepo) Create(ctx context.Context, t domain.TodoList) (domain.TodoList, error) {
	query := `
		INSERT INTO todolists (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, description, created_at`
	var out domain.TodoList
	err := r.db.QueryRow(ctx, query, t.UserID, t.Title, t.Description).Scan(
		&out.ID, &out.UserID, &out.Title, &out.Description, &out.CreatedAt,
	)
	return out, err
}

func (r *PGTodoListRepo) GetByOwner(ctx context.Context, userID, id int64) (domain.TodoList, error) {
	query := `
		SELECT id, user_id, title, description, created_at
		FROM todolists WHERE id = $1 AND user_id = $2`
	var t domain.TodoList
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreatedAt,
	)
	return t, err
}

func (r *PGTodoListRepo) ListByOwner(ctx context.Context, userID int64) ([]domain.TodoList, error) {
	query := `
		SELECT id, user_id, title, description, created_at
		FROM todolists WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.TodoList
	for rows.Next() {
		var t domain.TodoList
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoListRepo) Update(ctx context.Context, userID, id int64, title, description string) (domain.TodoList, error) {
	query := `
		UPDATE todolists SET title = $3, description = $4
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, created_at`
	var t domain.TodoList
	err := r.db.QueryRow(ctx, query, id, userID, title, description).Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.CreatedAt,
	)
	return t, err
}

func (r *PGTodoListRepo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM todolists WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
