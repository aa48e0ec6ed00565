package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pjavier1988/todo-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory implementations used as the test backend. They report failures
// the same way the Postgres implementations do (pgx.ErrNoRows, pgconn unique
// violations), so the services behave identically over either backend.

// MemoryUserRepo implements UserRepo with a mutex-guarded map.
type MemoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
}

// NewMemoryUserRepo returns an empty MemoryUserRepo.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[int64]domain.User)}
}

func (r *MemoryUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	r.users[u.ID] = u
	return u, nil
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, pgx.ErrNoRows
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *MemoryUserRepo) SetSuperuser(_ context.Context, id int64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	u.IsStaff = true
	u.IsSuperuser = true
	r.users[id] = u
	return u, nil
}

// MemoryTodoListRepo implements TodoListRepo with a mutex-guarded map.
type MemoryTodoListRepo struct {
	mu     sync.Mutex
	nextID int64
	lists  map[int64]domain.TodoList
}

// NewMemoryTodoListRepo returns an empty MemoryTodoListRepo.
func NewMemoryTodoListRepo() *MemoryTodoListRepo {
	return &MemoryTodoListRepo{lists: make(map[int64]domain.TodoList)}
}

func (r *MemoryTodoListRepo) Create(_ context.Context, t domain.TodoList) (domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now().UTC()
	r.lists[t.ID] = t
	return t, nil
}

func (r *MemoryTodoListRepo) GetByOwner(_ context.Context, userID, id int64) (domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.lists[id]
	if !ok || t.UserID != userID {
		return domain.TodoList{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *MemoryTodoListRepo) ListByOwner(_ context.Context, userID int64) ([]domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []domain.TodoList
	for _, t := range r.lists {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *MemoryTodoListRepo) Update(_ context.Context, userID, id int64, title, description string) (domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.lists[id]
	if !ok || t.UserID != userID {
		return domain.TodoList{}, pgx.ErrNoRows
	}
	t.Title = title
	t.Description = description
	r.lists[id] = t
	return t, nil
}

func (r *MemoryTodoListRepo) Delete(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.lists[id]
	if !ok || t.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.lists, id)
	return nil
}
