package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pjavier1988/todo-api/internal/domain"
	"github.com/pjavier1988/todo-api/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrNotFound is returned both when an entry does not exist and when it
	// belongs to another user. The two cases are deliberately not told apart:
	// a foreign entry must look exactly like a missing one.
	ErrNotFound      = errors.New("not found")
	ErrTitleRequired = errors.New("title is required")
)

// TodoListService is the ownership-scoped CRUD over to-do list entries.
// Every method takes the acting user's ID explicitly; there is no ambient
// current-user state anywhere below the HTTP layer.
type TodoListService struct {
	repo repo.TodoListRepo
}

// NewTodoListService returns a new TodoListService.
func NewTodoListService(r repo.TodoListRepo) *TodoListService {
	return &TodoListService{repo: r}
}

// Create creates an entry owned by userID. The owner and the ID are always
// assigned here; callers cannot supply either.
func (s *TodoListService) Create(ctx context.Context, userID int64, title, description string) (domain.TodoList, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.TodoList{}, ErrTitleRequired
	}
	return s.repo.Create(ctx, domain.TodoList{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
	})
}

// List returns all entries owned by userID, most recently created first.
func (s *TodoListService) List(ctx context.Context, userID int64) ([]domain.TodoList, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// GetByID returns the entry if it exists and is owned by userID.
func (s *TodoListService) GetByID(ctx context.Context, userID, id int64) (domain.TodoList, error) {
	t, err := s.repo.GetByOwner(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TodoList{}, ErrNotFound
		}
		return domain.TodoList{}, err
	}
	return t, nil
}

// Replace is the full-update path: title is required and description falls
// back to empty when absent. The owner is never touched.
func (s *TodoListService) Replace(ctx context.Context, userID, id int64, title, description string) (domain.TodoList, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.TodoList{}, ErrTitleRequired
	}
	t, err := s.repo.Update(ctx, userID, id, title, strings.TrimSpace(description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TodoList{}, ErrNotFound
		}
		return domain.TodoList{}, err
	}
	return t, nil
}

// Update is the partial-update path: nil means "leave unchanged". The entry
// is resolved through the same owner-scoped lookup as GetByID, so updates to
// foreign entries surface as ErrNotFound.
func (s *TodoListService) Update(ctx context.Context, userID, id int64, title, description *string) (domain.TodoList, error) {
	existing, err := s.repo.GetByOwner(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TodoList{}, ErrNotFound
		}
		return domain.TodoList{}, err
	}
	patch := existing
	if title != nil {
		v := strings.TrimSpace(*title)
		if v == "" {
			return domain.TodoList{}, ErrTitleRequired
		}
		patch.Title = v
	}
	if description != nil {
		patch.Description = strings.TrimSpace(*description)
	}
	t, err := s.repo.Update(ctx, userID, id, patch.Title, patch.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TodoList{}, ErrNotFound
		}
		return domain.TodoList{}, err
	}
	return t, nil
}

// Delete permanently removes the entry if it is owned by userID.
func (s *TodoListService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
