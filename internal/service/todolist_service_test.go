package service

import (
	"context"
	"testing"

	"github.com/pjavier1988/todo-api/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTodoListService_Create(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())

	e, err := svc.Create(context.Background(), 1, "  Groceries  ", " milk, eggs ")
	require.NoError(t, err)

	assert.NotZero(t, e.ID)
	assert.Equal(t, int64(1), e.UserID)
	assert.Equal(t, "Groceries", e.Title)
	assert.Equal(t, "milk, eggs", e.Description)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestTodoListService_Create_TitleRequired(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())

	_, err := svc.Create(context.Background(), 1, "", "desc")
	assert.ErrorIs(t, err, ErrTitleRequired)
	_, err = svc.Create(context.Background(), 1, "   ", "desc")
	assert.ErrorIs(t, err, ErrTitleRequired)

	// Failed creates leave nothing behind.
	list, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTodoListService_OwnershipIsolation(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())
	const userA, userB = int64(1), int64(2)

	e, err := svc.Create(context.Background(), userA, "Groceries", "")
	require.NoError(t, err)

	// Every access by B behaves as if the entry does not exist.
	_, err = svc.GetByID(context.Background(), userB, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Update(context.Background(), userB, e.ID, strPtr("stolen"), nil)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Replace(context.Background(), userB, e.ID, "stolen", "")
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.Delete(context.Background(), userB, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	listB, err := svc.List(context.Background(), userB)
	require.NoError(t, err)
	assert.Empty(t, listB)

	// A's entry is untouched by all of the above.
	got, err := svc.GetByID(context.Background(), userA, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, userA, got.UserID)
}

func TestTodoListService_ListPerUserDescendingID(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())
	const userA, userB = int64(1), int64(2)

	e1, err := svc.Create(context.Background(), userA, "Groceries", "")
	require.NoError(t, err)
	e2, err := svc.Create(context.Background(), userA, "Taxes", "")
	require.NoError(t, err)
	e3, err := svc.Create(context.Background(), userB, "Trip", "")
	require.NoError(t, err)

	listA, err := svc.List(context.Background(), userA)
	require.NoError(t, err)
	require.Len(t, listA, 2)
	assert.Equal(t, e2.ID, listA[0].ID)
	assert.Equal(t, e1.ID, listA[1].ID)

	listB, err := svc.List(context.Background(), userB)
	require.NoError(t, err)
	require.Len(t, listB, 1)
	assert.Equal(t, e3.ID, listB[0].ID)
}

func TestTodoListService_PartialUpdate(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())

	e, err := svc.Create(context.Background(), 1, "Groceries", "Original description")
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), 1, e.ID, strPtr("Shopping"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", got.Title)
	assert.Equal(t, "Original description", got.Description)
	assert.Equal(t, int64(1), got.UserID)

	got, err = svc.Update(context.Background(), 1, e.ID, nil, strPtr("New description"))
	require.NoError(t, err)
	assert.Equal(t, "Shopping", got.Title)
	assert.Equal(t, "New description", got.Description)
}

func TestTodoListService_PartialUpdate_EmptyTitleRejected(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())

	e, err := svc.Create(context.Background(), 1, "Groceries", "desc")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 1, e.ID, strPtr("  "), nil)
	assert.ErrorIs(t, err, ErrTitleRequired)

	got, err := svc.GetByID(context.Background(), 1, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
}

func TestTodoListService_Replace(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())

	e, err := svc.Create(context.Background(), 1, "Old title", "Old description")
	require.NoError(t, err)

	// Full replace: an absent description resets to empty.
	got, err := svc.Replace(context.Background(), 1, e.ID, "New title", "")
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, int64(1), got.UserID)
}

func TestTodoListService_Replace_TitleRequired(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())

	e, err := svc.Create(context.Background(), 1, "Groceries", "desc")
	require.NoError(t, err)

	_, err = svc.Replace(context.Background(), 1, e.ID, "", "new desc")
	assert.ErrorIs(t, err, ErrTitleRequired)

	// Nothing persisted on the failed replace.
	got, err := svc.GetByID(context.Background(), 1, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, "desc", got.Description)
}

func TestTodoListService_DeleteThenGet(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())

	e, err := svc.Create(context.Background(), 1, "Groceries", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, e.ID))

	_, err = svc.GetByID(context.Background(), 1, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.Delete(context.Background(), 1, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoListService_GetUnknownID(t *testing.T) {
	svc := NewTodoListService(repo.NewMemoryTodoListRepo())

	_, err := svc.GetByID(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
