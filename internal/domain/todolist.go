package domain

import "time"

// TodoList is the domain entity for a to-do list entry.
// It does not depend on Gin, Postgres or Redis.
type TodoList struct {
	ID          int64
	UserID      int64
	Title       string
	Description string

	CreatedAt time.Time
}
