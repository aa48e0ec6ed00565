package domain

import "time"

// User is the domain entity for a user account.
// PasswordHash is empty for accounts created without a password;
// such accounts exist but cannot authenticate.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	LastName     string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
}
