package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the directory. The workflow core trusts the
// identity and role it is given; token issuance happens upstream.
type User struct {
	ID           uuid.UUID
	Username     string
	FullName     string
	Role         UserRole
	IsActive     bool
	PasswordHash string
	CreatedAt    time.Time
}

// UserCounts is the directory breakdown used by the system overview.
type UserCounts struct {
	Total      int
	Active     int
	Admins     int
	Annotators int
	Reviewers  int
}
