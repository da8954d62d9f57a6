package user

import (
	"time"

	"github.com/lighthouse-academy/lighthouse-backend/policy"
)

type User struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Role           policy.Role `json:"role"`
	MembershipPlan string      `json:"membershipPlan,omitempty"`
	PasswordHash   string      `json:"-"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (u User) Actor() policy.Actor {
	return policy.Actor{ID: u.ID, Role: u.Role}
}

// Summary is the projection returned by user listings; it never carries
// credentials or membership details.
type Summary struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  policy.Role `json:"role"`
}
