package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered player account. Password carries the raw credential
// on the way into the store and the encoded argon2id hash at rest; it is
// never serialized to clients.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the client-facing view of the account, with the credential
// hash stripped even if the caller later marshals with reflection-based tools.
func (u *User) Public() User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
