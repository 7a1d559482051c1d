package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Username is the identity key the visit ledger
// is scoped by; it is unique and immutable after registration.
// PasswordHash is a bcrypt hash; the raw credential is never stored and the
// hash is never serialized to JSON.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
