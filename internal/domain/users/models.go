package users

import "time"

// User is a registered account. Email is stored case-folded and
// PasswordHash is a bcrypt hash; the JSON shape never carries it.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
