package models

import "time"

// Role values accepted by the training API.
const (
	RoleAthlete = "athlete"
	RoleCoach   = "coach"
)

// User represents an account of the training application. Athletes log
// sessions and punches; coaches additionally follow their athletes.
type User struct {
	// UserID is the unique identifier assigned by the server.
	UserID int64 `json:"id"`

	// Username is the public display handle.
	Username string `json:"username"`

	// Email is the login identifier.
	Email string `json:"email"`

	// Password is the plaintext password supplied on signup. It is only ever
	// sent from the client to the server and never returned.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash kept by the server. Never serialized.
	PasswordHash string `json:"-"`

	// Role is either [RoleAthlete] or [RoleCoach].
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsCoach reports whether the user has the coach role.
func (u User) IsCoach() bool {
	return u.Role == RoleCoach
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
