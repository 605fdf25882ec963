package users

import "time"

// User is an account record. The analysis pipeline only ever sees the id;
// lookup and creation happen at the auth boundary.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	AuthProvider string    `json:"authProvider"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
