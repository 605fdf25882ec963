package sessions

import "time"

// Session is a login session row. The token doubles as the primary key.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time

	// Joined from users on lookup.
	Email       string
	DisplayName string
}
