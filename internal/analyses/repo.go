package analyses

import "context"

// Repo defines persistence operations for analysis results.
type Repo interface {
	// CreateResult inserts the record and returns it with ID and CreatedAt set.
	CreateResult(ctx context.Context, rec Record) (Record, error)
	// GetByID returns the record joined with its resume, scoped to the user.
	GetByID(ctx context.Context, id, userID int64) (Record, error)
	// ListByUser returns the user's records joined with resumes, newest first.
	ListByUser(ctx context.Context, userID int64) ([]Record, error)
}
