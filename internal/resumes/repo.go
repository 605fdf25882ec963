package resumes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resume not found")

// Repo defines persistence operations for resumes.
type Repo interface {
	// Create inserts the resume and returns it with ID and UploadDate set.
	Create(ctx context.Context, resume Resume) (Resume, error)
	GetByID(ctx context.Context, id int64) (Resume, error)
	SetStatus(ctx context.Context, id int64, status string) error
}
