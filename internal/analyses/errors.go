package analyses

import "errors"

var (
	// ErrInvalidFileType rejects uploads outside the accepted media types.
	ErrInvalidFileType = errors.New("Invalid file type. Please upload PDF or DOCX only.")
	// ErrFileTooLarge rejects uploads over the size ceiling.
	ErrFileTooLarge = errors.New("File size exceeds 5MB limit.")
	// ErrNoFile rejects requests missing the file field.
	ErrNoFile = errors.New("No file provided")
	// ErrNotFound is returned when an analysis does not exist for the user.
	ErrNotFound = errors.New("analysis not found")
)

// IsValidationError reports whether err is a user-correctable upload error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidFileType) || errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrNoFile)
}
