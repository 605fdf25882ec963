package analyses

import "resumescore-backend/internal/extract"

// MaxUploadBytes is the upload size ceiling. The boundary itself is accepted.
const MaxUploadBytes = 5 * 1024 * 1024

// ValidateUpload checks the declared media type and size against the upload
// policy. It trusts the declared type; no content sniffing is performed.
func ValidateUpload(mediaType string, size int64) error {
	switch mediaType {
	case extract.MimePDF, extract.MimeDOCX:
	default:
		return ErrInvalidFileType
	}
	if size > MaxUploadBytes {
		return ErrFileTooLarge
	}
	return nil
}
