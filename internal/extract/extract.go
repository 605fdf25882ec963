package extract

import (
	"context"
	"fmt"
)

// Supported upload media types.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Extractor turns an uploaded document into plain text.
type Extractor interface {
	Extract(ctx context.Context, data []byte, mediaType string, fileName string) (string, error)
}

// ExtractionError reports a non-2xx reply from the conversion service.
type ExtractionError struct {
	StatusCode int
	Reason     string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed: status %d: %s", e.StatusCode, e.Reason)
}
