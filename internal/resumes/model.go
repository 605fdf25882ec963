package resumes

import "time"

// Resume lifecycle states.
const (
	StatusUploaded   = "uploaded"
	StatusProcessing = "processing"
	StatusAnalyzed   = "analyzed"
)

// Resume is an uploaded resume file record.
type Resume struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"originalFilename"`
	FileSize         int64     `json:"fileSize"`
	FileType         string    `json:"fileType"`
	UploadDate       time.Time `json:"uploadDate"`
	Status           string    `json:"status"`
}
