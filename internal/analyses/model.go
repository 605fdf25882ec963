package analyses

import "time"

// CategoryScores holds the three category score scalars.
type CategoryScores struct {
	Impact       int `json:"impact"`
	Presentation int `json:"presentation"`
	Competencies int `json:"competencies"`
}

// FeedbackSection is the per-category narrative feedback.
type FeedbackSection struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Details      string   `json:"details"`
}

// Feedback groups the per-category sections.
type Feedback struct {
	Impact       FeedbackSection `json:"impact"`
	Presentation FeedbackSection `json:"presentation"`
	Competencies FeedbackSection `json:"competencies"`
}

// LineFeedback is one targeted rewrite suggestion.
type LineFeedback struct {
	Section      string `json:"section"`
	OriginalText string `json:"originalText"`
	Feedback     string `json:"feedback"`
	Suggestion   string `json:"suggestion"`
	Severity     string `json:"severity"`
}

// ATSCompatibility scores applicant-tracking-system friendliness.
type ATSCompatibility struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisResult is the canonical structured output of one resume analysis.
// All score fields are integers in [0,100].
type AnalysisResult struct {
	OverallScore       int              `json:"overallScore"`
	CategoryScores     CategoryScores   `json:"categoryScores"`
	ATSScore           int              `json:"atsScore"`
	Feedback           Feedback         `json:"feedback"`
	LineByLineFeedback []LineFeedback   `json:"lineByLineFeedback"`
	ATSCompatibility   ATSCompatibility `json:"atsCompatibility"`
	Recommendations    []string         `json:"recommendations"`
}

// Record is one persisted analysis row. The four category scalars are
// denormalized out of the result blob for indexed querying; the blob holds
// the full AnalysisResult.
type Record struct {
	ID                int64
	ResumeID          int64
	UserID            int64
	OverallScore      int
	ImpactScore       int
	PresentationScore int
	CompetenciesScore int
	ATSScore          int
	Degraded          bool
	Result            AnalysisResult
	CreatedAt         time.Time

	// Joined from resumes on read.
	OriginalFilename string
	UploadDate       time.Time
}

// UploadedFile is an in-flight upload. It lives for one request only.
type UploadedFile struct {
	Name      string
	MediaType string
	Size      int64
	Data      []byte
}
