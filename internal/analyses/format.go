package analyses

import "time"

// ClientAnalysis is the wire shape of one analysis. The three category
// scores appear under both "categoryScores" and "scores"; the latter is a
// compatibility alias kept for existing dashboard clients, not duplicated
// storage.
type ClientAnalysis struct {
	ID                 int64            `json:"id"`
	ResumeID           int64            `json:"resumeId"`
	FileName           string           `json:"fileName"`
	UploadDate         time.Time        `json:"uploadDate"`
	OverallScore       int              `json:"overallScore"`
	CategoryScores     CategoryScores   `json:"categoryScores"`
	Scores             CategoryScores   `json:"scores"`
	ATSScore           int              `json:"atsScore"`
	Feedback           Feedback         `json:"feedback"`
	LineByLineFeedback []LineFeedback   `json:"lineByLineFeedback"`
	ATSCompatibility   ATSCompatibility `json:"atsCompatibility"`
	Recommendations    []string         `json:"recommendations"`
	Degraded           bool             `json:"degraded"`
}

// HistoryItem summarizes one analysis for the dashboard history list.
type HistoryItem struct {
	ID           int64          `json:"id"`
	ResumeID     int64          `json:"resumeId"`
	FileName     string         `json:"fileName"`
	UploadDate   time.Time      `json:"uploadDate"`
	OverallScore int            `json:"overallScore"`
	Scores       CategoryScores `json:"scores"`
	ATSScore     int            `json:"atsScore"`
	Degraded     bool           `json:"degraded"`
}

// FormatRecord merges a stored row back into the client contract. The
// denormalized scalar columns are authoritative over the blob.
func FormatRecord(rec Record) ClientAnalysis {
	scores := CategoryScores{
		Impact:       rec.ImpactScore,
		Presentation: rec.PresentationScore,
		Competencies: rec.CompetenciesScore,
	}
	return ClientAnalysis{
		ID:                 rec.ID,
		ResumeID:           rec.ResumeID,
		FileName:           rec.OriginalFilename,
		UploadDate:         rec.UploadDate,
		OverallScore:       rec.OverallScore,
		CategoryScores:     scores,
		Scores:             scores,
		ATSScore:           rec.ATSScore,
		Feedback:           rec.Result.Feedback,
		LineByLineFeedback: rec.Result.LineByLineFeedback,
		ATSCompatibility:   rec.Result.ATSCompatibility,
		Recommendations:    rec.Result.Recommendations,
		Degraded:           rec.Degraded,
	}
}

// FormatHistory summarizes stored rows newest-first for the history list.
func FormatHistory(recs []Record) []HistoryItem {
	items := make([]HistoryItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, HistoryItem{
			ID:           rec.ID,
			ResumeID:     rec.ResumeID,
			FileName:     rec.OriginalFilename,
			UploadDate:   rec.UploadDate,
			OverallScore: rec.OverallScore,
			Scores: CategoryScores{
				Impact:       rec.ImpactScore,
				Presentation: rec.PresentationScore,
				Competencies: rec.CompetenciesScore,
			},
			ATSScore: rec.ATSScore,
			Degraded: rec.Degraded,
		})
	}
	return items
}
